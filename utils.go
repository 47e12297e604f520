package citygen

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"os"
)

// SavePNG writes an image to disk
func SavePNG(fpath string, in image.Image) error {
	buff := new(bytes.Buffer)
	err := png.Encode(buff, in)
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, buff.Bytes(), 0644)
}

// clamp01 bounds v to [0, 1]
func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// maxint returns the highest of two ints
func maxint(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// minint returns the lowest of two ints
func minint(a, b int) int {
	if a < b {
		return a
	}
	return b
}
