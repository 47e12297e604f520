// Package encoding packs small values into the 16 bit channels of an
// image.RGBA64 pixel.
package encoding

// Pack16 places hi in the top 8 bits & lo in the bottom 8
func Pack16(hi, lo uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// Unpack16 is the inverse of Pack16
func Unpack16(in uint16) (hi, lo uint8) {
	return uint8(in >> 8), uint8(in)
}

// Byte returns the first byte of data (0 if there is none). Bitmaps of 8
// bits or fewer are a single byte.
func Byte(data []byte) uint8 {
	if len(data) == 0 {
		return 0
	}
	return data[0]
}

// Bytes returns in as a single byte slice
func Bytes(in uint8) []byte {
	return []byte{in}
}

// Scale8 maps v in [lo, hi] onto 0-255, clamping values outside the range
func Scale8(v, lo, hi float64) uint8 {
	if hi <= lo {
		return 0
	}
	r := (v - lo) / (hi - lo)
	switch {
	case r <= 0:
		return 0
	case r >= 1:
		return 255
	}
	return uint8(r * 255)
}
