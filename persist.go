package citygen

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

const (
	// compressedExt files ending in this are written & read with zstd
	compressedExt = ".zst"
)

// JSON returns the map as json.
func (m *Map) JSON() ([]byte, error) {
	m.sync()
	return json.Marshal(m)
}

// SaveJSON writes the map as json to the given path, compressed with zstd
// if the path ends in ".zst".
func (m *Map) SaveJSON(fpath string) error {
	data, err := m.JSON()
	if err != nil {
		return err
	}
	if !strings.HasSuffix(fpath, compressedExt) {
		return os.WriteFile(fpath, data, 0644)
	}

	f, err := os.Create(fpath)
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	_, err = enc.Write(data)
	if err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// LoadMap reads a map written by SaveJSON & rebuilds its Board. Every type
// ID in the file must be known to reg (DefaultRegistry if nil).
func LoadMap(fpath string, reg TypeRegistry) (*Map, error) {
	if reg == nil {
		reg = DefaultRegistry()
	}

	f, err := os.Open(fpath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	if strings.HasSuffix(fpath, compressedExt) {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		r = dec
	}

	m := &Map{}
	err = json.NewDecoder(r).Decode(m)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", fpath)
	}

	return m, m.rebuild(reg)
}

// sync copies content from the live board, if there is one
func (m *Map) sync() {
	if m.Board == nil {
		return
	}
	m.Contents = m.Board.Contents()
	m.Underground = m.Board.Underground()
	m.MainStation = m.Board.MainStation()
	m.Population = m.Board.Population()
}

// rebuild creates Board from the saved grids
func (m *Map) rebuild(reg TypeRegistry) error {
	if m.Tiles.Width() != m.Width || m.Tiles.Height() != m.Height {
		return errors.Wrapf(ErrInvalidParams, "tiles are %dx%d, map is %dx%d",
			m.Tiles.Width(), m.Tiles.Height(), m.Width, m.Height)
	}
	if m.Coasts == nil {
		m.Coasts = NewCoastSet()
	}

	b, err := NewBoard(m.Tiles, reg, m.Population)
	if err != nil {
		return err
	}
	err = b.Restore(m.Tiles, m.Contents, m.Underground, reg)
	if err != nil {
		return err
	}
	b.SetCoasts(m.Coasts)
	b.SetMainStation(m.MainStation)

	m.Board = b
	return nil
}
