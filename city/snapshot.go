// city/snapshot.go
// Copyright(c) 2025 jetsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package city

import (
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// SaveLayout writes the city's generated layout (buildings and parking
// spaces, not terrain imagery) to path as zstd-compressed msgpack.
func SaveLayout(path string, c *City) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	zw, err := zstd.NewWriter(f)
	if err != nil {
		return err
	}

	if err := msgpack.NewEncoder(zw).Encode(c); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// LoadLayout reads a layout written by SaveLayout. The returned city has
// no terrain map attached; the caller supplies one separately.
func LoadLayout(path string) (*City, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var c City
	if err := msgpack.NewDecoder(zr).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
