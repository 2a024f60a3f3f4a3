// city/terrain.go
// Copyright(c) 2025 jetsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package city

import (
	"fmt"
	"image"
	_ "image/png"
	"io"

	gomath "math"
)

// TerrainMap classifies map coordinates as water or dry land by sampling
// a city-map bitmap; map coordinates are taken to be pixel coordinates.
type TerrainMap struct {
	img image.Image
}

func NewTerrainMap(img image.Image) *TerrainMap {
	return &TerrainMap{img: img}
}

// LoadTerrainMap decodes a city-map image (PNG) from r.
func LoadTerrainMap(r io.Reader) (*TerrainMap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding terrain map: %w", err)
	}
	return &TerrainMap{img: img}, nil
}

func (t *TerrainMap) Width() int  { return t.img.Bounds().Dx() }
func (t *TerrainMap) Height() int { return t.img.Bounds().Dy() }

// IsWater samples the classification at the rounded integer coordinate.
// Out-of-bounds coordinates count as water: the safe response to leaving
// the known map is to treat it as unlandable.
func (t *TerrainMap) IsWater(x, y float32) bool {
	b := t.img.Bounds()
	px := b.Min.X + int(gomath.Round(float64(x)))
	py := b.Min.Y + int(gomath.Round(float64(y)))
	if px < b.Min.X || px >= b.Max.X || py < b.Min.Y || py >= b.Max.Y {
		return true
	}

	r, g, bl, _ := t.img.At(px, py).RGBA()
	// 8-bit channels are enough for the classification.
	r, g, bl = r>>8, g>>8, bl>>8

	// Water if blue dominates both red and green by a margin, or if the
	// pixel is low-red/low-to-mid-green with blue clearly on top.
	if bl > r+30 && bl > g+30 {
		return true
	}
	if r < 100 && g < 150 && bl > r && bl > g {
		return true
	}
	return false
}
