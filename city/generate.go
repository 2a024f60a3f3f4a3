// city/generate.go
// Copyright(c) 2025 jetsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package city

import (
	"github.com/vertiport/jetsim/log"
	"github.com/vertiport/jetsim/math"
	"github.com/vertiport/jetsim/rand"
)

// GenerateSpec controls procedural city construction.
type GenerateSpec struct {
	Width, Height float32
	GridSpacing   float32 // distance between building grid cells
	BuildDensity  float32 // probability a grid cell gets a building
	MinHeight     float32
	MaxHeight     float32
	ParkingSpaces int
}

func DefaultGenerateSpec() GenerateSpec {
	return GenerateSpec{
		Width:         500,
		Height:        500,
		GridSpacing:   50,
		BuildDensity:  0.4,
		MinHeight:     60,
		MaxHeight:     180,
		ParkingSpaces: 12,
	}
}

// Generate constructs a city from the spec: buildings on a jittered grid,
// parking spaces scattered in the clear areas. All randomness comes from
// the provided generator, so a seed fully determines the city.
func Generate(spec GenerateSpec, r *rand.Rand, lg *log.Logger) *City {
	c := &City{Width: spec.Width, Height: spec.Height}

	for y := spec.GridSpacing; y < spec.Height-spec.GridSpacing; y += spec.GridSpacing {
		for x := spec.GridSpacing; x < spec.Width-spec.GridSpacing; x += spec.GridSpacing {
			if r.Float32() >= spec.BuildDensity {
				continue
			}

			// Jitter the center within the cell and size the footprint to
			// leave flyable gaps between neighbors.
			cx := x + (r.Float32()-0.5)*spec.GridSpacing*0.4
			cy := y + (r.Float32()-0.5)*spec.GridSpacing*0.4
			hw := spec.GridSpacing * (0.15 + 0.2*r.Float32())
			hh := spec.GridSpacing * (0.15 + 0.2*r.Float32())

			c.Buildings = append(c.Buildings, Building{
				Footprint: extentAround(cx, cy, hw, hh),
				Height:    spec.MinHeight + r.Float32()*(spec.MaxHeight-spec.MinHeight),
			})
		}
	}

	var spaces []ParkingSpace
	for id := 0; id < spec.ParkingSpaces; id++ {
		p := findClearPoint(c, r)
		spaces = append(spaces, ParkingSpace{Id: id, Position: p})
	}
	c.Lot = NewParkingLot(spaces)

	lg.Info("generated city",
		"buildings", len(c.Buildings),
		"parking_spaces", len(spaces))
	return c
}

// findClearPoint rejection-samples a point outside every footprint and
// off the water; after enough failures it settles for whatever it has.
func findClearPoint(c *City, r *rand.Rand) [2]float32 {
	var p [2]float32
	for try := 0; try < 100; try++ {
		p = [2]float32{r.Float32() * c.Width, r.Float32() * c.Height}
		if c.BuildingAt(p) == nil && !c.IsWater(p[0], p[1]) {
			return p
		}
	}
	return p
}

func extentAround(cx, cy, hw, hh float32) math.Extent2D {
	return math.Extent2D{
		P0: [2]float32{cx - hw, cy - hh},
		P1: [2]float32{cx + hw, cy + hh},
	}
}
