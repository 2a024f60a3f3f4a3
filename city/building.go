// city/building.go
// Copyright(c) 2025 jetsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package city

import (
	"github.com/vertiport/jetsim/math"
)

// Building is an axis-aligned box volume: a 2D footprint extruded from
// ground level up to Height.
type Building struct {
	Footprint math.Extent2D `msgpack:"footprint"`
	Height    float32       `msgpack:"height"`
}

// ContainsPoint reports whether p is inside the footprint, ignoring
// altitude.
func (b *Building) ContainsPoint(p [2]float32) bool {
	return b.Footprint.Inside(p)
}

// Contains3D reports whether the 3D point (p, alt) is inside the building
// volume.
func (b *Building) Contains3D(p [2]float32, alt float32) bool {
	return b.Footprint.Inside(p) && alt >= 0 && alt <= b.Height
}

// DistanceTo returns the horizontal distance from p to the footprint;
// zero if p is inside it.
func (b *Building) DistanceTo(p [2]float32) float32 {
	return math.Distance2f(p, b.Footprint.ClosestPointInBox(p))
}

// IntersectsSphere reports whether a sphere of the given radius centered
// at (center, alt) overlaps the building volume.
func (b *Building) IntersectsSphere(center [2]float32, alt, radius float32) bool {
	closest := b.Footprint.ClosestPointInBox(center)
	dh := math.Distance2f(center, closest)
	dv := float32(0)
	if alt > b.Height {
		dv = alt - b.Height
	} else if alt < 0 {
		dv = -alt
	}
	return dh*dh+dv*dv <= radius*radius
}

// City holds the static world state: building volumes, map bounds, the
// parking registry, and the terrain classification. It is read-only
// during simulation and so is safely shared across aircraft without
// locking; the ParkingLot does its own locking.
type City struct {
	Buildings []Building `msgpack:"buildings"`
	Width     float32    `msgpack:"width"`
	Height    float32    `msgpack:"height"`

	Lot     *ParkingLot `msgpack:"lot"`
	Terrain *TerrainMap `msgpack:"-"`
}

// Bounds returns the map extent.
func (c *City) Bounds() math.Extent2D {
	return math.Extent2D{P0: [2]float32{0, 0}, P1: [2]float32{c.Width, c.Height}}
}

// BuildingAt returns the tallest building whose footprint contains p, or
// nil if the point is in the clear.
func (c *City) BuildingAt(p [2]float32) *Building {
	var tallest *Building
	for i := range c.Buildings {
		b := &c.Buildings[i]
		if b.ContainsPoint(p) && (tallest == nil || b.Height > tallest.Height) {
			tallest = b
		}
	}
	return tallest
}

// NearestBuilding returns the building closest to p, or nil for an empty
// city.
func (c *City) NearestBuilding(p [2]float32) *Building {
	var nearest *Building
	dmin := float32(1e30)
	for i := range c.Buildings {
		if d := c.Buildings[i].DistanceTo(p); d < dmin {
			dmin = d
			nearest = &c.Buildings[i]
		}
	}
	return nearest
}

// IsWater reports whether (x, y) is over water; without terrain data
// everything is dry land.
func (c *City) IsWater(x, y float32) bool {
	if c.Terrain == nil {
		return false
	}
	return c.Terrain.IsWater(x, y)
}
