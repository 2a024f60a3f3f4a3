// nav/detector.go
// Copyright(c) 2025 jetsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/vertiport/jetsim/city"
	"github.com/vertiport/jetsim/math"
)

// Detector answers collision queries against a city's building volumes.
// The city is static during simulation, so minimum-safe-altitude results
// are memoized; the cache is a lookup shortcut, not a source of truth.
type Detector struct {
	city     *city.City
	msaCache *expirable.LRU[[2]int32, float32]
}

func NewDetector(c *city.City) *Detector {
	return &Detector{
		city:     c,
		msaCache: expirable.NewLRU[[2]int32, float32](4096, nil, time.Minute),
	}
}

// PathClear tests the straight 3D segment from (p0, alt0) to (p1, alt1)
// against every building volume and reports whether it is unobstructed.
func (d *Detector) PathClear(p0 [2]float32, alt0 float32, p1 [2]float32, alt1 float32) bool {
	for i := range d.city.Buildings {
		b := &d.city.Buildings[i]
		hit, t0, t1 := b.Footprint.IntersectSegment(p0, p1)
		if !hit {
			continue
		}
		// Altitude is linear along the segment, so the lowest point while
		// over the footprint is at one end of the overlap range.
		a0 := math.Lerp(t0, alt0, alt1)
		a1 := math.Lerp(t1, alt0, alt1)
		if min(a0, a1) <= b.Height {
			return false
		}
	}
	return true
}

// MinimumSafeAltitude returns the height of the tallest building whose
// footprint contains p, or 0 if the point is clear down to ground level.
// Results are cached at integer-cell granularity; building footprints are
// tens of units across so the quantization is well below their scale.
func (d *Detector) MinimumSafeAltitude(p [2]float32) float32 {
	key := [2]int32{int32(math.Floor(p[0])), int32(math.Floor(p[1]))}
	if msa, ok := d.msaCache.Get(key); ok {
		return msa
	}

	msa := float32(0)
	if b := d.city.BuildingAt(p); b != nil {
		msa = b.Height
	}
	d.msaCache.Add(key, msa)
	return msa
}

// blockingBuilding returns the building nearest to p0 among those the
// segment from p0 to p1 passes through at the given altitudes.
func (d *Detector) blockingBuilding(p0 [2]float32, alt0 float32, p1 [2]float32, alt1 float32) *city.Building {
	var blocking *city.Building
	dmin := float32(1e30)
	for i := range d.city.Buildings {
		b := &d.city.Buildings[i]
		hit, t0, t1 := b.Footprint.IntersectSegment(p0, p1)
		if !hit {
			continue
		}
		a0 := math.Lerp(t0, alt0, alt1)
		a1 := math.Lerp(t1, alt0, alt1)
		if min(a0, a1) > b.Height {
			continue
		}
		if dist := b.DistanceTo(p0); dist < dmin {
			dmin = dist
			blocking = b
		}
	}
	return blocking
}
