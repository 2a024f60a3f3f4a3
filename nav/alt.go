// nav/alt.go
// Copyright(c) 2025 jetsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

import (
	"github.com/vertiport/jetsim/math"
)

// UpdateAltitude moves the altitude one tick toward target, or applies a
// small random drift when there is no target. The result always stays
// within [AltitudeMin, AltitudeMax].
func (nav *Nav) UpdateAltitude(target *float32) {
	if target != nil {
		diff := *target - nav.Altitude
		if math.Abs(diff) > 1 {
			nav.Altitude += math.Sign(diff) * min(math.Abs(diff), MaxAltitudeStep)
		}
	} else if nav.Rand != nil {
		nav.Altitude += nav.Rand.Float32()*2 - 1
	}

	nav.Altitude = math.Clamp(nav.Altitude, AltitudeMin, AltitudeMax)
}
