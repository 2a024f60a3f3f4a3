// nav/lateral.go
// Copyright(c) 2025 jetsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

import (
	"slices"

	"github.com/vertiport/jetsim/math"
)

// Update advances the aircraft one tick toward the active target at the
// given speed. It returns true if the position changed. When halted,
// nothing is touched, the trail included.
func (nav *Nav) Update(speed float32, halted bool) bool {
	if halted {
		return false
	}

	nav.recordTrail()

	target := nav.ActiveTarget()
	dist := math.Distance2f(nav.Position, target)

	if dist == 0 {
		// Already sitting on the target; just consume the arrival.
		nav.consumeArrival()
		return false
	}

	arriving := dist <= speed
	var next [2]float32
	if arriving {
		next = target
	} else {
		// dist > speed >= 0 here, so the direction is well defined.
		dir := math.Normalize2f(math.Sub2f(target, nav.Position))
		next = math.Add2f(nav.Position, math.Scale2f(dir, speed))
	}

	if next == nav.Position {
		// Zero speed, or a step too small to represent: hold this tick
		// without touching the route.
		return false
	}

	if nav.Detector != nil && !nav.Detector.PathClear(nav.Position, nav.Altitude, next, nav.Altitude) {
		return nav.avoidCollision(next)
	}

	nav.Position = next
	if arriving {
		nav.consumeArrival()
	}
	return true
}

// consumeArrival handles reaching the active target: either the detour
// head or the waypoint cursor advances, never both in the same tick.
func (nav *Nav) consumeArrival() {
	if nav.DetourActive {
		nav.Detour = nav.Detour[1:]
		if len(nav.Detour) == 0 {
			nav.ResumeNormalPath()
		}
		return
	}
	if nav.WaypointIdx < len(nav.Waypoints) {
		nav.WaypointIdx++
	}
}

// avoidCollision responds to a blocked step: climb if we're below the
// obstacle, otherwise detour around it, otherwise sidestep, otherwise
// hold position for the tick. Horizontal progress toward the target is
// never made on a blocked tick; a lateral sidestep is the only motion
// that can happen.
func (nav *Nav) avoidCollision(next [2]float32) bool {
	if msa := nav.Detector.MinimumSafeAltitude(next); msa > 0 && nav.Altitude < msa {
		nav.Altitude = math.Clamp(min(nav.Altitude+MaxClimbPerTick, msa+ClimbClearance),
			AltitudeMin, AltitudeMax)
		return false
	}

	if corner, ok := nav.detourCorner(next); ok {
		// Prepend so an existing detour resumes after the new corner.
		nav.Detour = slices.Insert(nav.Detour, 0, corner)
		nav.DetourActive = true
		return false
	}

	return nav.evadeLaterally(next)
}

// detourCorner picks a corner of the blocking building, pushed out by a
// margin, that is reachable along a clear path; among the reachable ones
// it takes the one minimizing the dogleg through it to the target.
func (nav *Nav) detourCorner(next [2]float32) ([2]float32, bool) {
	b := nav.Detector.blockingBuilding(nav.Position, nav.Altitude, next, nav.Altitude)
	if b == nil {
		return [2]float32{}, false
	}

	target := nav.ActiveTarget()
	corners := b.Footprint.Expand(DetourCornerMargin).Corners()

	var best [2]float32
	bestCost := float32(1e30)
	found := false
	for _, c := range corners {
		// A corner we are already sitting on is no detour at all; skipping
		// it avoids ping-ponging between a corner and the blocked course.
		if math.Distance2f(nav.Position, c) < 1 {
			continue
		}
		if !nav.Detector.PathClear(nav.Position, nav.Altitude, c, nav.Altitude) {
			continue
		}
		cost := math.Distance2f(nav.Position, c) + math.Distance2f(c, target)
		if cost < bestCost {
			bestCost = cost
			best = c
			found = true
		}
	}
	return best, found
}

// evadeLaterally tries a perpendicular sidestep when no detour corner
// works; if neither side is clear the aircraft holds in place.
func (nav *Nav) evadeLaterally(next [2]float32) bool {
	dir := math.Normalize2f(math.Sub2f(next, nav.Position))
	perp := math.Scale2f(math.Perp2f(dir), EvadeOffset)

	for _, cand := range [][2]float32{math.Add2f(nav.Position, perp), math.Sub2f(nav.Position, perp)} {
		if nav.Detector.PathClear(nav.Position, nav.Altitude, cand, nav.Altitude) {
			nav.Position = cand
			return true
		}
	}
	return false
}

func (nav *Nav) recordTrail() {
	nav.Trail = slices.Insert(nav.Trail, 0, nav.Position)
	if len(nav.Trail) > TrailLength {
		nav.Trail = nav.Trail[:TrailLength]
	}
}
