// nav/nav.go
// Copyright(c) 2025 jetsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

import (
	"log/slog"

	"github.com/brunoga/deep"

	"github.com/vertiport/jetsim/math"
	"github.com/vertiport/jetsim/rand"
)

const (
	// Altitude envelope for jetpack traffic.
	AltitudeMin = 50
	AltitudeMax = 200

	// Per-tick motion limits.
	MaxClimbPerTick    = 5.0
	MaxAltitudeStep    = 3.0
	ClimbClearance     = 5.0
	EvadeOffset        = 10.0
	DetourCornerMargin = 5.0

	TrailLength = 15
)

// Nav holds the per-aircraft movement state and advances it one tick at a
// time. The route waypoints are consumed by cursor, never removed, so the
// original route can be replayed after a detour.
type Nav struct {
	Position [2]float32
	Altitude float32

	Destination [2]float32
	Waypoints   [][2]float32
	WaypointIdx int

	// Detour points take priority over the waypoint route while active.
	// DetourActive implies the detour slice is non-empty.
	Detour       [][2]float32
	DetourActive bool

	// Trail is the recent position history, newest first; rendering only.
	Trail [][2]float32

	Rand     *rand.Rand
	Detector *Detector
}

// Make returns a Nav at the given position flying toward dest through the
// provided route.
func Make(pos [2]float32, alt float32, dest [2]float32, route [][2]float32, r *rand.Rand) *Nav {
	return &Nav{
		Position:    pos,
		Altitude:    math.Clamp(alt, AltitudeMin, AltitudeMax),
		Destination: dest,
		Waypoints:   route,
		Rand:        r,
	}
}

// ActiveTarget resolves the single point currently being navigated
// toward: detour head, then current waypoint, then destination.
func (nav *Nav) ActiveTarget() [2]float32 {
	if nav.DetourActive {
		return nav.Detour[0]
	}
	if nav.WaypointIdx < len(nav.Waypoints) {
		return nav.Waypoints[nav.WaypointIdx]
	}
	return nav.Destination
}

// SetDetour replaces any active detour with the given points; an empty or
// nil detour request is ignored.
func (nav *Nav) SetDetour(points [][2]float32) {
	if len(points) == 0 {
		return
	}
	nav.Detour = append([][2]float32(nil), points...)
	nav.DetourActive = true
}

// ResumeNormalPath drops detour state; the waypoint cursor picks up where
// it left off.
func (nav *Nav) ResumeNormalPath() {
	nav.Detour = nil
	nav.DetourActive = false
}

// ReplaceRoute discards waypoints and detours and flies direct to dest.
func (nav *Nav) ReplaceRoute(dest [2]float32) {
	nav.ResumeNormalPath()
	nav.Waypoints = nil
	nav.WaypointIdx = 0
	nav.Destination = dest
}

func (nav *Nav) HasReachedDestination() bool {
	return !nav.DetourActive && nav.WaypointIdx >= len(nav.Waypoints) &&
		math.Distance2f(nav.Position, nav.Destination) < 1e-3
}

// RouteSnapshot captures the route-related Nav state for later rollback;
// it does not include the aircraft's physical position or altitude.
type RouteSnapshot struct {
	Destination  [2]float32
	Waypoints    [][2]float32
	WaypointIdx  int
	Detour       [][2]float32
	DetourActive bool
}

// TakeSnapshot captures the current route state.
func (nav *Nav) TakeSnapshot() RouteSnapshot {
	return deep.MustCopy(RouteSnapshot{
		Destination:  nav.Destination,
		Waypoints:    nav.Waypoints,
		WaypointIdx:  nav.WaypointIdx,
		Detour:       nav.Detour,
		DetourActive: nav.DetourActive,
	})
}

// RestoreSnapshot restores route state from a previously captured
// snapshot. Position and altitude are not restored.
func (nav *Nav) RestoreSnapshot(snap RouteSnapshot) {
	nav.Destination = snap.Destination
	nav.Waypoints = snap.Waypoints
	nav.WaypointIdx = snap.WaypointIdx
	nav.Detour = snap.Detour
	nav.DetourActive = snap.DetourActive
}

func (nav *Nav) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("position", nav.Position),
		slog.Float64("altitude", float64(nav.Altitude)),
		slog.Any("destination", nav.Destination),
		slog.Int("waypoint_idx", nav.WaypointIdx),
		slog.Bool("detour_active", nav.DetourActive))
}
