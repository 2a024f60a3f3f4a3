// hazard/hazard.go
// Copyright(c) 2025 jetsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package hazard

import "strings"

// Flags is a bitset of the hazards currently affecting an aircraft.
// Multiple hazards may be active at once; no precedence is enforced among
// them except that EmergencyHalt freezes movement entirely.
type Flags int

const (
	Weather Flags = 1 << iota
	BuildingCollapse
	Accident
	Police
	EmergencyHalt
)

func (f Flags) String() string {
	var parts []string
	if f&EmergencyHalt != 0 {
		parts = append(parts, "emergency-halt")
	}
	if f&Weather != 0 {
		parts = append(parts, "weather")
	}
	if f&BuildingCollapse != 0 {
		parts = append(parts, "building-collapse")
	}
	if f&Accident != 0 {
		parts = append(parts, "accident")
	}
	if f&Police != 0 {
		parts = append(parts, "police")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

func (f Flags) Set(h Flags) Flags   { return f | h }
func (f Flags) Clear(h Flags) Flags { return f &^ h }
func (f Flags) Active(h Flags) bool { return f&h != 0 }
func (f Flags) HasActive() bool     { return f != 0 }

// Halted reports whether movement is frozen outright.
func (f Flags) Halted() bool { return f&EmergencyHalt != 0 }

// EffectiveSpeed scales the base speed down for active hazards; currently
// only weather slows traffic.
func (f Flags) EffectiveSpeed(base float32) float32 {
	if f&Weather != 0 {
		return base * 0.5
	}
	return base
}

// StatusLabel picks a single display label by fixed priority.
func (f Flags) StatusLabel() string {
	switch {
	case f&EmergencyHalt != 0:
		return "EMERGENCY HALT"
	case f&Weather != 0:
		return "WEATHER"
	case f&BuildingCollapse != 0:
		return "BUILDING COLLAPSE"
	case f&Accident != 0:
		return "ACCIDENT"
	case f&Police != 0:
		return "POLICE ACTIVITY"
	default:
		return "ACTIVE"
	}
}
