// hazard/hazard_test.go
// Copyright(c) 2025 jetsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package hazard

import "testing"

func TestEffectiveSpeed(t *testing.T) {
	var f Flags
	if got := f.EffectiveSpeed(2); got != 2 {
		t.Errorf("no hazards: got %f, expected 2", got)
	}

	f = f.Set(Weather)
	if got := f.EffectiveSpeed(2); got != 1 {
		t.Errorf("weather: got %f, expected 1", got)
	}

	// Other hazards do not slow traffic.
	f = Flags(0).Set(Police).Set(Accident)
	if got := f.EffectiveSpeed(2); got != 2 {
		t.Errorf("police+accident: got %f, expected 2", got)
	}
}

func TestStatusLabelPriority(t *testing.T) {
	testCases := []struct {
		f        Flags
		expected string
	}{
		{0, "ACTIVE"},
		{Flags(0).Set(Police), "POLICE ACTIVITY"},
		{Flags(0).Set(Police).Set(Accident), "ACCIDENT"},
		{Flags(0).Set(Accident).Set(BuildingCollapse), "BUILDING COLLAPSE"},
		{Flags(0).Set(BuildingCollapse).Set(Weather), "WEATHER"},
		{Flags(0).Set(Weather).Set(EmergencyHalt), "EMERGENCY HALT"},
	}
	for _, tc := range testCases {
		if got := tc.f.StatusLabel(); got != tc.expected {
			t.Errorf("%v: got %q, expected %q", tc.f, got, tc.expected)
		}
	}
}

func TestSetClearHalted(t *testing.T) {
	f := Flags(0).Set(EmergencyHalt)
	if !f.Halted() {
		t.Errorf("expected halted")
	}
	f = f.Clear(EmergencyHalt)
	if f.Halted() || f.HasActive() {
		t.Errorf("expected no active hazards after clear, got %v", f)
	}
}
