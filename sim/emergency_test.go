// sim/emergency_test.go
// Copyright(c) 2025 jetsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"image"
	"image/color"
	"testing"

	"github.com/vertiport/jetsim/city"
	"github.com/vertiport/jetsim/rand"
)

func testCity(spaces ...city.ParkingSpace) *city.City {
	return &city.City{Width: 500, Height: 500, Lot: city.NewParkingLot(spaces)}
}

func testHandler() *EmergencyHandler {
	return NewEmergencyHandler("N1JP", nil, rand.New(1), nil)
}

func TestFindLandingSpotNearest(t *testing.T) {
	c := testCity(
		city.ParkingSpace{Id: 1, Position: [2]float32{10, 0}},
		city.ParkingSpace{Id: 2, Position: [2]float32{50, 0}})

	space := testHandler().FindEmergencyLandingSpot([2]float32{0, 0}, c, "test")
	if space == nil {
		t.Fatalf("no space found")
	}
	if space.Id != 1 {
		t.Errorf("got space %d, expected the nearer space 1", space.Id)
	}
}

func TestFindLandingSpotNoneAvailable(t *testing.T) {
	if space := testHandler().FindEmergencyLandingSpot([2]float32{0, 0}, testCity(), "test"); space != nil {
		t.Errorf("empty lot returned space %+v", space)
	}

	c := testCity(
		city.ParkingSpace{Id: 1, Position: [2]float32{10, 0}, Occupied: true},
		city.ParkingSpace{Id: 2, Position: [2]float32{50, 0}, Occupied: true})
	if space := testHandler().FindEmergencyLandingSpot([2]float32{0, 0}, c, "test"); space != nil {
		t.Errorf("fully occupied lot returned space %+v", space)
	}
}

// halfWaterImage returns a w by h image whose left half is land and
// right half is water.
func halfWaterImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	land := color.RGBA{R: 120, G: 180, B: 60, A: 255}
	water := color.RGBA{R: 20, G: 60, B: 200, A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w/2 {
				img.Set(x, y, land)
			} else {
				img.Set(x, y, water)
			}
		}
	}
	return img
}

func TestFindLandingSpotRedirectsOffWater(t *testing.T) {
	// The aircraft is over water at x=400 and the shoreline is at x=250.
	// Space 1 is much closer to the aircraft but the spiral search moves
	// the reference point to dry land first, so space 2 wins.
	c := testCity(
		city.ParkingSpace{Id: 1, Position: [2]float32{390, 100}},
		city.ParkingSpace{Id: 2, Position: [2]float32{240, 100}})
	c.Terrain = city.NewTerrainMap(halfWaterImage(500, 500))

	space := testHandler().FindEmergencyLandingSpot([2]float32{400, 100}, c, "test")
	if space == nil {
		t.Fatalf("no space found")
	}
	if space.Id != 2 {
		t.Errorf("got space %d, expected the landward space 2", space.Id)
	}
}

func TestCheckDestinationReached(t *testing.T) {
	h := testHandler()
	dest := h.ReceiveCoordinateInstruction([2]float32{50, 50}, "reroute")
	if !h.FollowingInstruction {
		t.Fatalf("instruction did not set FollowingInstruction")
	}

	if h.CheckDestinationReached([2]float32{1, 1}, 1, 2) {
		t.Errorf("reported reached for a coordinate that was never instructed")
	}
	if h.CheckDestinationReached(dest, 5, 2) {
		t.Errorf("reported reached at distance 5 with speed 2")
	}
	if !h.CheckDestinationReached(dest, 3, 2) {
		t.Errorf("not reached at distance 3 with speed 2")
	}
	if h.FollowingInstruction {
		t.Errorf("FollowingInstruction still set after the only instruction cleared")
	}
	if h.CheckDestinationReached(dest, 0, 2) {
		t.Errorf("second check after clearing still reports reached")
	}
}

func TestInstructionClearingOrder(t *testing.T) {
	// With both a coordinate and an altitude pending, retiring the
	// coordinate alone must not end the following-instruction state.
	h := testHandler()
	dest := h.ReceiveCoordinateInstruction([2]float32{50, 50}, "reroute")
	h.ReceiveAltitudeInstruction(100, 150, "climb")

	if !h.CheckDestinationReached(dest, 1, 2) {
		t.Fatalf("coordinate not reached")
	}
	if !h.FollowingInstruction {
		t.Errorf("FollowingInstruction dropped while an altitude still pends")
	}

	if h.CheckAltitudeReached(140) {
		t.Errorf("altitude 140 reported reached for target 150")
	}
	if !h.CheckAltitudeReached(149.5) {
		t.Errorf("altitude 149.5 not reached for target 150")
	}
	if h.FollowingInstruction {
		t.Errorf("FollowingInstruction still set after both instructions cleared")
	}
}

func TestReceiveAltitudeInstructionStep(t *testing.T) {
	h := testHandler()
	if got := h.ReceiveAltitudeInstruction(100, 150, "climb"); got != 105 {
		t.Errorf("first step toward 150 from 100: got %.1f, expected 105", got)
	}
	if h.PendingAltitude == nil || *h.PendingAltitude != 150 {
		t.Errorf("pending altitude not recorded")
	}
	if got := h.ReceiveAltitudeInstruction(100, 102, "nudge"); got != 102 {
		t.Errorf("short step to 102 from 100: got %.1f", got)
	}
	if got := h.ReceiveAltitudeInstruction(100, 80, "descend"); got != 95 {
		t.Errorf("first step toward 80 from 100: got %.1f, expected 95", got)
	}
}

func TestGenerateEmergencyDetour(t *testing.T) {
	h := testHandler()
	p, dest := [2]float32{10, 10}, [2]float32{300, 300}
	route := h.GenerateEmergencyDetour(p, dest)

	if len(route) != 2 {
		t.Fatalf("detour has %d points, expected 2", len(route))
	}
	if route[1] != dest {
		t.Errorf("detour does not end at the destination: %v", route)
	}
	for i := 0; i < 2; i++ {
		off := route[0][i] - p[i]
		if off < -EmergencyDetourSpread || off > EmergencyDetourSpread {
			t.Errorf("intermediate point offset %.1f outside the spread", off)
		}
	}
}
