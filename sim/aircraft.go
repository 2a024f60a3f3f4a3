// sim/aircraft.go
// Copyright(c) 2025 jetsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"log/slog"

	"github.com/vertiport/jetsim/city"
	"github.com/vertiport/jetsim/hazard"
	"github.com/vertiport/jetsim/log"
	"github.com/vertiport/jetsim/math"
	"github.com/vertiport/jetsim/nav"
	"github.com/vertiport/jetsim/rand"
)

const (
	// Speed bump applied when an aircraft is sent to an emergency
	// landing, and the hard ceiling it can never exceed.
	EmergencySpeedFactor = 1.5
	MaxSpeed             = 5.0
)

// RGB is a display color for an aircraft track.
type RGB struct {
	R, G, B float32
}

var (
	ColorSlow    = RGB{R: 0.9, G: 0.2, B: 0.2}
	ColorReduced = RGB{R: 0.9, G: 0.6, B: 0.2}
	ColorModest  = RGB{R: 0.9, G: 0.9, B: 0.3}
	ColorNormal  = RGB{R: 0.2, G: 0.85, B: 0.3}
)

// Aircraft ties together the hazard flags, the movement controller, and
// the emergency handler for one jetpack. All mutation happens through
// the per-tick Update and through instructions; rendering and tests go
// through the getters.
type Aircraft struct {
	Callsign  string
	BaseSpeed float32
	Hazards   hazard.Flags

	Nav       *nav.Nav
	Emergency *EmergencyHandler

	city   *city.City
	events *EventStream
	lg     *log.Logger

	// parkingId is the claimed space during an emergency landing, -1
	// otherwise.
	parkingId        int
	emergencyLanding bool
	landedPosted     bool
}

func NewAircraft(callsign string, pos [2]float32, alt float32, dest [2]float32,
	route [][2]float32, speed float32, c *city.City, events *EventStream,
	r *rand.Rand, lg *log.Logger) *Aircraft {
	ac := &Aircraft{
		Callsign:  callsign,
		BaseSpeed: speed,
		Nav:       nav.Make(pos, alt, dest, route, r),
		Emergency: NewEmergencyHandler(callsign, events, r, lg),
		city:      c,
		events:    events,
		lg:        lg,
		parkingId: -1,
	}
	if c != nil {
		ac.Nav.Detector = nav.NewDetector(c)
	}
	return ac
}

// UpdatePosition advances the aircraft one tick: lateral movement
// first, then the instruction arrival checks, then altitude. The
// destination check runs before the altitude check so that when both
// instructions are satisfied on the same tick the coordinate is retired
// first and the altitude check is the one that drops the
// following-instruction state.
func (ac *Aircraft) UpdatePosition() {
	speed := ac.Hazards.EffectiveSpeed(ac.BaseSpeed)
	halted := ac.Hazards.Halted()
	moved := ac.Nav.Update(speed, halted)

	if ac.Emergency.PendingCoordinate != nil {
		d := math.Distance2f(ac.Nav.Position, ac.Nav.Destination)
		ac.Emergency.CheckDestinationReached(ac.Nav.Destination, d, speed)
	}
	ac.Emergency.CheckAltitudeReached(ac.Nav.Altitude)

	if !halted {
		ac.Nav.UpdateAltitude(ac.Emergency.PendingAltitude)
	}

	if moved {
		ac.post(Event{Type: MovementEvent, Callsign: ac.Callsign, Position: ac.Nav.Position})
	}
	if ac.emergencyLanding && !ac.landedPosted && ac.Nav.HasReachedDestination() {
		ac.landedPosted = true
		ac.lg.Info("aircraft landed", slog.String("callsign", ac.Callsign),
			slog.Int("parking", ac.parkingId))
		ac.post(Event{Type: LandedEvent, Callsign: ac.Callsign, Position: ac.Nav.Position})
	}
}

// Status returns the display status line for the aircraft.
func (ac *Aircraft) Status() string {
	if ac.Hazards.Halted() {
		return ac.Hazards.StatusLabel()
	}
	if ac.emergencyLanding {
		return "EMERGENCY LANDING"
	}
	if ac.Emergency.FollowingInstruction {
		return "FOLLOWING INSTRUCTION"
	}
	return ac.Hazards.StatusLabel()
}

// DisplayColor maps the current effective speed to a track color;
// slower aircraft draw hotter colors.
func (ac *Aircraft) DisplayColor() RGB {
	switch speed := ac.Hazards.EffectiveSpeed(ac.BaseSpeed); {
	case speed < 1:
		return ColorSlow
	case speed < 2:
		return ColorReduced
	case speed < 3:
		return ColorModest
	default:
		return ColorNormal
	}
}

// EmergencyLanding redirects the aircraft to the nearest free parking
// space and claims it. Claiming can race with other aircraft landing at
// the same time, so the search is retried until a claim sticks or no
// spaces remain; with nothing left the aircraft halts in place.
func (ac *Aircraft) EmergencyLanding(reason string) bool {
	for {
		space := ac.Emergency.FindEmergencyLandingSpot(ac.Nav.Position, ac.city, reason)
		if space == nil {
			ac.Halt("no parking available: " + reason)
			return false
		}
		if !ac.city.Lot.Claim(space.Id) {
			// Another aircraft got there first; pick again from what is
			// left.
			continue
		}

		ac.parkingId = space.Id
		ac.emergencyLanding = true
		ac.Nav.ReplaceRoute(space.Position)
		ac.BaseSpeed = min(ac.BaseSpeed*EmergencySpeedFactor, MaxSpeed)

		ac.lg.Info("emergency landing", slog.String("callsign", ac.Callsign),
			slog.Int("parking", space.Id), slog.String("reason", reason))
		ac.post(Event{Type: EmergencyLandingEvent, Callsign: ac.Callsign,
			Message: reason, Position: space.Position})
		return true
	}
}

// Halt stops the aircraft in place until ClearEmergencyHalt.
func (ac *Aircraft) Halt(reason string) {
	ac.Hazards = ac.Hazards.Set(hazard.EmergencyHalt)
	ac.lg.Warn("aircraft halted", slog.String("callsign", ac.Callsign),
		slog.String("reason", reason))
	ac.post(Event{Type: HazardEvent, Callsign: ac.Callsign, Message: reason,
		Position: ac.Nav.Position})
}

func (ac *Aircraft) ClearEmergencyHalt() {
	ac.Hazards = ac.Hazards.Clear(hazard.EmergencyHalt)
}

// Detour pushes a temporary route in front of the aircraft's current
// plan; the normal route resumes once the points are flown.
func (ac *Aircraft) Detour(points [][2]float32, reason string) {
	ac.Nav.SetDetour(points)
	ac.lg.Info("detour", slog.String("callsign", ac.Callsign),
		slog.Int("points", len(points)), slog.String("reason", reason))
}

// ResumeNormalPath abandons any active detour and returns to the
// planned route.
func (ac *Aircraft) ResumeNormalPath() {
	ac.Nav.ResumeNormalPath()
}

// ReceiveCoordinateInstruction implements Commandable: the instructed
// point becomes the new destination, approached through a randomized
// intermediate point.
func (ac *Aircraft) ReceiveCoordinateInstruction(p [2]float32, reason string) {
	dest := ac.Emergency.ReceiveCoordinateInstruction(p, reason)
	ac.Nav.ReplaceRoute(dest)
	ac.Nav.SetDetour(ac.Emergency.GenerateEmergencyDetour(ac.Nav.Position, dest))
}

// ReceiveAltitudeInstruction implements Commandable: begin moving to the
// instructed altitude.
func (ac *Aircraft) ReceiveAltitudeInstruction(alt float32, reason string) {
	next := ac.Emergency.ReceiveAltitudeInstruction(ac.Nav.Altitude, alt, reason)
	ac.Nav.Altitude = math.Clamp(next, nav.AltitudeMin, nav.AltitudeMax)
}

// ReceiveEmergencyLandingInstruction implements Commandable.
func (ac *Aircraft) ReceiveEmergencyLandingInstruction(reason string) {
	ac.EmergencyLanding(reason)
}

func (ac *Aircraft) Position() [2]float32    { return ac.Nav.Position }
func (ac *Aircraft) Altitude() float32       { return ac.Nav.Altitude }
func (ac *Aircraft) Trail() [][2]float32     { return ac.Nav.Trail }
func (ac *Aircraft) Waypoints() [][2]float32 { return ac.Nav.Waypoints }
func (ac *Aircraft) Landed() bool {
	return ac.emergencyLanding && ac.Nav.HasReachedDestination()
}

func (ac *Aircraft) post(e Event) {
	if ac.events != nil {
		ac.events.Post(e)
	}
}

func (ac *Aircraft) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("callsign", ac.Callsign),
		slog.String("status", ac.Status()),
		slog.Any("nav", ac.Nav),
		slog.Any("emergency", ac.Emergency))
}
