// sim/emergency.go
// Copyright(c) 2025 jetsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"log/slog"

	"github.com/vertiport/jetsim/city"
	"github.com/vertiport/jetsim/log"
	"github.com/vertiport/jetsim/math"
	"github.com/vertiport/jetsim/rand"
)

const (
	// Spiral search parameters for moving an emergency landing point off
	// of water: ring spacing and the number of samples per unit of ring
	// radius.
	WaterSearchRadiusStep     = 10
	WaterSearchSamplesPerUnit = 4

	// An altitude instruction is applied at most this fast.
	InstructionAltitudeStep = 5.0

	// Maximum lateral offset of the intermediate emergency detour point.
	EmergencyDetourSpread = 100
)

// EmergencyHandler tracks the control instructions an aircraft is
// currently following. At most one coordinate and one altitude
// instruction can pend at a time; a newer instruction of the same kind
// replaces the older one.
type EmergencyHandler struct {
	PendingCoordinate    *[2]float32
	PendingAltitude      *float32
	FollowingInstruction bool

	callsign string
	events   *EventStream
	lg       *log.Logger
	rand     *rand.Rand
}

func NewEmergencyHandler(callsign string, events *EventStream, r *rand.Rand, lg *log.Logger) *EmergencyHandler {
	return &EmergencyHandler{
		callsign: callsign,
		events:   events,
		lg:       lg,
		rand:     r,
	}
}

// ReceiveCoordinateInstruction records a new target coordinate and
// returns it; the caller is responsible for actually flying there.
func (h *EmergencyHandler) ReceiveCoordinateInstruction(p [2]float32, reason string) [2]float32 {
	h.PendingCoordinate = &p
	h.FollowingInstruction = true

	h.lg.Info("coordinate instruction", slog.String("callsign", h.callsign),
		slog.Any("target", p), slog.String("reason", reason))
	h.post(Event{Type: EmergencyInstructionEvent, Callsign: h.callsign,
		Message: reason, Position: p})
	return p
}

// ReceiveAltitudeInstruction records a new target altitude and returns
// the current altitude stepped at most InstructionAltitudeStep toward
// it; further progress happens tick by tick via the pending target.
func (h *EmergencyHandler) ReceiveAltitudeInstruction(current, target float32, reason string) float32 {
	h.PendingAltitude = &target
	h.FollowingInstruction = true

	h.lg.Info("altitude instruction", slog.String("callsign", h.callsign),
		slog.Float64("target", float64(target)), slog.String("reason", reason))
	h.post(Event{Type: EmergencyInstructionEvent, Callsign: h.callsign, Message: reason})

	diff := target - current
	return current + math.Sign(diff)*min(math.Abs(diff), InstructionAltitudeStep)
}

// FindEmergencyLandingSpot returns the unoccupied parking space nearest
// to p, after first moving p off of any water so the aircraft does not
// get directed to ditch. It returns nil when the city has no parking at
// all or every space is taken; the caller should halt in place.
func (h *EmergencyHandler) FindEmergencyLandingSpot(p [2]float32, c *city.City, reason string) *city.ParkingSpace {
	if c.Lot.Len() == 0 {
		h.lg.Warn("no parking spaces in the city", slog.String("callsign", h.callsign),
			slog.String("reason", reason))
		return nil
	}

	p = h.redirectFromWater(p, c)

	free := c.Lot.Unoccupied()
	if len(free) == 0 {
		h.lg.Warn("all parking spaces occupied", slog.String("callsign", h.callsign),
			slog.String("reason", reason))
		return nil
	}

	best := 0
	for i := 1; i < len(free); i++ {
		if math.Distance2f(p, free[i].Position) < math.Distance2f(p, free[best].Position) {
			best = i
		}
	}
	return &free[best]
}

// redirectFromWater spirals outward from p in rings of increasing radius
// and returns the first dry sample point; p itself is returned when it
// is already dry or no dry point exists within the city extent.
func (h *EmergencyHandler) redirectFromWater(p [2]float32, c *city.City) [2]float32 {
	if c.Terrain == nil || !c.IsWater(p[0], p[1]) {
		return p
	}

	maxRadius := max(c.Width, c.Height)
	for radius := float32(WaterSearchRadiusStep); radius <= maxRadius; radius += WaterSearchRadiusStep {
		n := WaterSearchSamplesPerUnit * int(radius)
		for i := 0; i < n; i++ {
			ang := math.Radians(360 * float32(i) / float32(n))
			cand := math.Add2f(p, [2]float32{radius * math.Cos(ang), radius * math.Sin(ang)})
			if !c.IsWater(cand[0], cand[1]) {
				h.lg.Info("redirected landing point off water",
					slog.String("callsign", h.callsign), slog.Any("from", p), slog.Any("to", cand))
				return cand
			}
		}
	}
	return p
}

// CheckDestinationReached reports whether the pending coordinate
// instruction is satisfied: dest must be the pending coordinate and the
// aircraft within two ticks of travel of it. The coordinate is cleared
// on success, so a second call returns false.
func (h *EmergencyHandler) CheckDestinationReached(dest [2]float32, distance, speed float32) bool {
	if h.PendingCoordinate == nil || *h.PendingCoordinate != dest {
		return false
	}
	if distance >= speed*2 {
		return false
	}

	h.PendingCoordinate = nil
	if h.PendingAltitude == nil {
		h.FollowingInstruction = false
	}
	h.lg.Info("instructed coordinate reached", slog.String("callsign", h.callsign),
		slog.Any("coordinate", dest))
	return true
}

// CheckAltitudeReached is the altitude counterpart: within one unit of
// the pending target altitude counts as reached.
func (h *EmergencyHandler) CheckAltitudeReached(current float32) bool {
	if h.PendingAltitude == nil {
		return false
	}
	if math.Abs(*h.PendingAltitude-current) > 1 {
		return false
	}

	h.PendingAltitude = nil
	if h.PendingCoordinate == nil {
		h.FollowingInstruction = false
	}
	h.lg.Info("instructed altitude reached", slog.String("callsign", h.callsign),
		slog.Float64("altitude", float64(current)))
	return true
}

// GenerateEmergencyDetour builds a two-point route to dest through a
// randomized intermediate point near p, so that simultaneously
// redirected aircraft fan out rather than converging on one line.
func (h *EmergencyHandler) GenerateEmergencyDetour(p, dest [2]float32) [][2]float32 {
	mid := math.Add2f(p, [2]float32{
		h.rand.Float32()*2*EmergencyDetourSpread - EmergencyDetourSpread,
		h.rand.Float32()*2*EmergencyDetourSpread - EmergencyDetourSpread,
	})
	return [][2]float32{mid, dest}
}

func (h *EmergencyHandler) post(e Event) {
	if h.events != nil {
		h.events.Post(e)
	}
}

func (h *EmergencyHandler) LogValue() slog.Value {
	attrs := []slog.Attr{slog.Bool("following_instruction", h.FollowingInstruction)}
	if h.PendingCoordinate != nil {
		attrs = append(attrs, slog.Any("pending_coordinate", *h.PendingCoordinate))
	}
	if h.PendingAltitude != nil {
		attrs = append(attrs, slog.Float64("pending_altitude", float64(*h.PendingAltitude)))
	}
	return slog.GroupValue(attrs...)
}
