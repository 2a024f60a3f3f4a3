// sim/sim.go
// Copyright(c) 2025 jetsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/vertiport/jetsim/city"
	"github.com/vertiport/jetsim/hazard"
	"github.com/vertiport/jetsim/log"
	"github.com/vertiport/jetsim/rand"
	"github.com/vertiport/jetsim/util"
)

// Sim owns the city, the aircraft, and the event stream and advances
// everything in lockstep ticks.
type Sim struct {
	City     *city.City
	Aircraft map[string]*Aircraft

	eventStream *EventStream
	lg          *log.Logger
	rand        *rand.Rand
	ticks       int
}

func New(c *city.City, seed int64, lg *log.Logger) *Sim {
	return &Sim{
		City:        c,
		Aircraft:    make(map[string]*Aircraft),
		eventStream: NewEventStream(lg),
		lg:          lg,
		rand:        rand.New(seed),
	}
}

// AddAircraft spawns a new aircraft into the simulation.
func (s *Sim) AddAircraft(callsign string, pos [2]float32, alt float32,
	dest [2]float32, route [][2]float32, speed float32) (*Aircraft, error) {
	if _, ok := s.Aircraft[callsign]; ok {
		return nil, ErrDuplicateCallsign
	}

	// Each aircraft gets its own generator so that per-aircraft behavior
	// is stable regardless of update interleaving.
	r := rand.New(int64(s.rand.Uint32()))
	ac := NewAircraft(callsign, pos, alt, dest, route, speed, s.City, s.eventStream, r, s.lg)
	s.Aircraft[callsign] = ac

	s.lg.Info("spawned aircraft", slog.String("callsign", callsign),
		slog.Any("position", pos), slog.Any("destination", dest))
	return ac, nil
}

// Command dispatches a control instruction to the named aircraft.
func (s *Sim) Command(callsign string, cmd Command) error {
	ac, ok := s.Aircraft[callsign]
	if !ok {
		return ErrUnknownAircraft
	}

	s.lg.Info("command", slog.String("callsign", callsign), slog.String("command", cmd.String()))
	cmd.Apply(ac)
	return nil
}

// SetHazard raises or clears a hazard flag on the named aircraft.
func (s *Sim) SetHazard(callsign string, h hazard.Flags, active bool) error {
	ac, ok := s.Aircraft[callsign]
	if !ok {
		return ErrUnknownAircraft
	}

	if active {
		ac.Hazards = ac.Hazards.Set(h)
	} else {
		ac.Hazards = ac.Hazards.Clear(h)
	}
	s.eventStream.Post(Event{Type: HazardEvent, Callsign: callsign, Message: ac.Hazards.String()})
	return nil
}

// Tick advances every aircraft by one step. Aircraft only share the
// read-only city, the internally locked parking lot, and the event
// stream, so their updates run concurrently.
func (s *Sim) Tick() {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, ac := range s.Aircraft {
		ac := ac
		g.Go(func() error {
			ac.UpdatePosition()
			return nil
		})
	}
	_ = g.Wait() // update funcs never error

	// Landed aircraft are done; retire them once their arrival has been
	// posted.
	for cs, ac := range s.Aircraft {
		if ac.Landed() && ac.landedPosted {
			delete(s.Aircraft, cs)
			s.lg.Info("retired aircraft", slog.String("callsign", cs))
		}
	}

	s.ticks++
}

func (s *Sim) Ticks() int { return s.ticks }

// Subscribe returns an event stream subscription for sim events.
func (s *Sim) Subscribe() *EventsSubscription {
	return s.eventStream.Subscribe()
}

// Callsigns returns the active callsigns in sorted order.
func (s *Sim) Callsigns() []string {
	return util.SortedMapKeys(s.Aircraft)
}

func (s *Sim) Destroy() {
	s.eventStream.Destroy()
}

func (s *Sim) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("ticks", s.ticks),
		slog.Int("aircraft", len(s.Aircraft)),
		slog.Any("events", s.eventStream))
}
