// cmd/jetsim/main.go
// Copyright(c) 2025 jetsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// jetsim is a headless driver for the jetpack traffic simulation: it
// builds or loads a city, spawns aircraft on random routes, runs the
// tick loop for a fixed duration, and mirrors simulation events to the
// log.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/vertiport/jetsim/city"
	"github.com/vertiport/jetsim/hazard"
	"github.com/vertiport/jetsim/log"
	"github.com/vertiport/jetsim/rand"
	"github.com/vertiport/jetsim/sim"
)

var (
	seed         = flag.Int64("seed", 1, "random seed for the city and all aircraft")
	nAircraft    = flag.Int("aircraft", 8, "number of aircraft to spawn")
	tickInterval = flag.Duration("tick", 100*time.Millisecond, "wall-clock time per simulation tick")
	duration     = flag.Duration("duration", 30*time.Second, "how long to run")
	logLevel     = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir       = flag.String("logdir", "", "log directory (empty for stderr)")
	layoutPath   = flag.String("layout", "", "city layout snapshot to load; generated if empty")
	terrainPath  = flag.String("terrain", "", "terrain PNG for land/water lookups")
	hazardRate   = flag.Float64("hazardrate", 0.02, "per-tick probability of a random hazard change")
)

func errorExit(msg string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}

func main() {
	flag.Parse()

	lg := log.New(*logLevel, *logDir)
	r := rand.New(*seed)

	c := loadOrGenerateCity(r, lg)

	s := sim.New(c, *seed, lg)
	defer s.Destroy()
	spawnAircraft(s, c, r)

	sub := s.Subscribe()
	defer sub.Unsubscribe()

	ticker := time.NewTicker(*tickInterval)
	defer ticker.Stop()
	deadline := time.After(*duration)

	for {
		select {
		case <-deadline:
			lg.Info("simulation finished", "ticks", s.Ticks())
			return
		case <-ticker.C:
			injectHazards(s, r)
			s.Tick()

			for _, ev := range sub.Get() {
				lg.Info("event", "event", ev)
			}
			if len(s.Aircraft) == 0 {
				lg.Info("all aircraft retired", "ticks", s.Ticks())
				return
			}
		}
	}
}

func loadOrGenerateCity(r *rand.Rand, lg *log.Logger) *city.City {
	var c *city.City
	if *layoutPath != "" {
		var err error
		c, err = city.LoadLayout(*layoutPath)
		errorExit("load layout", err)
	} else {
		c = city.Generate(city.DefaultGenerateSpec(), r, lg)
	}

	if *terrainPath != "" {
		f, err := os.Open(*terrainPath)
		errorExit("open terrain", err)
		defer f.Close()

		c.Terrain, err = city.LoadTerrainMap(f)
		errorExit("decode terrain", err)
	}
	return c
}

func spawnAircraft(s *sim.Sim, c *city.City, r *rand.Rand) {
	for i := 0; i < *nAircraft; i++ {
		callsign := fmt.Sprintf("JP%03d", i+1)
		pos := randomPoint(c, r)
		dest := randomPoint(c, r)

		// A couple of intermediate waypoints so routes cross each other.
		var route [][2]float32
		for j := 0; j < 1+r.Intn(3); j++ {
			route = append(route, randomPoint(c, r))
		}

		alt := 50 + r.Float32()*150
		speed := 1 + r.Float32()*3
		_, err := s.AddAircraft(callsign, pos, alt, dest, route, speed)
		errorExit("spawn "+callsign, err)
	}
}

func randomPoint(c *city.City, r *rand.Rand) [2]float32 {
	return [2]float32{r.Float32() * c.Width, r.Float32() * c.Height}
}

// injectHazards randomly toggles environmental hazards so that a long
// run exercises the speed and halt behaviors.
func injectHazards(s *sim.Sim, r *rand.Rand) {
	if float64(r.Float32()) >= *hazardRate {
		return
	}

	callsigns := s.Callsigns()
	if len(callsigns) == 0 {
		return
	}
	cs := callsigns[r.Intn(len(callsigns))]

	hazards := []hazard.Flags{hazard.Weather, hazard.BuildingCollapse, hazard.Accident, hazard.Police}
	h := hazards[r.Intn(len(hazards))]

	// Half the time clear it instead, so flags don't accumulate forever.
	_ = s.SetHazard(cs, h, r.Bool())

	// A building collapse below an aircraft forces it down.
	if h == hazard.BuildingCollapse && r.Bool() {
		_ = s.Command(cs, sim.EmergencyLandingCommand{Reason: "building collapse"})
	}
}
