// sim/commands.go
// Copyright(c) 2025 jetsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"fmt"
)

// Commandable is implemented by anything that can be given control
// instructions; today that is only Aircraft, but the command types stay
// decoupled from it so a future dispatcher can drive other receivers.
type Commandable interface {
	ReceiveCoordinateInstruction(p [2]float32, reason string)
	ReceiveAltitudeInstruction(alt float32, reason string)
	ReceiveEmergencyLandingInstruction(reason string)
}

// Command is a single control instruction. Each concrete command knows
// how to apply itself, so dispatch is a method call rather than a switch
// over payload types.
type Command interface {
	Apply(c Commandable)
	String() string
}

// CoordinateChange redirects the receiver to a new destination.
type CoordinateChange struct {
	Pos    [2]float32
	Reason string
}

func (cc CoordinateChange) Apply(c Commandable) {
	c.ReceiveCoordinateInstruction(cc.Pos, cc.Reason)
}

func (cc CoordinateChange) String() string {
	return fmt.Sprintf("proceed to %v (%s)", cc.Pos, cc.Reason)
}

// AltitudeChange instructs the receiver to fly to a new altitude.
type AltitudeChange struct {
	Altitude float32
	Reason   string
}

func (ac AltitudeChange) Apply(c Commandable) {
	c.ReceiveAltitudeInstruction(ac.Altitude, ac.Reason)
}

func (ac AltitudeChange) String() string {
	return fmt.Sprintf("fly altitude %.0f (%s)", ac.Altitude, ac.Reason)
}

// EmergencyLandingCommand instructs the receiver to land at the nearest
// available parking space immediately.
type EmergencyLandingCommand struct {
	Reason string
}

func (el EmergencyLandingCommand) Apply(c Commandable) {
	c.ReceiveEmergencyLandingInstruction(el.Reason)
}

func (el EmergencyLandingCommand) String() string {
	return fmt.Sprintf("emergency landing (%s)", el.Reason)
}
