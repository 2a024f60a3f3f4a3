// sim/errors.go
// Copyright(c) 2025 jetsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"errors"
)

var (
	ErrUnknownAircraft   = errors.New("unknown aircraft callsign")
	ErrDuplicateCallsign = errors.New("callsign already in use")
)
