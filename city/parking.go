// city/parking.go
// Copyright(c) 2025 jetsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package city

import (
	"sync"
)

// ParkingSpace is a single landing pad. Occupancy is owned by the
// ParkingLot; callers never toggle it directly.
type ParkingSpace struct {
	Id       int        `msgpack:"id"`
	Position [2]float32 `msgpack:"position"`
	Occupied bool       `msgpack:"occupied"`
}

// ParkingLot is the registry of all parking spaces. Claim/Release are
// serialized under a single mutex so that two aircraft updating in
// parallel can never both claim the same space.
type ParkingLot struct {
	mu     sync.Mutex
	Spaces []ParkingSpace `msgpack:"spaces"`
}

func NewParkingLot(spaces []ParkingSpace) *ParkingLot {
	return &ParkingLot{Spaces: spaces}
}

func (l *ParkingLot) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Spaces)
}

// Claim atomically checks and takes the space with the given id; it
// returns false if the id is unknown or the space is already occupied.
func (l *ParkingLot) Claim(id int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.Spaces {
		if l.Spaces[i].Id == id {
			if l.Spaces[i].Occupied {
				return false
			}
			l.Spaces[i].Occupied = true
			return true
		}
	}
	return false
}

// Release vacates the space with the given id.
func (l *ParkingLot) Release(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.Spaces {
		if l.Spaces[i].Id == id {
			l.Spaces[i].Occupied = false
			return
		}
	}
}

// IsOccupied reports the occupancy of the given space.
func (l *ParkingLot) IsOccupied(id int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.Spaces {
		if l.Spaces[i].Id == id {
			return l.Spaces[i].Occupied
		}
	}
	return false
}

// Unoccupied returns a snapshot of the currently-free spaces. The
// snapshot can go stale immediately, so a caller that wants a space must
// still Claim it.
func (l *ParkingLot) Unoccupied() []ParkingSpace {
	l.mu.Lock()
	defer l.mu.Unlock()

	var free []ParkingSpace
	for _, s := range l.Spaces {
		if !s.Occupied {
			free = append(free, s)
		}
	}
	return free
}
