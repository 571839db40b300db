package services

import (
	"errors"
	"math/rand"
	"time"

	"hotel-assistant/models"
)

// ErrNoRoomAvailable is returned when no candidate room can take the
// requested stay. It is an expected outcome during generation, not a
// failure; callers skip the booking attempt and move on.
var ErrNoRoomAvailable = errors.New("no room available")

// GlobalStart is the reference check-in instant for rooms with no bookings
// yet. Every generated occupation starts at 14:00 local time.
var GlobalStart = time.Date(2025, 10, 1, 14, 0, 0, 0, time.Local)

// Interval is a half-open occupation range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect.
func (iv Interval) Overlaps(other Interval) bool {
	return !(iv.End.Compare(other.Start) <= 0 || iv.Start.Compare(other.End) >= 0)
}

// roomKey identifies a room independently of its surrogate database ID,
// which may not exist yet while fixtures are being generated.
type roomKey struct {
	HotelID uint
	Number  int
}

// RoomAllocator assigns stays to rooms without double-booking. It owns the
// per-room interval lists for one generation run; the lists are append-only
// and, because each new interval starts one day after the room's last
// departure, stay sorted and non-overlapping by construction. State is not
// persisted anywhere.
type RoomAllocator struct {
	rng       *rand.Rand
	intervals map[roomKey][]Interval
}

// NewRoomAllocator returns an allocator drawing its room shuffle order from
// rng. Pass a seeded source for reproducible runs.
func NewRoomAllocator(rng *rand.Rand) *RoomAllocator {
	return &RoomAllocator{
		rng:       rng,
		intervals: make(map[roomKey][]Interval),
	}
}

// Allocate finds a room among candidates that can take a stay of nights
// days. Candidates are tried in shuffled order; for each, the stay is placed
// one day after the room's last departure (GlobalStart for an unbooked room)
// and accepted if it overlaps none of the room's existing intervals. The
// accepted interval is registered before returning so that later calls see
// it. Returns ErrNoRoomAvailable when every candidate fails.
func (a *RoomAllocator) Allocate(candidates []models.Room, nights int) (models.Room, Interval, error) {
	if nights <= 0 {
		return models.Room{}, Interval{}, errors.New("stay length must be positive")
	}

	pool := make([]models.Room, len(candidates))
	copy(pool, candidates)
	a.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	for _, room := range pool {
		key := roomKey{HotelID: room.HotelID, Number: room.Number}
		existing := a.intervals[key]

		lastEnd := GlobalStart
		for _, occ := range existing {
			if occ.End.After(lastEnd) {
				lastEnd = occ.End
			}
		}

		iv := Interval{
			Start: lastEnd.AddDate(0, 0, 1),
		}
		iv.End = iv.Start.AddDate(0, 0, nights)

		free := true
		for _, occ := range existing {
			if iv.Overlaps(occ) {
				free = false
				break
			}
		}
		if !free {
			continue
		}

		a.intervals[key] = append(existing, iv)
		return room, iv, nil
	}

	return models.Room{}, Interval{}, ErrNoRoomAvailable
}

// Intervals returns a copy of the registered intervals for a room, in
// assignment order. Mainly useful for inspection and tests.
func (a *RoomAllocator) Intervals(room models.Room) []Interval {
	existing := a.intervals[roomKey{HotelID: room.HotelID, Number: room.Number}]
	out := make([]Interval, len(existing))
	copy(out, existing)
	return out
}
