package services

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"hotel-assistant/models"
)

func testRooms(n int) []models.Room {
	rooms := make([]models.Room, 0, n)
	for i := 0; i < n; i++ {
		rooms = append(rooms, models.Room{
			ID:         uint(i + 1),
			Number:     101 + i,
			HotelID:    1,
			RoomTypeID: 1,
		})
	}
	return rooms
}

func TestAllocateFirstStayStartsAfterGlobalStart(t *testing.T) {
	alloc := NewRoomAllocator(rand.New(rand.NewSource(1)))

	_, iv, err := alloc.Allocate(testRooms(1), 3)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}

	wantStart := GlobalStart.AddDate(0, 0, 1)
	if !iv.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", iv.Start, wantStart)
	}
	if !iv.End.Equal(wantStart.AddDate(0, 0, 3)) {
		t.Errorf("End = %v, want %v", iv.End, wantStart.AddDate(0, 0, 3))
	}
}

func TestAllocateStartsOneDayAfterLastDeparture(t *testing.T) {
	for _, nights := range []int{1, 2, 5} {
		alloc := NewRoomAllocator(rand.New(rand.NewSource(1)))
		rooms := testRooms(1)

		_, first, err := alloc.Allocate(rooms, 4)
		if err != nil {
			t.Fatalf("first Allocate: %v", err)
		}
		_, second, err := alloc.Allocate(rooms, nights)
		if err != nil {
			t.Fatalf("second Allocate: %v", err)
		}

		if !second.Start.Equal(first.End.AddDate(0, 0, 1)) {
			t.Errorf("nights=%d: Start = %v, want last departure + 1 day = %v",
				nights, second.Start, first.End.AddDate(0, 0, 1))
		}
		if !second.End.Equal(second.Start.AddDate(0, 0, nights)) {
			t.Errorf("nights=%d: End = %v, want Start + %d days", nights, second.End, nights)
		}
	}
}

func TestAllocateNeverOverlaps(t *testing.T) {
	alloc := NewRoomAllocator(rand.New(rand.NewSource(42)))
	rooms := testRooms(3)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		if _, _, err := alloc.Allocate(rooms, rng.Intn(5)+1); err != nil {
			t.Fatalf("allocation %d: %v", i, err)
		}
	}

	for _, room := range rooms {
		ivs := alloc.Intervals(room)
		for i := 0; i < len(ivs); i++ {
			for j := i + 1; j < len(ivs); j++ {
				if ivs[i].Overlaps(ivs[j]) {
					t.Fatalf("room %d: intervals %v and %v overlap", room.Number, ivs[i], ivs[j])
				}
			}
		}
	}
}

func TestAllocateNoCandidates(t *testing.T) {
	alloc := NewRoomAllocator(rand.New(rand.NewSource(1)))

	_, _, err := alloc.Allocate(nil, 2)
	if !errors.Is(err, ErrNoRoomAvailable) {
		t.Fatalf("err = %v, want ErrNoRoomAvailable", err)
	}
	if got := alloc.Intervals(models.Room{HotelID: 1, Number: 101}); len(got) != 0 {
		t.Errorf("failed allocation registered %d intervals, want 0", len(got))
	}
}

func TestAllocateRejectsNonPositiveStay(t *testing.T) {
	alloc := NewRoomAllocator(rand.New(rand.NewSource(1)))
	if _, _, err := alloc.Allocate(testRooms(1), 0); err == nil {
		t.Fatal("expected error for zero-night stay")
	}
}

func TestIntervalOverlaps(t *testing.T) {
	day := func(d int) time.Time { return GlobalStart.AddDate(0, 0, d) }

	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"disjoint", Interval{day(0), day(2)}, Interval{day(3), day(5)}, false},
		{"touching is free (half-open)", Interval{day(0), day(2)}, Interval{day(2), day(4)}, false},
		{"nested", Interval{day(0), day(5)}, Interval{day(1), day(2)}, true},
		{"straddling", Interval{day(0), day(3)}, Interval{day(2), day(5)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}
