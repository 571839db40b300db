package services

import (
	"reflect"
	"testing"
)

func TestGenerateReproducibleWithSameSeed(t *testing.T) {
	a := NewGenerator(12345).Generate()
	b := NewGenerator(12345).Generate()

	if !reflect.DeepEqual(a.Reservations, b.Reservations) {
		t.Error("reservations differ between runs with the same seed")
	}
	if !reflect.DeepEqual(a.Occupations, b.Occupations) {
		t.Error("occupations differ between runs with the same seed")
	}
}

func TestGenerateReferenceCounts(t *testing.T) {
	ds := NewGenerator(1).Generate()

	if got := len(ds.Hotels); got != 5 {
		t.Errorf("hotels = %d, want 5", got)
	}
	if got := len(ds.RoomTypes); got != 3 {
		t.Errorf("room types = %d, want 3", got)
	}
	if got := len(ds.Rooms); got != 150 {
		t.Errorf("rooms = %d, want 150 (5 hotels x 3 types x 10)", got)
	}
	if got := len(ds.Clients); got != 50 {
		t.Errorf("clients = %d, want 50", got)
	}
	if len(ds.Reservations) == 0 || len(ds.Reservations) > 150 {
		t.Errorf("reservations = %d, want 1..150 (max 3 per client)", len(ds.Reservations))
	}
}

func TestGenerateReservationsPairedWithOccupations(t *testing.T) {
	ds := NewGenerator(99).Generate()

	if len(ds.Reservations) != len(ds.Occupations) {
		t.Fatalf("reservations (%d) and occupations (%d) are not 1:1",
			len(ds.Reservations), len(ds.Occupations))
	}

	for i, res := range ds.Reservations {
		occ := ds.Occupations[i]
		if occ.ClientID != res.ClientID || occ.HotelID != res.HotelID || !occ.StartAt.Equal(res.StartAt) {
			t.Errorf("pair %d: occupation (client=%d hotel=%d start=%v) does not match reservation (client=%d hotel=%d start=%v)",
				i, occ.ClientID, occ.HotelID, occ.StartAt, res.ClientID, res.HotelID, res.StartAt)
		}
		if !occ.EndAt.Equal(res.StartAt.AddDate(0, 0, res.Nights)) {
			t.Errorf("pair %d: EndAt = %v, want StartAt + %d days", i, occ.EndAt, res.Nights)
		}
		if res.Nights < 1 || res.Nights > 5 {
			t.Errorf("pair %d: nights = %d, want 1..5", i, res.Nights)
		}
		if res.RoomCount != 1 {
			t.Errorf("pair %d: room count = %d, want 1", i, res.RoomCount)
		}
	}
}

func TestGenerateOccupationsNeverOverlapPerRoom(t *testing.T) {
	ds := NewGenerator(7).Generate()

	byRoom := make(map[uint][]Interval)
	for _, occ := range ds.Occupations {
		byRoom[occ.RoomID] = append(byRoom[occ.RoomID], Interval{Start: occ.StartAt, End: occ.EndAt})
	}

	for roomID, ivs := range byRoom {
		for i := 0; i < len(ivs); i++ {
			for j := i + 1; j < len(ivs); j++ {
				if ivs[i].Overlaps(ivs[j]) {
					t.Fatalf("room %d: occupations %v and %v overlap", roomID, ivs[i], ivs[j])
				}
			}
		}
	}
}
