package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewCSVStore(dir)

	original := NewGenerator(2).Generate()
	if err := store.ExportDataset(original); err != nil {
		t.Fatalf("ExportDataset: %v", err)
	}

	got, err := store.ReadDataset()
	if err != nil {
		t.Fatalf("ReadDataset: %v", err)
	}

	if len(got.Hotels) != len(original.Hotels) {
		t.Fatalf("hotels = %d, want %d", len(got.Hotels), len(original.Hotels))
	}
	for i, h := range original.Hotels {
		g := got.Hotels[i]
		if g.ID != h.ID || g.Name != h.Name || g.Street != h.Street || g.City != h.City || g.Stars != h.Stars {
			t.Errorf("hotel %d = %+v, want %+v", i, g, h)
		}
	}

	if len(got.RoomTypes) != len(original.RoomTypes) {
		t.Fatalf("room types = %d, want %d", len(got.RoomTypes), len(original.RoomTypes))
	}
	for i, ty := range original.RoomTypes {
		g := got.RoomTypes[i]
		if g.ID != ty.ID || g.Name != ty.Name || g.NightlyPrice != ty.NightlyPrice {
			t.Errorf("room type %d = %+v, want %+v", i, g, ty)
		}
	}

	if len(got.Rooms) != len(original.Rooms) {
		t.Fatalf("rooms = %d, want %d", len(got.Rooms), len(original.Rooms))
	}
	for i, r := range original.Rooms {
		g := got.Rooms[i]
		if g.Number != r.Number || g.HotelID != r.HotelID || g.RoomTypeID != r.RoomTypeID {
			t.Errorf("room %d = %+v, want %+v", i, g, r)
		}
	}

	if len(got.Clients) != len(original.Clients) {
		t.Fatalf("clients = %d, want %d", len(got.Clients), len(original.Clients))
	}
	for i, c := range original.Clients {
		g := got.Clients[i]
		if g.ID != c.ID || g.Name != c.Name || g.Surname != c.Surname || g.Street != c.Street || g.City != c.City {
			t.Errorf("client %d = %+v, want %+v", i, g, c)
		}
	}

	if len(got.Reservations) != len(original.Reservations) {
		t.Fatalf("reservations = %d, want %d", len(got.Reservations), len(original.Reservations))
	}
	for i, res := range original.Reservations {
		g := got.Reservations[i]
		if g.ClientID != res.ClientID || g.HotelID != res.HotelID || g.RoomTypeID != res.RoomTypeID ||
			!g.StartAt.Equal(res.StartAt) || g.Nights != res.Nights || g.RoomCount != res.RoomCount {
			t.Errorf("reservation %d = %+v, want %+v", i, g, res)
		}
	}

	if len(got.Occupations) != len(original.Occupations) {
		t.Fatalf("occupations = %d, want %d", len(got.Occupations), len(original.Occupations))
	}
	for i, occ := range original.Occupations {
		g := got.Occupations[i]
		if g.ClientID != occ.ClientID || g.HotelID != occ.HotelID || g.RoomID != occ.RoomID ||
			!g.StartAt.Equal(occ.StartAt) || !g.EndAt.Equal(occ.EndAt) {
			t.Errorf("occupation %d = %+v, want %+v", i, g, occ)
		}
	}
}

func TestReadDatasetMalformedTimestampAborts(t *testing.T) {
	dir := t.TempDir()
	store := NewCSVStore(dir)

	if err := store.ExportDataset(NewGenerator(2).Generate()); err != nil {
		t.Fatalf("ExportDataset: %v", err)
	}

	bad := "num_cl,num_ho,num_ty,date_a,nb_jours,nb_chambres\n1,1,1,not-a-date,2,1\n"
	if err := os.WriteFile(filepath.Join(dir, "Reservation.csv"), []byte(bad), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := store.ReadDataset()
	if err == nil {
		t.Fatal("expected a parse error for the malformed timestamp")
	}
	if !strings.Contains(err.Error(), "not-a-date") {
		t.Errorf("error should mention the bad value: %v", err)
	}
}

func TestReadDatasetMissingHeader(t *testing.T) {
	dir := t.TempDir()
	store := NewCSVStore(dir)

	if err := store.ExportDataset(NewGenerator(2).Generate()); err != nil {
		t.Fatalf("ExportDataset: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Hotel.csv"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := store.ReadDataset(); err == nil {
		t.Fatal("expected an error for the empty hotel file")
	}
}

func TestReadDatasetRejectsOccupationForUnknownRoom(t *testing.T) {
	dir := t.TempDir()
	store := NewCSVStore(dir)

	if err := store.ExportDataset(NewGenerator(2).Generate()); err != nil {
		t.Fatalf("ExportDataset: %v", err)
	}

	bad := "num_cl,num_ho,num_ch,date_a,date_d\n1,1,999,2025-10-02 14:00:00,2025-10-04 14:00:00\n"
	if err := os.WriteFile(filepath.Join(dir, "Occupation.csv"), []byte(bad), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := store.ReadDataset(); err == nil {
		t.Fatal("expected an error for an occupation referencing an unknown room")
	}
}

func TestReadDatasetAcceptsOverlappingOccupations(t *testing.T) {
	dir := t.TempDir()
	store := NewCSVStore(dir)

	if err := store.ExportDataset(NewGenerator(2).Generate()); err != nil {
		t.Fatalf("ExportDataset: %v", err)
	}

	// Overlap exclusivity belongs to the generator; hand-edited CSV files
	// with clashing stays for the same room still load.
	rows := "num_cl,num_ho,num_ch,date_a,date_d\n" +
		"1,1,101,2025-10-05 14:00:00,2025-10-08 14:00:00\n" +
		"2,1,101,2025-10-06 14:00:00,2025-10-09 14:00:00\n"
	if err := os.WriteFile(filepath.Join(dir, "Occupation.csv"), []byte(rows), 0644); err != nil {
		t.Fatal(err)
	}

	ds, err := store.ReadDataset()
	if err != nil {
		t.Fatalf("ReadDataset: %v", err)
	}
	if len(ds.Occupations) != 2 {
		t.Fatalf("len(Occupations) = %d, want 2", len(ds.Occupations))
	}

	a, b := ds.Occupations[0], ds.Occupations[1]
	if a.RoomID != b.RoomID {
		t.Fatalf("occupations resolved to different rooms: %d vs %d", a.RoomID, b.RoomID)
	}
	first := Interval{Start: a.StartAt, End: a.EndAt}
	second := Interval{Start: b.StartAt, End: b.EndAt}
	if !first.Overlaps(second) {
		t.Fatal("test rows should overlap for the same room")
	}
}
