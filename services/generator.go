package services

import (
	"fmt"
	"math/rand"

	"hotel-assistant/models"
)

// Dataset is one complete set of generated records, ready for CSV export or
// bulk import into the store.
type Dataset struct {
	Hotels       []models.Hotel
	RoomTypes    []models.RoomType
	Rooms        []models.Room
	Clients      []models.Client
	Reservations []models.Reservation
	Occupations  []models.Occupation
}

const (
	attemptsPerClient = 3
	roomsPerTypeHotel = 10
	clientCount       = 50
	maxStayNights     = 5
)

// ReferenceHotels returns the fixed hotel fixtures.
func ReferenceHotels() []models.Hotel {
	return []models.Hotel{
		{ID: 1, Name: "Hotel Paris", Street: "Rue de Rivoli", City: "Paris", Stars: 4},
		{ID: 2, Name: "Hotel Nice", Street: "Avenue des Fleurs", City: "Nice", Stars: 5},
		{ID: 3, Name: "Hotel Lyon", Street: "Rue de la Gare", City: "Lyon", Stars: 3},
		{ID: 4, Name: "Hotel Marseille", Street: "Boulevard Longchamp", City: "Marseille", Stars: 4},
		{ID: 5, Name: "Hotel Bordeaux", Street: "Cours Victor Hugo", City: "Bordeaux", Stars: 5},
	}
}

// ReferenceRoomTypes returns the fixed room-type fixtures.
func ReferenceRoomTypes() []models.RoomType {
	return []models.RoomType{
		{ID: 1, Name: "Simple", NightlyPrice: 80.00},
		{ID: 2, Name: "Double", NightlyPrice: 120.00},
		{ID: 3, Name: "Suite", NightlyPrice: 200.00},
	}
}

// ReferenceRooms numbers rooms sequentially from 101 across all hotels,
// ten rooms of each type per hotel. IDs are assigned up front so that
// occupations can reference rooms before anything is persisted.
func ReferenceRooms(hotels []models.Hotel, types []models.RoomType) []models.Room {
	var rooms []models.Room
	number := 101
	for _, h := range hotels {
		for _, ty := range types {
			for i := 0; i < roomsPerTypeHotel; i++ {
				rooms = append(rooms, models.Room{
					ID:         uint(len(rooms) + 1),
					Number:     number,
					HotelID:    h.ID,
					RoomTypeID: ty.ID,
				})
				number++
			}
		}
	}
	return rooms
}

// ReferenceClients returns the synthetic client fixtures.
func ReferenceClients() []models.Client {
	clients := make([]models.Client, 0, clientCount)
	for i := 1; i <= clientCount; i++ {
		clients = append(clients, models.Client{
			ID:      uint(i),
			Name:    fmt.Sprintf("Nom%d", i),
			Surname: fmt.Sprintf("Prenom%d", i),
			Street:  fmt.Sprintf("%d rue Exemple", i),
			City:    fmt.Sprintf("Ville%d", i%5+1),
		})
	}
	return clients
}

// Generator produces a synthetic Dataset: fixed reference entities plus
// randomized reservations paired with non-overlapping occupations.
type Generator struct {
	rng   *rand.Rand
	alloc *RoomAllocator
}

// NewGenerator builds a generator seeded explicitly so that runs are
// reproducible.
func NewGenerator(seed int64) *Generator {
	rng := rand.New(rand.NewSource(seed))
	return &Generator{
		rng:   rng,
		alloc: NewRoomAllocator(rng),
	}
}

// Generate builds one dataset. Each client gets up to three booking
// attempts; an attempt picks a random hotel, a random room type offered by
// that hotel and a random stay of 1-5 nights, then asks the allocator for a
// room. A failed allocation abandons the attempt outright; there is no
// retry with another hotel or room type.
func (g *Generator) Generate() *Dataset {
	ds := &Dataset{
		Hotels:    ReferenceHotels(),
		RoomTypes: ReferenceRoomTypes(),
		Clients:   ReferenceClients(),
	}
	ds.Rooms = ReferenceRooms(ds.Hotels, ds.RoomTypes)

	roomsByHotel := make(map[uint][]models.Room)
	for _, r := range ds.Rooms {
		roomsByHotel[r.HotelID] = append(roomsByHotel[r.HotelID], r)
	}

	for _, client := range ds.Clients {
		for attempt := 0; attempt < attemptsPerClient; attempt++ {
			hotel := ds.Hotels[g.rng.Intn(len(ds.Hotels))]

			var typeIDs []uint
			seen := make(map[uint]bool)
			for _, r := range roomsByHotel[hotel.ID] {
				if !seen[r.RoomTypeID] {
					seen[r.RoomTypeID] = true
					typeIDs = append(typeIDs, r.RoomTypeID)
				}
			}
			if len(typeIDs) == 0 {
				continue
			}
			typeID := typeIDs[g.rng.Intn(len(typeIDs))]

			var candidates []models.Room
			for _, r := range roomsByHotel[hotel.ID] {
				if r.RoomTypeID == typeID {
					candidates = append(candidates, r)
				}
			}

			nights := g.rng.Intn(maxStayNights) + 1
			room, iv, err := g.alloc.Allocate(candidates, nights)
			if err != nil {
				// No room free for this stay: abandon the attempt.
				continue
			}

			ds.Reservations = append(ds.Reservations, models.Reservation{
				ClientID:   client.ID,
				HotelID:    hotel.ID,
				RoomTypeID: typeID,
				StartAt:    iv.Start,
				Nights:     nights,
				RoomCount:  1,
			})
			ds.Occupations = append(ds.Occupations, models.Occupation{
				ClientID: client.ID,
				HotelID:  hotel.ID,
				RoomID:   room.ID,
				StartAt:  iv.Start,
				EndAt:    iv.End,
			})
		}
	}

	return ds
}
