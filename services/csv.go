package services

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"hotel-assistant/models"
	"hotel-assistant/utils"
)

// Flat-file names and column sets are the legacy wire format; re-imports of
// previously exported files must keep working, so the French column headers
// stay as they are.
const (
	hotelFile       = "Hotel.csv"
	roomTypeFile    = "TypeChambre.csv"
	roomFile        = "Chambre.csv"
	clientFile      = "Client.csv"
	reservationFile = "Reservation.csv"
	occupationFile  = "Occupation.csv"
)

// CSVStore reads and writes datasets as CSV files under Dir.
type CSVStore struct {
	Dir string
}

func NewCSVStore(dir string) *CSVStore {
	return &CSVStore{Dir: dir}
}

func (s *CSVStore) writeFile(name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s header: %w", name, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s rows: %w", name, err)
	}
	w.Flush()
	return w.Error()
}

// ExportDataset writes all six entity files for the dataset.
func (s *CSVStore) ExportDataset(ds *Dataset) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return err
	}

	hotelRows := make([][]string, 0, len(ds.Hotels))
	for _, h := range ds.Hotels {
		hotelRows = append(hotelRows, []string{
			strconv.FormatUint(uint64(h.ID), 10), h.Name, h.Street, h.City, strconv.Itoa(h.Stars),
		})
	}
	if err := s.writeFile(hotelFile, []string{"num_ho", "nom_ho", "rue_adr_ho", "ville_ho", "nb_etoiles_ho"}, hotelRows); err != nil {
		return err
	}

	typeRows := make([][]string, 0, len(ds.RoomTypes))
	for _, ty := range ds.RoomTypes {
		typeRows = append(typeRows, []string{
			strconv.FormatUint(uint64(ty.ID), 10), ty.Name, strconv.FormatFloat(ty.NightlyPrice, 'f', 2, 64),
		})
	}
	if err := s.writeFile(roomTypeFile, []string{"num_ty", "nom_ty", "prix_ty"}, typeRows); err != nil {
		return err
	}

	roomRows := make([][]string, 0, len(ds.Rooms))
	for _, r := range ds.Rooms {
		roomRows = append(roomRows, []string{
			strconv.Itoa(r.Number),
			strconv.FormatUint(uint64(r.HotelID), 10),
			strconv.FormatUint(uint64(r.RoomTypeID), 10),
		})
	}
	if err := s.writeFile(roomFile, []string{"num_ch", "num_ho", "num_ty"}, roomRows); err != nil {
		return err
	}

	clientRows := make([][]string, 0, len(ds.Clients))
	for _, c := range ds.Clients {
		clientRows = append(clientRows, []string{
			strconv.FormatUint(uint64(c.ID), 10), c.Name, c.Surname, c.Street, c.City,
		})
	}
	if err := s.writeFile(clientFile, []string{"num_cl", "nom_cl", "prenom_cl", "rue_adr_cl", "ville_cl"}, clientRows); err != nil {
		return err
	}

	resRows := make([][]string, 0, len(ds.Reservations))
	for _, res := range ds.Reservations {
		resRows = append(resRows, []string{
			strconv.FormatUint(uint64(res.ClientID), 10),
			strconv.FormatUint(uint64(res.HotelID), 10),
			strconv.FormatUint(uint64(res.RoomTypeID), 10),
			utils.FormatTimestamp(res.StartAt),
			strconv.Itoa(res.Nights),
			strconv.Itoa(res.RoomCount),
		})
	}
	if err := s.writeFile(reservationFile, []string{"num_cl", "num_ho", "num_ty", "date_a", "nb_jours", "nb_chambres"}, resRows); err != nil {
		return err
	}

	// Occupations reference rooms by number on the wire, not by surrogate ID.
	numberByRoomID := make(map[uint]int, len(ds.Rooms))
	for _, r := range ds.Rooms {
		numberByRoomID[r.ID] = r.Number
	}
	occRows := make([][]string, 0, len(ds.Occupations))
	for _, occ := range ds.Occupations {
		number, ok := numberByRoomID[occ.RoomID]
		if !ok {
			return fmt.Errorf("occupation references unknown room id %d", occ.RoomID)
		}
		occRows = append(occRows, []string{
			strconv.FormatUint(uint64(occ.ClientID), 10),
			strconv.FormatUint(uint64(occ.HotelID), 10),
			strconv.Itoa(number),
			utils.FormatTimestamp(occ.StartAt),
			utils.FormatTimestamp(occ.EndAt),
		})
	}
	return s.writeFile(occupationFile, []string{"num_cl", "num_ho", "num_ch", "date_a", "date_d"}, occRows)
}

func (s *CSVStore) readFile(name string) ([][]string, error) {
	f, err := os.Open(filepath.Join(s.Dir, name))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header row", name)
	}
	return records[1:], nil
}

// ReadDataset parses all six files back into a Dataset. A malformed numeric
// or timestamp value aborts the whole read; there is no per-row recovery at
// this layer.
func (s *CSVStore) ReadDataset() (*Dataset, error) {
	ds := &Dataset{}

	rows, err := s.readFile(hotelFile)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		id, err := strconv.ParseUint(row[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%s: bad num_ho %q: %w", hotelFile, row[0], err)
		}
		stars, err := strconv.Atoi(row[4])
		if err != nil {
			return nil, fmt.Errorf("%s: bad nb_etoiles_ho %q: %w", hotelFile, row[4], err)
		}
		ds.Hotels = append(ds.Hotels, models.Hotel{
			ID: uint(id), Name: row[1], Street: row[2], City: row[3], Stars: stars,
		})
	}

	rows, err = s.readFile(roomTypeFile)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		id, err := strconv.ParseUint(row[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%s: bad num_ty %q: %w", roomTypeFile, row[0], err)
		}
		price, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: bad prix_ty %q: %w", roomTypeFile, row[2], err)
		}
		ds.RoomTypes = append(ds.RoomTypes, models.RoomType{ID: uint(id), Name: row[1], NightlyPrice: price})
	}

	rows, err = s.readFile(roomFile)
	if err != nil {
		return nil, err
	}
	roomIDByKey := make(map[roomKey]uint)
	for _, row := range rows {
		number, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("%s: bad num_ch %q: %w", roomFile, row[0], err)
		}
		hotelID, err := strconv.ParseUint(row[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%s: bad num_ho %q: %w", roomFile, row[1], err)
		}
		typeID, err := strconv.ParseUint(row[2], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%s: bad num_ty %q: %w", roomFile, row[2], err)
		}
		room := models.Room{
			ID:         uint(len(ds.Rooms) + 1),
			Number:     number,
			HotelID:    uint(hotelID),
			RoomTypeID: uint(typeID),
		}
		ds.Rooms = append(ds.Rooms, room)
		roomIDByKey[roomKey{HotelID: room.HotelID, Number: room.Number}] = room.ID
	}

	rows, err = s.readFile(clientFile)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		id, err := strconv.ParseUint(row[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%s: bad num_cl %q: %w", clientFile, row[0], err)
		}
		ds.Clients = append(ds.Clients, models.Client{
			ID: uint(id), Name: row[1], Surname: row[2], Street: row[3], City: row[4],
		})
	}

	rows, err = s.readFile(reservationFile)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		clientID, err := strconv.ParseUint(row[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%s: bad num_cl %q: %w", reservationFile, row[0], err)
		}
		hotelID, err := strconv.ParseUint(row[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%s: bad num_ho %q: %w", reservationFile, row[1], err)
		}
		typeID, err := strconv.ParseUint(row[2], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%s: bad num_ty %q: %w", reservationFile, row[2], err)
		}
		startAt, err := utils.ParseTimestamp(row[3])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", reservationFile, err)
		}
		nights, err := strconv.Atoi(row[4])
		if err != nil {
			return nil, fmt.Errorf("%s: bad nb_jours %q: %w", reservationFile, row[4], err)
		}
		roomCount, err := strconv.Atoi(row[5])
		if err != nil {
			return nil, fmt.Errorf("%s: bad nb_chambres %q: %w", reservationFile, row[5], err)
		}
		ds.Reservations = append(ds.Reservations, models.Reservation{
			ClientID:   uint(clientID),
			HotelID:    uint(hotelID),
			RoomTypeID: uint(typeID),
			StartAt:    startAt,
			Nights:     nights,
			RoomCount:  roomCount,
		})
	}

	rows, err = s.readFile(occupationFile)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		clientID, err := strconv.ParseUint(row[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%s: bad num_cl %q: %w", occupationFile, row[0], err)
		}
		hotelID, err := strconv.ParseUint(row[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%s: bad num_ho %q: %w", occupationFile, row[1], err)
		}
		number, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("%s: bad num_ch %q: %w", occupationFile, row[2], err)
		}
		startAt, err := utils.ParseTimestamp(row[3])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", occupationFile, err)
		}
		endAt, err := utils.ParseTimestamp(row[4])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", occupationFile, err)
		}
		roomID, ok := roomIDByKey[roomKey{HotelID: uint(hotelID), Number: number}]
		if !ok {
			return nil, fmt.Errorf("%s: unknown room %d in hotel %d", occupationFile, number, hotelID)
		}
		ds.Occupations = append(ds.Occupations, models.Occupation{
			ClientID: uint(clientID),
			HotelID:  uint(hotelID),
			RoomID:   roomID,
			StartAt:  startAt,
			EndAt:    endAt,
		})
	}

	return ds, nil
}
