package services

import (
	"errors"
	"fmt"
	"log"

	"hotel-assistant/models"

	"gorm.io/gorm"
)

// DatasetStore is the store-side contract of the fixture tooling: reset the
// tables, load a dataset in, or dump the current contents back out.
type DatasetStore interface {
	Reset() error
	ImportDataset(ds *Dataset) (ImportReport, error)
	LoadDataset() (*Dataset, error)
}

// ImportService loads a dataset into the relational store.
type ImportService struct {
	DB *gorm.DB
}

func NewImportService(db *gorm.DB) *ImportService {
	return &ImportService{DB: db}
}

// ImportReport summarizes one import pass.
type ImportReport struct {
	Hotels              int `json:"hotels"`
	RoomTypes           int `json:"roomTypes"`
	Rooms               int `json:"rooms"`
	Clients             int `json:"clients"`
	Reservations        int `json:"reservations"`
	Occupations         int `json:"occupations"`
	SkippedReservations int `json:"skippedReservations"`
	SkippedOccupations  int `json:"skippedOccupations"`
}

// Reset empties all entity tables, children before parents.
func (s *ImportService) Reset() error {
	tables := []interface{}{
		&models.Occupation{},
		&models.Reservation{},
		&models.Client{},
		&models.Room{},
		&models.RoomType{},
		&models.Hotel{},
	}
	for _, table := range tables {
		if err := s.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return fmt.Errorf("reset: %w", err)
		}
	}
	return nil
}

// ImportDataset writes a dataset into the store. Reference entities go in as
// bulk creates and any failure there aborts the pass. Reservation and
// occupation rows are created one by one: a duplicate key only skips that
// row, keeping the rest of the import alive. The importer does not check
// occupation intervals for overlap; that invariant belongs to the generator,
// and overlapping rows arriving by file are accepted as-is.
func (s *ImportService) ImportDataset(ds *Dataset) (ImportReport, error) {
	report := ImportReport{}

	if len(ds.Hotels) > 0 {
		if err := s.DB.Create(&ds.Hotels).Error; err != nil {
			return report, fmt.Errorf("import hotels: %w", err)
		}
	}
	report.Hotels = len(ds.Hotels)

	if len(ds.RoomTypes) > 0 {
		if err := s.DB.Create(&ds.RoomTypes).Error; err != nil {
			return report, fmt.Errorf("import room types: %w", err)
		}
	}
	report.RoomTypes = len(ds.RoomTypes)

	if len(ds.Rooms) > 0 {
		if err := s.DB.Create(&ds.Rooms).Error; err != nil {
			return report, fmt.Errorf("import rooms: %w", err)
		}
	}
	report.Rooms = len(ds.Rooms)

	if len(ds.Clients) > 0 {
		if err := s.DB.Create(&ds.Clients).Error; err != nil {
			return report, fmt.Errorf("import clients: %w", err)
		}
	}
	report.Clients = len(ds.Clients)

	for i := range ds.Reservations {
		res := ds.Reservations[i]
		res.ID = 0
		if err := s.DB.Create(&res).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				log.Printf("import: skipping duplicate reservation (client=%d hotel=%d type=%d start=%s)",
					res.ClientID, res.HotelID, res.RoomTypeID, res.StartAt)
				report.SkippedReservations++
				continue
			}
			return report, fmt.Errorf("import reservation: %w", err)
		}
		report.Reservations++
	}

	for i := range ds.Occupations {
		occ := ds.Occupations[i]
		occ.ID = 0
		if err := s.DB.Create(&occ).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				log.Printf("import: skipping duplicate occupation (client=%d hotel=%d room=%d start=%s)",
					occ.ClientID, occ.HotelID, occ.RoomID, occ.StartAt)
				report.SkippedOccupations++
				continue
			}
			return report, fmt.Errorf("import occupation: %w", err)
		}
		report.Occupations++
	}

	return report, nil
}

// LoadDataset reads the current store contents back into a Dataset, in
// primary-key order so repeated exports stay stable.
func (s *ImportService) LoadDataset() (*Dataset, error) {
	ds := &Dataset{}
	if err := s.DB.Order("id").Find(&ds.Hotels).Error; err != nil {
		return nil, fmt.Errorf("load hotels: %w", err)
	}
	if err := s.DB.Order("id").Find(&ds.RoomTypes).Error; err != nil {
		return nil, fmt.Errorf("load room types: %w", err)
	}
	if err := s.DB.Order("id").Find(&ds.Rooms).Error; err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}
	if err := s.DB.Order("id").Find(&ds.Clients).Error; err != nil {
		return nil, fmt.Errorf("load clients: %w", err)
	}
	if err := s.DB.Order("id").Find(&ds.Reservations).Error; err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}
	if err := s.DB.Order("id").Find(&ds.Occupations).Error; err != nil {
		return nil, fmt.Errorf("load occupations: %w", err)
	}
	return ds, nil
}
