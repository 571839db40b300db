package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"hotel-assistant/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slots is the per-conversation memory carried between turns. Zero values
// mean "not set".
type Slots struct {
	City      string   `json:"city,omitempty"`
	MaxPrice  *float64 `json:"price,omitempty"`
	PartySize int      `json:"party_size,omitempty"`
}

// SlotStore persists slot state per chat sender. Turns of one conversation
// arrive sequentially, but different conversations may hit the store
// concurrently.
type SlotStore interface {
	Get(senderID string) (Slots, error)
	Put(senderID string, slots Slots) error
}

// MemorySlotStore keeps slots in process memory. Used in tests and as a
// fallback when no database is wired up.
type MemorySlotStore struct {
	mu    sync.Mutex
	slots map[string]Slots
}

func NewMemorySlotStore() *MemorySlotStore {
	return &MemorySlotStore{slots: make(map[string]Slots)}
}

func (s *MemorySlotStore) Get(senderID string) (Slots, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slots[senderID], nil
}

func (s *MemorySlotStore) Put(senderID string, slots Slots) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[senderID] = slots
	return nil
}

// DBSlotStore persists slots as a JSON column on the conversations table.
type DBSlotStore struct {
	DB *gorm.DB
}

func NewDBSlotStore(db *gorm.DB) *DBSlotStore {
	return &DBSlotStore{DB: db}
}

func (s *DBSlotStore) Get(senderID string) (Slots, error) {
	var conv models.Conversation
	err := s.DB.Where("sender_id = ?", senderID).First(&conv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Slots{}, nil
	}
	if err != nil {
		return Slots{}, fmt.Errorf("load slots: %w", err)
	}

	var slots Slots
	if len(conv.Slots) > 0 {
		if err := json.Unmarshal(conv.Slots, &slots); err != nil {
			return Slots{}, fmt.Errorf("decode slots: %w", err)
		}
	}
	return slots, nil
}

func (s *DBSlotStore) Put(senderID string, slots Slots) error {
	raw, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("encode slots: %w", err)
	}

	conv := models.Conversation{SenderID: senderID, Slots: raw}
	err = s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sender_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"slots", "updated_at"}),
	}).Create(&conv).Error
	if err != nil {
		return fmt.Errorf("save slots: %w", err)
	}
	return nil
}
