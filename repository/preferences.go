package repository

import (
	"sync"

	"github.com/smarttransit-lk/agents-api/models"
)

// PreferenceStore is the injectable store for learned travel preferences.
// Writes are whole-record replacements; the only ordering guarantee under
// concurrent writes to one key is last write wins.
type PreferenceStore interface {
	Get(userID string) (models.PreferenceRecord, bool)
	Put(userID string, record models.PreferenceRecord)
}

// MemoryPreferenceStore holds preferences in a process-lifetime map. No
// eviction, no persistence; everything is lost on restart.
type MemoryPreferenceStore struct {
	mu      sync.RWMutex
	records map[string]models.PreferenceRecord
}

// NewMemoryPreferenceStore creates an empty in-memory preference store
func NewMemoryPreferenceStore() *MemoryPreferenceStore {
	return &MemoryPreferenceStore{
		records: make(map[string]models.PreferenceRecord),
	}
}

// Get returns the stored record for the user, if any
func (s *MemoryPreferenceStore) Get(userID string) (models.PreferenceRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[userID]
	return record, ok
}

// Put stores the record for the user, replacing any prior record
func (s *MemoryPreferenceStore) Put(userID string, record models.PreferenceRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[userID] = record
}
