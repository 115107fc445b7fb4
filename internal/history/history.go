// Package history keeps a bounded, in-memory list of recent calculations.
// Entries live only as long as the process; there is no persistence.
package history

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultCapacity is the number of records kept when no capacity is
// configured.
const DefaultCapacity = 10

// Record represents a single completed calculation.
type Record struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Result     float64   `json:"result"`
	Timestamp  time.Time `json:"timestamp"`
}

// Store is a bounded most-recent-first record list, safe for concurrent
// use.
type Store struct {
	mu       sync.RWMutex
	capacity int
	records  []Record
}

// NewStore creates a Store with the given capacity. Non-positive
// capacities fall back to DefaultCapacity.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		capacity: capacity,
		records:  make([]Record, 0, capacity),
	}
}

// Add prepends a record for the given calculation, evicting the oldest
// entry when the store is full, and returns the stored record.
func (s *Store) Add(expression string, result float64) Record {
	record := Record{
		ID:         uuid.NewString(),
		Expression: expression,
		Result:     result,
		Timestamp:  time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append([]Record{record}, s.records...)
	if len(s.records) > s.capacity {
		s.records = s.records[:s.capacity]
	}
	return record
}

// List returns a copy of the records, most recent first.
func (s *Store) List() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Clear removes all records.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = s.records[:0]
}

// Capacity returns the maximum number of records the store keeps.
func (s *Store) Capacity() int {
	return s.capacity
}
