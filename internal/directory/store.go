package directory

import "fmt"

// Store is the ordered, in-memory record set for one session.
//
// Insertion order is preserved and is the tiebreak for stable sorting. Store
// is not safe for concurrent use; Session serializes access to it.
type Store struct {
	records []Record
}

// NewStore returns a store seeded with records in the given order.
func NewStore(records []Record) *Store {
	s := &Store{}
	s.Replace(records)
	return s
}

// Replace swaps the entire record set, as a full fetch does.
func (s *Store) Replace(records []Record) {
	s.records = append(make([]Record, 0, len(records)), records...)
}

// Insert appends a record with a previously unused id.
func (s *Store) Insert(record Record) error {
	if s.HasID(record.ID) {
		return fmt.Errorf("%w: %s", ErrDuplicateID, record.ID)
	}
	s.records = append(s.records, record)
	return nil
}

// Update overwrites the record with the same id in place.
func (s *Store) Update(record Record) error {
	idx := s.index(record.ID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrRecordNotFound, record.ID)
	}
	s.records[idx] = record
	return nil
}

// Delete removes the record with id and reports whether one was removed.
func (s *Store) Delete(id string) bool {
	idx := s.index(id)
	if idx < 0 {
		return false
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	return true
}

// Get returns the record with id.
func (s *Store) Get(id string) (Record, bool) {
	idx := s.index(id)
	if idx < 0 {
		return Record{}, false
	}
	return s.records[idx], true
}

// HasID reports whether a record with id is present.
func (s *Store) HasID(id string) bool {
	return s.index(id) >= 0
}

// Records returns a copy of the record set in insertion order.
func (s *Store) Records() []Record {
	return append([]Record(nil), s.records...)
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

func (s *Store) index(id string) int {
	for i, record := range s.records {
		if record.ID == id {
			return i
		}
	}
	return -1
}
