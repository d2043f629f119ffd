package catalog

import "context"

// Store is the read-only storage interface for the catalog snapshot.
// List must return records in their original catalog order; ranking
// relies on that order for tie-breaking.
type Store interface {
	Get(ctx context.Context, id string) (*ModelRecord, error)
	List(ctx context.Context) ([]ModelRecord, error)
	Count(ctx context.Context) (int, error)
}

// MemoryStore holds the immutable in-memory snapshot for one session.
// There is no mutation path: the catalog is loaded once and served
// as-is, so no locking is needed.
type MemoryStore struct {
	records []ModelRecord
	byID    map[string]int
}

// NewMemoryStore snapshots the given records. Later mutation of the
// caller's slice does not affect the store.
func NewMemoryStore(records []ModelRecord) *MemoryStore {
	snapshot := make([]ModelRecord, len(records))
	copy(snapshot, records)

	byID := make(map[string]int, len(snapshot))
	for i, r := range snapshot {
		if _, exists := byID[r.ID]; !exists {
			byID[r.ID] = i
		}
	}

	return &MemoryStore{records: snapshot, byID: byID}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*ModelRecord, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	record := s.records[i]
	return &record, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]ModelRecord, error) {
	out := make([]ModelRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	return len(s.records), nil
}
