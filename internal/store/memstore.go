package store

import (
	"sort"
	"sync"
)

// MemStore is an in-memory Store for tests and one-shot runs where nothing
// should touch disk.
type MemStore struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*Reading
}

func NewMemStore() *MemStore {
	return &MemStore{nextID: 1, byID: map[int64]*Reading{}}
}

func (m *MemStore) SaveReading(r *Reading) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *r
	cp.ID = m.nextID
	if cp.CreatedAt == "" {
		cp.CreatedAt = nowUTC()
	}
	m.nextID++
	m.byID[cp.ID] = &cp
	r.ID = cp.ID
	r.CreatedAt = cp.CreatedAt
	return cp.ID, nil
}

func (m *MemStore) GetReading(id int64) (*Reading, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *MemStore) ListReadings(limit int) ([]*Reading, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Reading, 0, len(m.byID))
	for _, r := range m.byID {
		cp := *r
		cp.Chart = nil
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt > out[j].CreatedAt
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemStore) DeleteReading(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
	return nil
}

func (m *MemStore) Close() error { return nil }
