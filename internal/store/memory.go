package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps saved tables in process memory. It is used when no
// database is configured; contents are lost on restart.
type MemoryStore struct {
	mu     sync.RWMutex
	tables map[string]*SavedTable
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tables: make(map[string]*SavedTable)}
}

func (m *MemoryStore) SaveTable(_ context.Context, t *SavedTable) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	if prev, ok := m.tables[t.Name]; ok {
		t.ID = prev.ID
		t.CreatedAt = prev.CreatedAt
	} else {
		t.ID = uuid.New()
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	m.tables[t.Name] = cloneTable(t)
	return nil
}

func (m *MemoryStore) GetTable(_ context.Context, name string) (*SavedTable, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tables[name]
	if !ok {
		return nil, nil
	}
	return cloneTable(t), nil
}

func (m *MemoryStore) ListTables(_ context.Context) ([]*SavedTable, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*SavedTable, 0, len(m.tables))
	for _, t := range m.tables {
		out = append(out, cloneTable(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *MemoryStore) Close() error { return nil }

func cloneTable(t *SavedTable) *SavedTable {
	c := *t
	c.Headers = append([]string(nil), t.Headers...)
	c.Rows = make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		c.Rows[i] = append([]string(nil), r...)
	}
	return &c
}
