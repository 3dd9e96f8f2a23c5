package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SavedTable is a generated document table as last saved by the user.
type SavedTable struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"table_name"`
	Headers   []string   `json:"headers"`
	Rows      [][]string `json:"rows"`
	PlainText string     `json:"plain_text"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type Store interface {
	// SaveTable inserts or replaces the table with the same name and fills
	// in ID and timestamps.
	SaveTable(ctx context.Context, t *SavedTable) error
	// GetTable returns nil, nil when no table with that name was saved.
	GetTable(ctx context.Context, name string) (*SavedTable, error)
	ListTables(ctx context.Context) ([]*SavedTable, error)
	Close() error
}
