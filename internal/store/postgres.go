package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	s := &PostgresStore{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS saved_tables (
	id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	table_name TEXT NOT NULL UNIQUE,
	headers    TEXT[] NOT NULL DEFAULT '{}',
	table_rows JSONB NOT NULL DEFAULT '[]',
	plain_text TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

const tableColumns = `id, table_name, headers, table_rows, plain_text, created_at, updated_at`

func (s *PostgresStore) SaveTable(ctx context.Context, t *SavedTable) error {
	rowsJSON, err := json.Marshal(t.Rows)
	if err != nil {
		return fmt.Errorf("encode rows: %w", err)
	}
	headers := t.Headers
	if headers == nil {
		headers = []string{}
	}

	return s.pool.QueryRow(ctx, `
		INSERT INTO saved_tables (table_name, headers, table_rows, plain_text)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (table_name) DO UPDATE SET
			headers = EXCLUDED.headers,
			table_rows = EXCLUDED.table_rows,
			plain_text = EXCLUDED.plain_text,
			updated_at = now()
		RETURNING id, created_at, updated_at`,
		t.Name, headers, rowsJSON, t.PlainText,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (s *PostgresStore) GetTable(ctx context.Context, name string) (*SavedTable, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+tableColumns+`
		FROM saved_tables WHERE table_name = $1`, name)
	t, err := scanTable(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *PostgresStore) ListTables(ctx context.Context) ([]*SavedTable, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+tableColumns+`
		FROM saved_tables ORDER BY table_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*SavedTable
	for rows.Next() {
		t, err := scanTable(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func scanTable(row pgx.Row) (*SavedTable, error) {
	t := &SavedTable{}
	var rowsJSON []byte
	if err := row.Scan(&t.ID, &t.Name, &t.Headers, &rowsJSON, &t.PlainText, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	if len(rowsJSON) > 0 {
		if err := json.Unmarshal(rowsJSON, &t.Rows); err != nil {
			return nil, fmt.Errorf("decode rows of %s: %w", t.Name, err)
		}
	}
	return t, nil
}
