package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Store = (*MemoryStore)(nil)
var _ Store = (*PostgresStore)(nil)

func TestMemoryStoreSaveAndGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	tbl := &SavedTable{
		Name:      "Workers_Table",
		Headers:   []string{"Role", "Count"},
		Rows:      [][]string{{"Engineer", "3"}},
		PlainText: "Role|Count\nEngineer|3",
	}
	require.NoError(t, s.SaveTable(ctx, tbl))
	assert.NotEqual(t, uuid.Nil, tbl.ID)
	assert.False(t, tbl.CreatedAt.IsZero())

	got, err := s.GetTable(ctx, "Workers_Table")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, tbl.ID, got.ID)
	assert.Equal(t, tbl.Rows, got.Rows)
	assert.Equal(t, tbl.PlainText, got.PlainText)
}

func TestMemoryStoreUpsertKeepsIdentity(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	first := &SavedTable{Name: "Workers_Table", Headers: []string{"a"}}
	require.NoError(t, s.SaveTable(ctx, first))

	second := &SavedTable{Name: "Workers_Table", Headers: []string{"b"}}
	require.NoError(t, s.SaveTable(ctx, second))

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	got, err := s.GetTable(ctx, "Workers_Table")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, got.Headers)
}

func TestMemoryStoreMissing(t *testing.T) {
	got, err := NewMemoryStore().GetTable(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.SaveTable(ctx, &SavedTable{Name: "t", Rows: [][]string{{"x"}}}))

	got, _ := s.GetTable(ctx, "t")
	got.Rows[0][0] = "mutated"

	again, _ := s.GetTable(ctx, "t")
	assert.Equal(t, "x", again.Rows[0][0])
}

func TestMemoryStoreListSorted(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	for _, n := range []string{"Workers_Table", "Bill_of_Quantities_and_Prices", "Materials_Specifications_Table"} {
		require.NoError(t, s.SaveTable(ctx, &SavedTable{Name: n}))
	}

	list, err := s.ListTables(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Bill_of_Quantities_and_Prices", list[0].Name)
	assert.Equal(t, "Materials_Specifications_Table", list[1].Name)
	assert.Equal(t, "Workers_Table", list[2].Name)
}
