package history

import (
	"context"
	"testing"

	"briefgen/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStore(db)
}

func TestStore_SaveAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	saved, err := s.Save(ctx, domain.ModeDaily, "2026-08-31", "Today the team advanced the program.", "gemini-2.5-flash")
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	got, err := s.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeDaily, got.Mode)
	assert.Equal(t, "2026-08-31", got.ReportDate)
	assert.Equal(t, "Today the team advanced the program.", got.Content)
	assert.Equal(t, "gemini-2.5-flash", got.Model)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestStore_GetMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Distinct created_at values via direct inserts keep ordering deterministic.
	db := s.db
	insert := func(id, createdAt string) {
		_, err := db.ExecContext(ctx,
			`INSERT INTO reports (id, mode, report_date, content, model, created_at) VALUES (?, 'daily', '', ?, '', ?)`,
			id, "content "+id, createdAt)
		require.NoError(t, err)
	}
	insert("a", "2026-08-29T10:00:00Z")
	insert("b", "2026-08-31T10:00:00Z")
	insert("c", "2026-08-30T10:00:00Z")

	all, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "b", all[0].ID)
	assert.Equal(t, "c", all[1].ID)
	assert.Equal(t, "a", all[2].ID)

	limited, err := s.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestStore_ModeConstraint(t *testing.T) {
	s := newTestStore(t)
	_, err := s.db.Exec(`INSERT INTO reports (id, mode, content, created_at) VALUES ('x', 'hourly', '', '2026-08-31T10:00:00Z')`)
	assert.Error(t, err)
}
