package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/beeline/internal/db"
)

func newTestRepo(t *testing.T) *SQLiteScheduleRepo {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewSQLiteScheduleRepo(database)
}

func TestGetLast_EmptyReturnsNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, _, err := repo.GetLast(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveLast_ReplacesSingleSlot(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	first := time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC)
	second := first.Add(2 * time.Hour)

	require.NoError(t, repo.SaveLast(ctx, "morning plan", first))
	require.NoError(t, repo.SaveLast(ctx, "revised plan", second))

	body, generatedAt, err := repo.GetLast(ctx)
	require.NoError(t, err)
	assert.Equal(t, "revised plan", body)
	assert.Equal(t, second, generatedAt)
}

func TestAppendHistory_ListsNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC)

	for i, kind := range []ScheduleKind{KindGenerated, KindRefined, KindRefined} {
		require.NoError(t, repo.AppendHistory(ctx, &ScheduleRecord{
			ID:        uuid.NewString(),
			Body:      "plan",
			Kind:      kind,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	records, err := repo.ListHistory(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, KindRefined, records[0].Kind)
	assert.Equal(t, base.Add(2*time.Hour), records[0].CreatedAt)
	assert.Equal(t, KindGenerated, records[2].Kind)
}

func TestListHistory_SameSecondKeepsInsertionOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	at := time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC)

	// A generate followed immediately by a refine lands in the same
	// second; the refine must still list first.
	for _, kind := range []ScheduleKind{KindGenerated, KindRefined} {
		require.NoError(t, repo.AppendHistory(ctx, &ScheduleRecord{
			ID:        uuid.NewString(),
			Body:      "plan",
			Kind:      kind,
			CreatedAt: at,
		}))
	}

	records, err := repo.ListHistory(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, KindRefined, records[0].Kind)
	assert.Equal(t, KindGenerated, records[1].Kind)
}

func TestListHistory_HonorsLimit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.AppendHistory(ctx, &ScheduleRecord{
			ID:        uuid.NewString(),
			Body:      "plan",
			Kind:      KindGenerated,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	records, err := repo.ListHistory(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
