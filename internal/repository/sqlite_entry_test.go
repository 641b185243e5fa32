package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/chantcounter/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryRepo_CreateAndListByDate(t *testing.T) {
	repo := NewSQLiteEntryRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	e1 := testutil.NewTestEntry("2024-05-01", 27, testutil.WithCreatedAt(base))
	e2 := testutil.NewTestEntry("2024-05-01", 81, testutil.WithPrevious(27), testutil.WithCreatedAt(base.Add(time.Hour)))
	other := testutil.NewTestEntry("2024-05-02", 10, testutil.WithCreatedAt(base.Add(24*time.Hour)))
	require.NoError(t, repo.Create(ctx, e1))
	require.NoError(t, repo.Create(ctx, e2))
	require.NoError(t, repo.Create(ctx, other))

	list, err := repo.ListByDate(ctx, "2024-05-01")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, e1.ID, list[0].ID)
	assert.Equal(t, e2.ID, list[1].ID)
	assert.Equal(t, 27, list[1].Previous)
	assert.Equal(t, 108, list[1].New)
	assert.True(t, base.Equal(list[0].CreatedAt))
}

func TestEntryRepo_ListRecentNewestFirst(t *testing.T) {
	repo := NewSQLiteEntryRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		// Sub-second offsets must still sort correctly.
		at := base.Add(time.Duration(i) * 100 * time.Millisecond)
		require.NoError(t, repo.Create(ctx, testutil.NewTestEntry("2024-05-01", i+1, testutil.WithCreatedAt(at))))
	}

	list, err := repo.ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 5, list[0].Delta)
	assert.Equal(t, 4, list[1].Delta)
	assert.Equal(t, 3, list[2].Delta)
}

func TestEntryRepo_DeleteAll(t *testing.T) {
	repo := NewSQLiteEntryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestEntry("2024-05-01", 1)))
	require.NoError(t, repo.DeleteAll(ctx))

	list, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}
