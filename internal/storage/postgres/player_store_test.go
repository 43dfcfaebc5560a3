package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vigiball-lab/internal/domain"
	"vigiball-lab/internal/storage"
	"vigiball-lab/internal/storage/postgres"
)

func TestPlayerStore_InsertAndGetByName(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := postgres.NewPlayerStore(pool)
	ctx := context.Background()

	records := []*domain.PlayerRecord{
		{
			Name: "Dario Venn", Nation: "it ITA", Pos: "FW", Squad: "Testona",
			Comp: "Serie A", Season: "2025-2026",
			Age: ptr(24.3), N90s: ptr(28.5), XG: ptr(18.2), SuccPct: ptr(52.3),
		},
		{
			Name: "Dario Venn", Pos: "FW", Squad: "Testona", Season: "2024-2025",
			Age: ptr(23.3), N90s: ptr(30.0), XG: ptr(14.0),
		},
		{Name: "Mattia Rou", Pos: "FW", Season: "2025-2026", N90s: ptr(20.0)},
	}
	require.NoError(t, store.InsertBulk(ctx, records))

	// Case-insensitive substring match across the season window
	got, err := store.GetByName(ctx, "dario", []string{"2024-2025", "2025-2026"})
	require.NoError(t, err)
	require.Len(t, got, 2)

	for _, r := range got {
		assert.Equal(t, "Dario Venn", r.Name)
		assert.NotZero(t, r.ID)
	}

	// Null metrics come back nil, present ones intact
	var current *domain.PlayerRecord
	for _, r := range got {
		if r.Season == "2025-2026" {
			current = r
		}
	}
	require.NotNil(t, current)
	require.NotNil(t, current.XG)
	assert.Equal(t, 18.2, *current.XG)
	require.NotNil(t, current.SuccPct)
	assert.Equal(t, 52.3, *current.SuccPct)
	assert.Nil(t, current.KP)
	assert.Nil(t, current.SavePct)
}

func TestPlayerStore_GetByName_SeasonWindow(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := postgres.NewPlayerStore(pool)
	ctx := context.Background()

	require.NoError(t, store.InsertBulk(ctx, []*domain.PlayerRecord{
		{Name: "Kai Marlow", Pos: "MF", Season: "2019-2020", N90s: ptr(25.0)},
		{Name: "Kai Marlow", Pos: "MF", Season: "2025-2026", N90s: ptr(25.0)},
	}))

	got, err := store.GetByName(ctx, "Kai Marlow", []string{"2024-2025", "2025-2026"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2025-2026", got[0].Season)
}

func TestPlayerStore_GetByPosition(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := postgres.NewPlayerStore(pool)
	ctx := context.Background()

	require.NoError(t, store.InsertBulk(ctx, []*domain.PlayerRecord{
		{Name: "Pure Mid", Pos: "MF", Season: "2025-2026", N90s: ptr(10.0)},
		{Name: "Hybrid", Pos: "MF,FW", Season: "2025-2026", N90s: ptr(12.0)},
		{Name: "Cameo Mid", Pos: "MF", Season: "2025-2026", N90s: ptr(2.1)},
		{Name: "No Minutes", Pos: "MF", Season: "2025-2026"},
		{Name: "Defender", Pos: "DF", Season: "2025-2026", N90s: ptr(20.0)},
	}))

	got, err := store.GetByPosition(ctx, "MF", []string{"2025-2026"}, 5.0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, r := range got {
		assert.Contains(t, r.Pos, "MF")
		require.NotNil(t, r.N90s)
		assert.GreaterOrEqual(t, *r.N90s, 5.0)
	}
}

func TestPlayerStore_DeleteBySeason(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := postgres.NewPlayerStore(pool)
	ctx := context.Background()

	require.NoError(t, store.InsertBulk(ctx, []*domain.PlayerRecord{
		{Name: "A", Season: "2024-2025"},
		{Name: "B", Season: "2024-2025"},
		{Name: "C", Season: "2025-2026"},
	}))

	removed, err := store.DeleteBySeason(ctx, "2024-2025")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Deleting an absent season removes nothing
	removed, err = store.DeleteBySeason(ctx, "1999-2000")
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)
}

func TestPlayerStore_InsertBulk_Validation(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := postgres.NewPlayerStore(pool)
	ctx := context.Background()

	// Empty batch is a no-op
	require.NoError(t, store.InsertBulk(ctx, nil))

	err := store.InsertBulk(ctx, []*domain.PlayerRecord{{Season: "2025-2026"}})
	assert.ErrorIs(t, err, storage.ErrInvalidInput)

	err = store.InsertBulk(ctx, []*domain.PlayerRecord{{Name: "A"}})
	assert.ErrorIs(t, err, storage.ErrInvalidInput)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestPlayerStore_InsertBulk_TransactionRollback(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := postgres.NewPlayerStore(pool)
	ctx := context.Background()

	// A nil record rejects the whole batch, valid records included
	err := store.InsertBulk(ctx, []*domain.PlayerRecord{
		{Name: "A", Season: "2025-2026"},
		nil,
	})
	assert.ErrorIs(t, err, storage.ErrInvalidInput)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count, "nothing from a rejected batch may land")
}
