package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomba/internal/monitoring"
	"roomba/internal/sims/roomba"
)

func init() {
	monitoring.SetLogger(nil)
}

func summary(seed int64) roomba.Summary {
	return roomba.Summary{
		RunID:        uuid.New(),
		Seed:         seed,
		Cleaners:     2,
		Width:        10,
		Height:       10,
		DirtyPercent: 50,
		TimeLimit:    30 * time.Second,
		Reason:       roomba.ReasonAllClean,
		Ticks:        120,
		Elapsed:      2500 * time.Millisecond,
		FinalClean:   100,
		Moves:        []roomba.CleanerMoves{{ID: 1000, Moves: 60}, {ID: 1001, Moves: 58}},
	}
}

func openStores(t *testing.T) map[string]Store {
	t.Helper()
	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": NewSQLiteStore(filepath.Join(t.TempDir(), "runs.db")),
	}
	for name, store := range stores {
		require.NoError(t, store.Init(context.Background()), name)
		t.Cleanup(func() { _ = store.Close() })
	}
	return stores
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			first, second := summary(1), summary(2)
			second.Reason = roomba.ReasonTimeLimit
			second.FinalClean = 87.5

			require.NoError(t, store.SaveRun(ctx, first))
			require.NoError(t, store.SaveRun(ctx, second))

			got, ok, err := store.GetRun(ctx, second.RunID)
			require.NoError(t, err)
			require.True(t, ok)
			if diff := cmp.Diff(second, got); diff != "" {
				t.Fatalf("run mismatch (-want +got):\n%s", diff)
			}

			runs, err := store.ListRuns(ctx)
			require.NoError(t, err)
			if diff := cmp.Diff([]roomba.Summary{first, second}, runs); diff != "" {
				t.Fatalf("list mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStoreIsAppendOnly(t *testing.T) {
	ctx := context.Background()
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			run := summary(7)
			require.NoError(t, store.SaveRun(ctx, run))

			run.FinalClean = 0
			require.ErrorIs(t, store.SaveRun(ctx, run), ErrDuplicateRun)

			got, ok, err := store.GetRun(ctx, run.RunID)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, 100.0, got.FinalClean)
		})
	}
}

func TestStoreMissingRun(t *testing.T) {
	ctx := context.Background()
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := store.GetRun(ctx, uuid.New())
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestSQLiteStoreReopens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "runs.db")
	run := summary(3)

	store := NewSQLiteStore(path)
	require.NoError(t, store.Init(ctx))
	require.NoError(t, store.SaveRun(ctx, run))
	require.NoError(t, store.Close())

	reopened := NewSQLiteStore(path)
	require.NoError(t, reopened.Init(ctx))
	t.Cleanup(func() { _ = reopened.Close() })

	runs, err := reopened.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.RunID, runs[0].RunID)
}

func TestSQLiteStoreRequiresInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "runs.db"))
	require.Error(t, store.SaveRun(context.Background(), summary(1)))
	require.Error(t, NewSQLiteStore("").Init(context.Background()))
}

func TestSinkSavesRun(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Init(ctx))

	run := summary(9)
	require.NoError(t, Sink{Store: store}.Write(ctx, run, nil))
	require.ErrorIs(t, Sink{Store: store}.Write(ctx, run, nil), ErrDuplicateRun)
}

func TestNewStore(t *testing.T) {
	store, err := NewStore("memory", "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	store, err = NewStore("sqlite", "x.db")
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, store)

	_, err = NewStore("unknown", "")
	require.Error(t, err)
}
