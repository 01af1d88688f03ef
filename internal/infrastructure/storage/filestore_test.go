package storage

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudokatie/penumbra/internal/domain"
	"github.com/sudokatie/penumbra/internal/engine"
	"github.com/sudokatie/penumbra/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func testGame(t *testing.T) *engine.GameState {
	t.Helper()

	date, _ := time.ParseInLocation("2006-01-02", "2026-03-01", time.UTC)
	records := []domain.ActivityRecord{
		{ID: "c1", Date: date, Magnitude: 100, Message: "implement scheduler"},
	}

	game, err := engine.New(records, engine.Config{Seed: 9})
	require.NoError(t, err)
	return game
}

func TestFileStore_SaveLoadRoundtrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	game := testGame(t)
	game.ProcessAction(domain.MoveAction(1, 0))
	game.ProcessEnemies()

	require.NoError(t, store.SaveGame(game))
	assert.True(t, store.SaveExists())

	loaded, err := store.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, game.Seed, loaded.Seed)
	assert.Equal(t, game.Turn, loaded.Turn)
	assert.Equal(t, game.Player, loaded.Player)
	assert.Equal(t, game.World.CurrentRoom, loaded.World.CurrentRoom)
	assert.Len(t, loaded.World.Rooms, len(game.World.Rooms))

	// Visibility is derived state and must be rebuilt after load.
	loaded.UpdateFOV()
	assert.True(t, loaded.Visible.Has(loaded.Player.Pos))
}

func TestFileStore_LoadWithoutSave(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.LoadGame()
	assert.ErrorIs(t, err, ErrNoSave)
	assert.False(t, store.SaveExists())
}

func TestFileStore_DeleteSave(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.SaveGame(testGame(t)))
	require.NoError(t, store.DeleteSave())
	assert.False(t, store.SaveExists())

	// Deleting a missing save is not an error.
	assert.NoError(t, store.DeleteSave())
}

func TestFileStore_History(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	history, err := store.LoadHistory()
	require.NoError(t, err)
	assert.Empty(t, history)

	run := RunRecord{
		Seed:       9,
		Class:      "WANDERER",
		Turns:      42,
		Level:      2,
		Victory:    true,
		RoomsSeen:  3,
		FinishedAt: time.Now().UTC(),
	}
	require.NoError(t, store.AppendRun(run))

	history, err = store.LoadHistory()
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, run.Seed, history[0].Seed)
	assert.Equal(t, run.Victory, history[0].Victory)
}

func TestFileStore_HistoryBounded(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	for i := 0; i < maxHistory+5; i++ {
		require.NoError(t, store.AppendRun(RunRecord{Seed: uint64(i)}))
	}

	history, err := store.LoadHistory()
	require.NoError(t, err)
	require.Len(t, history, maxHistory)

	// Oldest runs fall off the front.
	assert.Equal(t, uint64(5), history[0].Seed)
	assert.Equal(t, uint64(maxHistory+4), history[len(history)-1].Seed)
}
