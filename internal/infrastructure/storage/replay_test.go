package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudokatie/penumbra/internal/domain"
)

func TestReplayService_Roundtrip(t *testing.T) {
	svc := NewReplayService(t.TempDir())

	session := &domain.ReplaySession{
		Seed:      1234567,
		Class:     2,
		CreatedAt: 1767225600,
		Actions: []domain.ReplayAction{
			{Turn: 0, Action: domain.MoveAction(1, 0)},
			{Turn: 1, Action: domain.MoveAction(0, -1)},
			{Turn: 2, Action: domain.AttackAction(domain.DirEast)},
			{Turn: 3, Action: domain.DefendAction()},
			{Turn: 4, Action: domain.UseItemAction(3)},
			{Turn: 5, Action: domain.WaitAction()},
		},
	}

	path, err := svc.Save(session)
	require.NoError(t, err)
	assert.Equal(t, ".pnrp", filepath.Ext(path))

	loaded, err := svc.Load(path)
	require.NoError(t, err)

	assert.Equal(t, session.Seed, loaded.Seed)
	assert.Equal(t, session.Class, loaded.Class)
	assert.Equal(t, session.CreatedAt, loaded.CreatedAt)
	require.Len(t, loaded.Actions, len(session.Actions))

	// Negative move deltas survive the narrow on-disk encoding.
	assert.Equal(t, session.Actions, loaded.Actions)
}

func TestReplayService_RejectsForeignFile(t *testing.T) {
	dir := t.TempDir()
	svc := NewReplayService(dir)

	path := filepath.Join(dir, "bogus.pnrp")
	require.NoError(t, os.WriteFile(path, []byte("XXXX ne replay"), 0644))

	_, err := svc.Load(path)
	assert.Error(t, err)
}

func TestReplayService_EmptySession(t *testing.T) {
	svc := NewReplayService(t.TempDir())

	session := &domain.ReplaySession{Seed: 1, CreatedAt: 2}
	path, err := svc.Save(session)
	require.NoError(t, err)

	loaded, err := svc.Load(path)
	require.NoError(t, err)
	assert.Empty(t, loaded.Actions)
}
