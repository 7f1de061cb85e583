package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmpaz/wl-color-picker/pkg/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "nested", "picks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func savePick(t *testing.T, store *Store, hex, name string, at time.Time) models.Pick {
	t.Helper()
	p := models.Pick{Hex: hex, Name: name, PickedAt: at, Hostname: "host", User: "user"}
	require.NoError(t, store.Save(&p))
	return p
}

func TestSave_AssignsID(t *testing.T) {
	store := newTestStore(t)

	first := savePick(t, store, "#123456", "Mystic Blue", time.Now())
	second := savePick(t, store, "#ff0000", "", time.Now())

	assert.NotZero(t, first.ID)
	assert.Greater(t, second.ID, first.ID)
}

func TestList_NewestFirst(t *testing.T) {
	store := newTestStore(t)
	savePick(t, store, "#111111", "", time.Now())
	savePick(t, store, "#222222", "", time.Now())
	savePick(t, store, "#333333", "", time.Now())

	picks, err := store.List(2, "")
	require.NoError(t, err)
	require.Len(t, picks, 2)
	assert.Equal(t, "#333333", picks[0].Hex)
	assert.Equal(t, "#222222", picks[1].Hex)
}

func TestList_Filter(t *testing.T) {
	store := newTestStore(t)
	savePick(t, store, "#123456", "Mystic Blue", time.Now())
	savePick(t, store, "#ff0000", "Red Alert", time.Now())

	byName, err := store.List(50, "Mystic")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "#123456", byName[0].Hex)

	byHex, err := store.List(50, "ff00")
	require.NoError(t, err)
	require.Len(t, byHex, 1)
	assert.Equal(t, "Red Alert", byHex[0].Name)
}

func TestPrune_ByAge(t *testing.T) {
	store := newTestStore(t)
	savePick(t, store, "#old000", "", time.Now().Add(-48*time.Hour))
	savePick(t, store, "#new000", "", time.Now())

	removed, err := store.Prune(24*time.Hour, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	picks, err := store.List(50, "")
	require.NoError(t, err)
	require.Len(t, picks, 1)
	assert.Equal(t, "#new000", picks[0].Hex)
}

func TestPrune_ByCount(t *testing.T) {
	store := newTestStore(t)
	for _, hex := range []string{"#111111", "#222222", "#333333", "#444444"} {
		savePick(t, store, hex, "", time.Now())
	}

	removed, err := store.Prune(0, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 2, removed)

	picks, err := store.List(50, "")
	require.NoError(t, err)
	require.Len(t, picks, 2)
	assert.Equal(t, "#444444", picks[0].Hex)
	assert.Equal(t, "#333333", picks[1].Hex)
}

func TestPrune_NothingToDo(t *testing.T) {
	store := newTestStore(t)
	savePick(t, store, "#123456", "", time.Now())

	removed, err := store.Prune(0, 0)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
