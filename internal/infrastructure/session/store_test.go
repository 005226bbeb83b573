package session_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wims-scanner/internal/infrastructure/session"
)

func abreStore(t *testing.T, dbPath string) *session.Store {
	t.Helper()
	store, err := session.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_SesionVaciaPorDefecto(t *testing.T) {
	store := abreStore(t, filepath.Join(t.TempDir(), "session.db"))

	sess, err := store.Get()
	require.NoError(t, err)
	assert.Empty(t, sess.Token)
	assert.Empty(t, sess.WarehouseID)
	assert.False(t, sess.Complete())
}

func TestStore_PersisteYSobreviveReapertura(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "session.db")

	store := abreStore(t, dbPath)
	require.NoError(t, store.SetToken("tok-123"))
	require.NoError(t, store.SetWarehouse("wh-1"))
	require.NoError(t, store.Close())

	// Reapertura: la sesión debe seguir ahí, como AsyncStorage en el móvil.
	reopened := abreStore(t, dbPath)
	sess, err := reopened.Get()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", sess.Token)
	assert.Equal(t, "wh-1", sess.WarehouseID)
	assert.True(t, sess.Complete())
}

func TestStore_EscrituraIdempotente(t *testing.T) {
	store := abreStore(t, filepath.Join(t.TempDir(), "session.db"))

	require.NoError(t, store.SetWarehouse("wh-1"))
	require.NoError(t, store.SetWarehouse("wh-2"))

	sess, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, "wh-2", sess.WarehouseID, "la última escritura gana")
}

func TestStore_ClearBorraTodaLaSesion(t *testing.T) {
	store := abreStore(t, filepath.Join(t.TempDir(), "session.db"))

	require.NoError(t, store.SetToken("tok-123"))
	require.NoError(t, store.SetWarehouse("wh-1"))
	require.NoError(t, store.Clear())

	sess, err := store.Get()
	require.NoError(t, err)
	assert.Empty(t, sess.Token)
	assert.Empty(t, sess.WarehouseID)
}

func TestStore_CreaDirectorioIntermedio(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "anidado", "session.db")
	store := abreStore(t, dbPath)

	require.NoError(t, store.SetToken("tok-123"))
	sess, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", sess.Token)
}
