package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RoundTripEntreAperturas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("infield_token", "abc123"))
	require.NoError(t, store.Set("infield_user", `{"email":"admin@infield.test"}`))

	reopened, err := Open(path)
	require.NoError(t, err)
	token, ok := reopened.Get("infield_token")
	assert.True(t, ok)
	assert.Equal(t, "abc123", token)
}

func TestStore_ArchivoInexistenteArrancaVacio(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "no-existe.json"))

	require.NoError(t, err)
	_, ok := store.Get("infield_token")
	assert.False(t, ok)
}

func TestStore_ArchivoCorruptoArrancaVacioSinError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{esto no es json"), 0o600))

	store, err := Open(path)

	require.NoError(t, err)
	_, ok := store.Get("infield_token")
	assert.False(t, ok)
}

func TestStore_DeleteBorraYPersiste(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("infield_token", "abc"))
	require.NoError(t, store.Set("infield_user", "u"))

	require.NoError(t, store.Delete("infield_token", "infield_user", "clave-ausente"))

	reopened, err := Open(path)
	require.NoError(t, err)
	_, ok := reopened.Get("infield_token")
	assert.False(t, ok)
}

func TestStore_EscribeConPermisosRestrictivos(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("infield_token", "abc"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
