package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/domain"
)

// fakeAuth fachada de auth controlable desde el test.
type fakeAuth struct {
	loginResp  dto.LoginResponse
	loginErr   error
	logoutErr  error
	logoutHits int
}

func (f *fakeAuth) Login(context.Context, dto.LoginRequest) (dto.LoginResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutHits++
	return f.logoutErr
}

// fakeKV almacén en memoria con registro del estado final.
type fakeKV struct {
	data map[string]string
}

func newFakeKV() *fakeKV { return &fakeKV{data: map[string]string{}} }

func (f *fakeKV) Get(key string) (string, bool) { v, ok := f.data[key]; return v, ok }
func (f *fakeKV) Set(key, value string) error   { f.data[key] = value; return nil }
func (f *fakeKV) Delete(keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

// fakeTokenHolder registra el token instalado en el transporte.
type fakeTokenHolder struct {
	token string
}

func (f *fakeTokenHolder) SetAccessToken(token string) { f.token = token }
func (f *fakeTokenHolder) ClearAccessToken()           { f.token = "" }

func TestLogin_PersisteUsuarioYTokenBajoClavesFijas(t *testing.T) {
	auth := &fakeAuth{loginResp: dto.LoginResponse{
		AccessToken: "jwt-abc",
		User:        dto.BackendUser{ID: "u1", Email: "admin@infield.test"},
	}}
	kv := newFakeKV()
	holder := &fakeTokenHolder{}
	m := NewManager(auth, kv, holder)

	user, err := m.Login(context.Background(), dto.LoginRequest{Email: "admin@infield.test", Password: "12345678"})

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.True(t, m.IsAuthenticated())
	assert.Equal(t, "jwt-abc", holder.token)

	token, ok := kv.Get(KeyToken)
	require.True(t, ok)
	assert.Equal(t, "jwt-abc", token)
	rawUser, ok := kv.Get(KeyUser)
	require.True(t, ok)
	assert.Contains(t, rawUser, "admin@infield.test")
}

func TestLogin_FalloDeAuthNoDejaNadaPersistido(t *testing.T) {
	auth := &fakeAuth{loginErr: domain.ErrUnauthorized}
	kv := newFakeKV()
	m := NewManager(auth, kv, &fakeTokenHolder{})

	_, err := m.Login(context.Background(), dto.LoginRequest{Email: "x@y.test", Password: "incorrecta"})

	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	assert.False(t, m.IsAuthenticated())
	assert.Empty(t, kv.data)
}

func TestRestore_RecuperaSesionCompleta(t *testing.T) {
	kv := newFakeKV()
	kv.data[KeyUser] = `{"id":"u1","email":"admin@infield.test"}`
	kv.data[KeyToken] = "jwt-abc"
	holder := &fakeTokenHolder{}
	m := NewManager(&fakeAuth{}, kv, holder)

	ok := m.Restore()

	assert.True(t, ok)
	assert.True(t, m.IsAuthenticated())
	assert.Equal(t, "jwt-abc", holder.token)
	user, found := m.CurrentUser()
	require.True(t, found)
	assert.Equal(t, "admin@infield.test", user.Email)
}

func TestRestore_UsuarioCorruptoLimpiaAmbasClaves(t *testing.T) {
	kv := newFakeKV()
	kv.data[KeyUser] = "{no es json"
	kv.data[KeyToken] = "jwt-abc"
	m := NewManager(&fakeAuth{}, kv, &fakeTokenHolder{})

	ok := m.Restore()

	assert.False(t, ok)
	assert.False(t, m.IsAuthenticated())
	_, hasUser := kv.Get(KeyUser)
	_, hasToken := kv.Get(KeyToken)
	assert.False(t, hasUser)
	assert.False(t, hasToken)
}

func TestRestore_TokenSinUsuarioNoAutentica(t *testing.T) {
	kv := newFakeKV()
	kv.data[KeyToken] = "jwt-abc"
	m := NewManager(&fakeAuth{}, kv, &fakeTokenHolder{})

	assert.False(t, m.Restore())
	assert.False(t, m.IsAuthenticated())
}

func TestLogout_LimpiaLocalAunqueElRemotoFalle(t *testing.T) {
	auth := &fakeAuth{
		loginResp: dto.LoginResponse{AccessToken: "jwt-abc", User: dto.BackendUser{ID: "u1"}},
		logoutErr: errors.New("backend caído"),
	}
	kv := newFakeKV()
	holder := &fakeTokenHolder{}
	m := NewManager(auth, kv, holder)
	_, err := m.Login(context.Background(), dto.LoginRequest{Email: "a@b.test", Password: "12345678"})
	require.NoError(t, err)

	err = m.Logout(context.Background())

	assert.Error(t, err)
	assert.Equal(t, 1, auth.logoutHits)
	assert.False(t, m.IsAuthenticated())
	assert.Empty(t, holder.token)
	assert.Empty(t, kv.data)
}
