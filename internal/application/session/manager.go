// Package session gestiona la sesión del administrador de la consola:
// login y logout contra la fachada de auth, y persistencia del usuario y el
// token bajo claves fijas para sobrevivir reinicios del proceso.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/application/ports"
)

// Claves fijas de persistencia. Cambiarlas invalida las sesiones guardadas.
const (
	KeyUser  = "infield_user"
	KeyToken = "infield_token"
)

// KV contrato mínimo de persistencia que necesita la sesión
// (lo implementa localstore.Store).
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(keys ...string) error
}

// TokenHolder receptor del bearer token de la sesión (lo implementa el
// transporte rest; el modo mock usa NopTokenHolder).
type TokenHolder interface {
	SetAccessToken(token string)
	ClearAccessToken()
}

// NopTokenHolder TokenHolder sin efecto, para fachadas que no llevan token.
type NopTokenHolder struct{}

func (NopTokenHolder) SetAccessToken(string) {}
func (NopTokenHolder) ClearAccessToken()     {}

// Manager sesión vigente de la consola. El estado en memoria y el persistido
// se mueven juntos: tras cualquier operación, ambos cuentan la misma historia.
type Manager struct {
	auth  ports.AuthAPI
	kv    KV
	token TokenHolder

	mu   sync.RWMutex
	user *dto.BackendUser
}

// NewManager construye el gestor sin sesión activa; Restore recupera la
// persistida si la hay.
func NewManager(auth ports.AuthAPI, kv KV, token TokenHolder) *Manager {
	return &Manager{auth: auth, kv: kv, token: token}
}

// Login autentica, instala el token en el transporte y persiste usuario y
// token bajo las claves fijas.
func (m *Manager) Login(ctx context.Context, in dto.LoginRequest) (dto.BackendUser, error) {
	resp, err := m.auth.Login(ctx, in)
	if err != nil {
		return dto.BackendUser{}, err
	}

	rawUser, err := json.Marshal(resp.User)
	if err != nil {
		return dto.BackendUser{}, fmt.Errorf("serializar usuario de sesión: %w", err)
	}
	if err := m.kv.Set(KeyUser, string(rawUser)); err != nil {
		return dto.BackendUser{}, err
	}
	if err := m.kv.Set(KeyToken, resp.AccessToken); err != nil {
		return dto.BackendUser{}, err
	}

	m.token.SetAccessToken(resp.AccessToken)
	m.mu.Lock()
	user := resp.User
	m.user = &user
	m.mu.Unlock()
	return resp.User, nil
}

// Restore recupera la sesión persistida. Un par usuario/token incompleto o
// un usuario ilegible dejan la sesión limpia y ambos registros borrados:
// nunca un estado a medias.
func (m *Manager) Restore() bool {
	rawUser, okUser := m.kv.Get(KeyUser)
	token, okToken := m.kv.Get(KeyToken)
	if !okUser || !okToken || token == "" {
		m.clear()
		return false
	}

	var user dto.BackendUser
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		m.clear()
		return false
	}

	m.token.SetAccessToken(token)
	m.mu.Lock()
	m.user = &user
	m.mu.Unlock()
	return true
}

// Logout notifica a la fachada y limpia el estado local pase lo que pase con
// el remoto: la sesión local muere siempre.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.auth.Logout(ctx)
	m.clear()
	return err
}

// IsAuthenticated indica si hay sesión vigente.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil
}

// CurrentUser devuelve el usuario de la sesión vigente.
func (m *Manager) CurrentUser() (dto.BackendUser, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return dto.BackendUser{}, false
	}
	return *m.user, true
}

func (m *Manager) clear() {
	_ = m.kv.Delete(KeyUser, KeyToken)
	m.token.ClearAccessToken()
	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()
}
