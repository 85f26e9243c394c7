package memory

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/application/ports"
	"github.com/infield-hq/infield-console/internal/domain"
	"github.com/infield-hq/infield-console/pkg/jwt"
)

var _ ports.AuthAPI = (*AuthAPI)(nil)

// TokenConfig parámetros de emisión del JWT del modo demo.
type TokenConfig struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// AuthAPI fachada mock de autenticación: valida contra las credenciales
// sembradas (hash bcrypt) y emite un JWT local, de modo que el resto de la
// consola maneja un token real aunque no haya backend.
type AuthAPI struct {
	store *Store
	token TokenConfig
}

// NewAuthAPI construye la fachada sobre el store compartido.
func NewAuthAPI(store *Store, token TokenConfig) *AuthAPI {
	return &AuthAPI{store: store, token: token}
}

// Login compara la contraseña contra el hash sembrado. Credenciales malas y
// usuario inexistente responden igual: no se filtra cuál de los dos falló.
func (a *AuthAPI) Login(_ context.Context, in dto.LoginRequest) (dto.LoginResponse, error) {
	a.store.mu.RLock()
	admin, ok := a.store.admins[in.Email]
	a.store.mu.RUnlock()

	if !ok {
		return dto.LoginResponse{}, fmt.Errorf("credenciales inválidas: %w", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword(admin.passwordHash, []byte(in.Password)); err != nil {
		return dto.LoginResponse{}, fmt.Errorf("credenciales inválidas: %w", domain.ErrUnauthorized)
	}

	token, err := jwt.Generate(a.token.Secret, admin.user.ID, admin.user.Email, admin.user.Role, a.token.Issuer, a.token.ExpMinutes)
	if err != nil {
		return dto.LoginResponse{}, fmt.Errorf("emitir token: %w", err)
	}
	return dto.LoginResponse{AccessToken: token, User: admin.user}, nil
}

// Logout no tiene estado remoto que limpiar en modo demo.
func (a *AuthAPI) Logout(_ context.Context) error {
	return nil
}
