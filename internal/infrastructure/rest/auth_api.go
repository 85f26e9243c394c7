package rest

import (
	"context"

	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/application/ports"
)

var _ ports.AuthAPI = (*AuthAPI)(nil)

// AuthAPI autenticación contra el backend. Un login exitoso instala el token
// en el transporte compartido; todas las fachadas que cuelgan del mismo
// Client pasan a enviar Authorization desde ese momento.
type AuthAPI struct {
	client *Client
}

// NewAuthAPI construye la fachada sobre el transporte compartido.
func NewAuthAPI(client *Client) *AuthAPI {
	return &AuthAPI{client: client}
}

// Login autentica y deja el accessToken instalado en el cliente.
func (a *AuthAPI) Login(ctx context.Context, in dto.LoginRequest) (dto.LoginResponse, error) {
	var resp dto.LoginResponse
	if err := a.client.Post(ctx, "/api/v1/auth/login", in, &resp); err != nil {
		return dto.LoginResponse{}, err
	}
	if resp.AccessToken != "" {
		a.client.SetAccessToken(resp.AccessToken)
	}
	return resp, nil
}

// Logout notifica al backend y limpia el token local aunque el remoto falle:
// la sesión del lado del cliente muere en cualquier caso.
func (a *AuthAPI) Logout(ctx context.Context) error {
	err := a.client.Post(ctx, "/api/v1/auth/logout", nil, nil)
	a.client.ClearAccessToken()
	return err
}
