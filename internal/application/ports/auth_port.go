package ports

import (
	"context"

	"github.com/infield-hq/infield-console/internal/application/dto"
)

// AuthAPI autenticación contra el backend (o contra el store mock).
type AuthAPI interface {
	Login(ctx context.Context, in dto.LoginRequest) (dto.LoginResponse, error)
	Logout(ctx context.Context) error
}
