package login

import (
	"context"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
)

type IdentityService interface {
	Authenticate(ctx context.Context, email, password string, role domain.Role) (*domain.Person, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
