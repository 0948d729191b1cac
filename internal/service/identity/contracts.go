package identity

import (
	"context"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
)

// PersonRepository интерфейс репозитория людей
type PersonRepository interface {
	FindByRoleAndEmail(ctx context.Context, role domain.Role, email string) (*domain.Person, error)
}

// Metrics учет исходов входа
type Metrics interface {
	ObserveLogin(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
