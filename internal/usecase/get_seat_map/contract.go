package get_seat_map

import (
	"context"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
)

// RouteRepository интерфейс репозитория маршрутов
type RouteRepository interface {
	GetByNumber(ctx context.Context, number int) (*domain.Route, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
