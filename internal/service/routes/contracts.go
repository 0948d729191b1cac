package routes

import (
	"context"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
)

// RouteRepository интерфейс репозитория маршрутов
type RouteRepository interface {
	List(ctx context.Context) ([]domain.Route, error)
	ListWithRosters(ctx context.Context) ([]domain.Route, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
