package list_routes

import (
	"context"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
)

type RouteService interface {
	List(ctx context.Context) ([]domain.Route, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
