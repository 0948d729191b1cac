package get_overview

import (
	"context"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
)

type RouteService interface {
	Overview(ctx context.Context) ([]domain.RouteSummary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
