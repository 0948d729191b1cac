package get_route_detail

import (
	"context"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
)

// RouteRepository интерфейс репозитория маршрутов
type RouteRepository interface {
	GetByNumber(ctx context.Context, number int) (*domain.Route, error)
}

// AttendanceLedger источник последних отметок посещаемости
type AttendanceLedger interface {
	Recent(ctx context.Context, routeNumber int, k int) ([]domain.AttendanceRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
