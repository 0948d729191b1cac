package overview

import (
	"context"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
)

// Source откуда контроллер берет данные, обычно routesapi.Client
type Source interface {
	Overview(ctx context.Context) ([]domain.RouteSummary, error)
	RouteDetail(ctx context.Context, number int) (*domain.RouteDetail, error)
	Attendance(ctx context.Context, number int, limit int) ([]domain.AttendanceRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
