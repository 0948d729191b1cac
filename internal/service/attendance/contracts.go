package attendance

import (
	"context"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
)

// AttendanceRepository интерфейс журнала посещаемости
type AttendanceRepository interface {
	Append(ctx context.Context, routeNumber int, record domain.AttendanceRecord) error
	Recent(ctx context.Context, routeNumber int, limit int) ([]domain.AttendanceRecord, error)
}

// RouteRepository нужен только для проверки существования маршрута
type RouteRepository interface {
	Exists(ctx context.Context, number int) (bool, error)
}

// EventPublisher публикует событие о принятой отметке
type EventPublisher interface {
	PublishAttendanceSubmitted(ctx context.Context, event domain.AttendanceSubmitted) error
}

// Metrics учет принятых отметок
type Metrics interface {
	ObserveAttendance(routeNumber int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
