package get_attendance

import (
	"context"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
)

type AttendanceService interface {
	Recent(ctx context.Context, routeNumber int, k int) ([]domain.AttendanceRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
