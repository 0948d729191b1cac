package submit_attendance

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
)

type AttendanceService interface {
	Append(ctx context.Context, routeNumber int, date time.Time, count int) (*domain.AttendanceRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
