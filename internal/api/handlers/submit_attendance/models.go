package submit_attendance

import (
	"time"

	"github.com/m04kA/SMC-BusSeating/internal/api/handlers"
	"github.com/m04kA/SMC-BusSeating/internal/domain"
)

// SubmitAttendanceRequest HTTP request model
type SubmitAttendanceRequest struct {
	Date  *string `json:"date,omitempty"` // "2024-03-01", по умолчанию сегодня
	Count *int    `json:"count"`
}

// SubmitAttendanceResponse HTTP response model
type SubmitAttendanceResponse struct {
	Success bool                              `json:"success"`
	Record  handlers.AttendanceRecordResponse `json:"record"`
}

// ParseDate возвращает нулевое время, если дата не передана
func (r *SubmitAttendanceRequest) ParseDate() (time.Time, error) {
	if r.Date == nil || *r.Date == "" {
		return time.Time{}, nil
	}
	return time.Parse(domain.DateFormat, *r.Date)
}
