package get_route_detail

import (
	"fmt"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
)

// validateRequest проверяет входные данные запроса
func validateRequest(req *Request) error {
	if req.RouteNumber <= 0 {
		return fmt.Errorf("%w: route number must be positive", ErrInvalidInput)
	}
	if req.AttendanceLimit < 0 || req.AttendanceLimit > domain.MaxRecentAttendance {
		return fmt.Errorf("%w: attendance limit must be between 0 and %d", ErrInvalidInput, domain.MaxRecentAttendance)
	}
	return nil
}
