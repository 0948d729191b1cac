package get_attendance

import "github.com/m04kA/SMC-BusSeating/internal/api/handlers"

// AttendanceResponse HTTP response model, отметки от новых к старым
type AttendanceResponse struct {
	Success    bool                                `json:"success"`
	Attendance []handlers.AttendanceRecordResponse `json:"attendance"`
}
