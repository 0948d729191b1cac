package domain

import "time"

// AttendanceRecord одна отметка посещаемости маршрута
type AttendanceRecord struct {
	Date  time.Time // календарная дата, время не используется
	Count int
}

// DateString returns the record date as YYYY-MM-DD
func (a AttendanceRecord) DateString() string {
	return a.Date.Format(DateFormat)
}

// AttendanceSubmitted событие о принятой отметке
type AttendanceSubmitted struct {
	RouteNumber int
	Record      AttendanceRecord
	SubmittedAt time.Time
}
