package get_route

import (
	"github.com/m04kA/SMC-BusSeating/internal/api/handlers"
	"github.com/m04kA/SMC-BusSeating/internal/domain"
)

// RouteDetailResponse карточка маршрута
type RouteDetailResponse struct {
	Number     int                                 `json:"number"`
	BusNumber  string                              `json:"busNumber"`
	Driver     string                              `json:"driver"`
	Capacity   int                                 `json:"capacity"`
	Staff      []handlers.PersonResponse           `json:"staff"`
	Students   []handlers.PersonResponse           `json:"students"`
	Attendance []handlers.AttendanceRecordResponse `json:"attendance"`
}

// GetRouteResponse HTTP response model
type GetRouteResponse struct {
	Success bool                `json:"success"`
	Route   RouteDetailResponse `json:"route"`
}

func FromDomainDetail(d *domain.RouteDetail) RouteDetailResponse {
	return RouteDetailResponse{
		Number:     d.Number,
		BusNumber:  d.BusNumber,
		Driver:     d.Driver,
		Capacity:   d.Capacity,
		Staff:      handlers.FromDomainPeople(d.Staff),
		Students:   handlers.FromDomainPeople(d.Students),
		Attendance: handlers.FromDomainAttendance(d.Attendance),
	}
}
