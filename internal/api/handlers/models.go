package handlers

import "github.com/m04kA/SMC-BusSeating/internal/domain"

// PersonResponse человек в ответах API. Даты рождения здесь нет и быть не должно.
type PersonResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Gender     *string `json:"gender,omitempty"`
	Paid       *bool   `json:"paid,omitempty"`
	SeatNumber *int    `json:"seatNumber,omitempty"`
}

// RouteResponse маршрут без ростера
type RouteResponse struct {
	Number    int    `json:"number"`
	BusNumber string `json:"busNumber"`
	Driver    string `json:"driver"`
	Capacity  int    `json:"capacity"`
}

// RouteSummaryResponse строка сводки заполненности
type RouteSummaryResponse struct {
	Number        int    `json:"number"`
	BusNumber     string `json:"busNumber"`
	Driver        string `json:"driver"`
	Capacity      int    `json:"capacity"`
	StudentsTotal int    `json:"studentsTotal"`
	Boys          int    `json:"boys"`
	Girls         int    `json:"girls"`
	Staff         int    `json:"staff"`
	Occupied      int    `json:"occupied"`
}

// AttendanceRecordResponse отметка посещаемости
type AttendanceRecordResponse struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

func FromDomainPerson(p domain.Person) PersonResponse {
	resp := PersonResponse{
		ID:         p.ID,
		Name:       p.Name,
		Email:      p.Email,
		Role:       string(p.Role),
		Paid:       p.Paid,
		SeatNumber: p.SeatNumber,
	}
	if p.Gender != nil {
		g := string(*p.Gender)
		resp.Gender = &g
	}
	return resp
}

func FromDomainPeople(people []domain.Person) []PersonResponse {
	result := make([]PersonResponse, 0, len(people))
	for _, p := range people {
		result = append(result, FromDomainPerson(p))
	}
	return result
}

func FromDomainRoute(r domain.Route) RouteResponse {
	return RouteResponse{
		Number:    r.Number,
		BusNumber: r.BusNumber,
		Driver:    r.Driver,
		Capacity:  r.Capacity,
	}
}

func FromDomainSummary(s domain.RouteSummary) RouteSummaryResponse {
	return RouteSummaryResponse{
		Number:        s.Number,
		BusNumber:     s.BusNumber,
		Driver:        s.Driver,
		Capacity:      s.Capacity,
		StudentsTotal: s.StudentsTotal,
		Boys:          s.Boys,
		Girls:         s.Girls,
		Staff:         s.Staff,
		Occupied:      s.Occupied,
	}
}

func FromDomainAttendance(records []domain.AttendanceRecord) []AttendanceRecordResponse {
	result := make([]AttendanceRecordResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, AttendanceRecordResponse{Date: rec.DateString(), Count: rec.Count})
	}
	return result
}
