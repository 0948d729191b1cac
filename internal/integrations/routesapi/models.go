package routesapi

import (
	"time"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
)

// envelope общие поля всех ответов API
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func (e *envelope) result() (bool, string) {
	return e.Success, e.Message
}

type person struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Gender     *string `json:"gender,omitempty"`
	Paid       *bool   `json:"paid,omitempty"`
	SeatNumber *int    `json:"seatNumber,omitempty"`
}

type route struct {
	Number    int    `json:"number"`
	BusNumber string `json:"busNumber"`
	Driver    string `json:"driver"`
	Capacity  int    `json:"capacity"`
}

type summary struct {
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

type attendanceRecord struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type routeDetail struct {
	route
	Staff      []person           `json:"staff"`
	Students   []person           `json:"students"`
	Attendance []attendanceRecord `json:"attendance"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type submitAttendanceRequest struct {
	Date  string `json:"date,omitempty"`
	Count int    `json:"count"`
}

type loginResponse struct {
	envelope
	User person `json:"user"`
}

type routesResponse struct {
	envelope
	Routes []route `json:"routes"`
}

type overviewResponse struct {
	envelope
	Overview []summary `json:"overview"`
}

type routeDetailResponse struct {
	envelope
	Route routeDetail `json:"route"`
}

type attendanceResponse struct {
	envelope
	Attendance []attendanceRecord `json:"attendance"`
}

type submitAttendanceResponse struct {
	envelope
	Record attendanceRecord `json:"record"`
}

func (p person) toDomain() domain.Person {
	res := domain.Person{
		ID:         p.ID,
		Name:       p.Name,
		Email:      p.Email,
		Role:       domain.Role(p.Role),
		Paid:       p.Paid,
		SeatNumber: p.SeatNumber,
	}
	if p.Gender != nil {
		g := domain.Gender(*p.Gender)
		res.Gender = &g
	}
	return res
}

func peopleToDomain(people []person) []domain.Person {
	res := make([]domain.Person, 0, len(people))
	for _, p := range people {
		res = append(res, p.toDomain())
	}
	return res
}

func (r route) toDomain() domain.Route {
	return domain.Route{
		Number:    r.Number,
		BusNumber: r.BusNumber,
		Driver:    r.Driver,
		Capacity:  r.Capacity,
	}
}

func (s summary) toDomain() domain.RouteSummary {
	return domain.RouteSummary{
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

func (a attendanceRecord) toDomain() (domain.AttendanceRecord, error) {
	date, err := time.Parse(domain.DateFormat, a.Date)
	if err != nil {
		return domain.AttendanceRecord{}, err
	}
	return domain.AttendanceRecord{Date: date, Count: a.Count}, nil
}

func attendanceToDomain(records []attendanceRecord) ([]domain.AttendanceRecord, error) {
	res := make([]domain.AttendanceRecord, 0, len(records))
	for _, a := range records {
		rec, err := a.toDomain()
		if err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	return res, nil
}
