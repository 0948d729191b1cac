package overview

import "github.com/m04kA/SMC-BusSeating/internal/domain"

// Status состояние загрузки одной части экрана
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// OverviewState сводка по всем маршрутам, загружается один раз
type OverviewState struct {
	Status Status
	Rows   []domain.RouteSummary // по возрастанию номера
	Fleet  domain.FleetSummary
	Error  string
}

// DetailState карточка выбранного маршрута
type DetailState struct {
	Status      Status
	RouteNumber int
	Detail      *domain.RouteDetail
	Error       string
}

// AttendanceState посещаемость выбранного маршрута, обновляется опросом.
// Ошибок здесь нет: неудачный опрос оставляет прежние записи.
type AttendanceState struct {
	Status      Status
	RouteNumber int
	Records     []domain.AttendanceRecord // от новых к старым
	HasData     bool                      // был хотя бы один удачный опрос
}

// View снимок всего экрана администратора
type View struct {
	Overview   OverviewState
	Detail     DetailState
	Attendance AttendanceState
}

func (v View) clone() View {
	out := v

	out.Overview.Rows = append([]domain.RouteSummary(nil), v.Overview.Rows...)
	out.Attendance.Records = append([]domain.AttendanceRecord(nil), v.Attendance.Records...)

	if v.Detail.Detail != nil {
		d := *v.Detail.Detail
		d.Staff = clonePeople(d.Staff)
		d.Students = clonePeople(d.Students)
		d.Attendance = append([]domain.AttendanceRecord(nil), d.Attendance...)
		out.Detail.Detail = &d
	}
	return out
}

func clonePeople(people []domain.Person) []domain.Person {
	if people == nil {
		return nil
	}
	out := make([]domain.Person, len(people))
	for i, p := range people {
		if p.Gender != nil {
			g := *p.Gender
			p.Gender = &g
		}
		if p.Paid != nil {
			v := *p.Paid
			p.Paid = &v
		}
		if p.SeatNumber != nil {
			n := *p.SeatNumber
			p.SeatNumber = &n
		}
		out[i] = p
	}
	return out
}
