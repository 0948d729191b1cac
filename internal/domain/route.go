package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCapacity    = errors.New("route capacity must be positive")
	ErrRosterOverCapacity = errors.New("route roster exceeds capacity")
)

// Route represents one bus with its assigned roster
type Route struct {
	Number    int
	BusNumber string
	Driver    string
	Capacity  int
	Roster    []Person // порядок важен для раскладки мест
}

// Validate checks the capacity invariants of the route
func (r *Route) Validate() error {
	if r.Capacity <= 0 {
		return fmt.Errorf("%w: route=%d capacity=%d", ErrInvalidCapacity, r.Number, r.Capacity)
	}
	if len(r.Roster) > r.Capacity {
		return fmt.Errorf("%w: route=%d roster=%d capacity=%d",
			ErrRosterOverCapacity, r.Number, len(r.Roster), r.Capacity)
	}
	return nil
}

// Staff returns staff members in roster order
func (r *Route) Staff() []Person {
	return r.filter(func(p *Person) bool { return p.IsStaff() })
}

// Students returns students in roster order
func (r *Route) Students() []Person {
	return r.filter(func(p *Person) bool { return p.IsStudent() })
}

func (r *Route) filter(keep func(p *Person) bool) []Person {
	result := make([]Person, 0, len(r.Roster))
	for i := range r.Roster {
		if keep(&r.Roster[i]) {
			result = append(result, r.Roster[i])
		}
	}
	return result
}

// RouteDetail карточка маршрута для администратора
type RouteDetail struct {
	Number     int
	BusNumber  string
	Driver     string
	Capacity   int
	Staff      []Person
	Students   []Person
	Attendance []AttendanceRecord // от новых к старым
}
