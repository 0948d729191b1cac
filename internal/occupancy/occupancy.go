// Package occupancy считает статистику заполненности маршрутов и парка.
// Все функции чистые: результат каждый раз вычисляется из текущего ростера.
package occupancy

import (
	"sort"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
)

// Summarize считает статистику одного маршрута
func Summarize(route domain.Route) domain.RouteSummary {
	summary := domain.RouteSummary{
		Number:    route.Number,
		BusNumber: route.BusNumber,
		Driver:    route.Driver,
		Capacity:  route.Capacity,
		Occupied:  len(route.Roster),
	}

	for i := range route.Roster {
		p := &route.Roster[i]
		switch {
		case p.IsStaff():
			summary.Staff++
		case p.IsStudent() && p.HasGender(domain.GenderMale):
			summary.Boys++
		case p.IsStudent() && p.HasGender(domain.GenderFemale):
			summary.Girls++
		}
	}
	summary.StudentsTotal = summary.Boys + summary.Girls

	return summary
}

// Overview считает статистику всех маршрутов, отсортированную по номеру
func Overview(routes []domain.Route) []domain.RouteSummary {
	summaries := make([]domain.RouteSummary, 0, len(routes))
	for _, route := range routes {
		summaries = append(summaries, Summarize(route))
	}
	return SortSummaries(summaries)
}

// SortSummaries возвращает отсортированную по номеру маршрута копию
func SortSummaries(summaries []domain.RouteSummary) []domain.RouteSummary {
	sorted := make([]domain.RouteSummary, len(summaries))
	copy(sorted, summaries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Number < sorted[j].Number
	})
	return sorted
}

// FleetTotals складывает статистику маршрутов. Порядок входа не влияет на результат.
func FleetTotals(summaries []domain.RouteSummary) domain.FleetSummary {
	var total domain.FleetSummary
	for _, s := range summaries {
		total = Add(total, FromSummary(s))
	}
	return total
}

// FromSummary переводит один маршрут в слагаемое итогов парка
func FromSummary(s domain.RouteSummary) domain.FleetSummary {
	return domain.FleetSummary{
		Buses:    1,
		Students: s.StudentsTotal,
		Boys:     s.Boys,
		Girls:    s.Girls,
		Staff:    s.Staff,
	}
}

// Add складывает два итога покомпонентно
func Add(a, b domain.FleetSummary) domain.FleetSummary {
	return domain.FleetSummary{
		Buses:    a.Buses + b.Buses,
		Students: a.Students + b.Students,
		Boys:     a.Boys + b.Boys,
		Girls:    a.Girls + b.Girls,
		Staff:    a.Staff + b.Staff,
	}
}
