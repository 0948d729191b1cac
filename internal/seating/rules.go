package seating

import "github.com/m04kA/SMC-BusSeating/internal/domain"

// seatRule одно правило классификации места. Правила упорядочены по приоритету,
// применяется первое подходящее.
type seatRule struct {
	category domain.SeatCategory
	matches  func(occupant *domain.Person, isViewer bool) bool
}

// rules таблица приоритетов: viewer > faculty > girl > boy > occupied > available
var rules = []seatRule{
	{
		category: domain.SeatViewer,
		matches: func(_ *domain.Person, isViewer bool) bool {
			return isViewer
		},
	},
	{
		category: domain.SeatFaculty,
		matches: func(p *domain.Person, _ bool) bool {
			return p != nil && p.IsStaff()
		},
	},
	{
		category: domain.SeatGirl,
		matches: func(p *domain.Person, _ bool) bool {
			return p != nil && p.IsStudent() && p.HasGender(domain.GenderFemale)
		},
	},
	{
		category: domain.SeatBoy,
		matches: func(p *domain.Person, _ bool) bool {
			return p != nil && p.IsStudent() && p.HasGender(domain.GenderMale)
		},
	},
	{
		category: domain.SeatOccupied,
		matches: func(p *domain.Person, _ bool) bool {
			return p != nil
		},
	},
	{
		category: domain.SeatAvailable,
		matches: func(*domain.Person, bool) bool {
			return true
		},
	},
}

// categorize прогоняет место через таблицу правил
func categorize(occupant *domain.Person, isViewer bool) domain.SeatCategory {
	for _, rule := range rules {
		if rule.matches(occupant, isViewer) {
			return rule.category
		}
	}
	return domain.SeatAvailable
}
