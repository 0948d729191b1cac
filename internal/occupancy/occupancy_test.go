package occupancy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
	"github.com/m04kA/SMC-BusSeating/pkg/ptr"
)

func rider(role domain.Role, g string) domain.Person {
	p := domain.Person{Role: role}
	if g != "" {
		p.Gender = ptr.Ptr(domain.Gender(g))
	}
	return p
}

func TestSummarizeScenario(t *testing.T) {
	route := domain.Route{
		Number:    12,
		BusNumber: "KA-01-4455",
		Driver:    "Ramesh",
		Capacity:  5,
		Roster: []domain.Person{
			rider(domain.RoleStaff, ""),
			rider(domain.RoleStudent, "female"),
			rider(domain.RoleStudent, "male"),
		},
	}

	got := Summarize(route)

	assert.Equal(t, domain.RouteSummary{
		Number:        12,
		BusNumber:     "KA-01-4455",
		Driver:        "Ramesh",
		Capacity:      5,
		StudentsTotal: 2,
		Boys:          1,
		Girls:         1,
		Staff:         1,
		Occupied:      3,
	}, got)
	assert.Equal(t, 2, got.Available())
	assert.InDelta(t, 60.0, got.OccupancyRate(), 0.001)

	empty := domain.RouteSummary{}
	assert.Zero(t, empty.OccupancyRate())
}

func TestSummarizeUnknownGenderCountsOnlyTowardsOccupancy(t *testing.T) {
	route := domain.Route{Number: 1, Capacity: 4, Roster: []domain.Person{
		rider(domain.RoleStudent, "other"),
		rider(domain.RoleStudent, ""),
		rider(domain.RoleStudent, "male"),
	}}

	got := Summarize(route)

	assert.Equal(t, 1, got.Boys)
	assert.Equal(t, 0, got.Girls)
	assert.Equal(t, 1, got.StudentsTotal)
	assert.Equal(t, 3, got.Occupied)
	assert.Equal(t, 1, got.Available())
}

func TestSummarizeStudentsTotalInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	kinds := []domain.Person{
		rider(domain.RoleStaff, ""),
		rider(domain.RoleStudent, "male"),
		rider(domain.RoleStudent, "female"),
		rider(domain.RoleStudent, "other"),
		rider(domain.RoleStudent, ""),
	}

	for i := 0; i < 200; i++ {
		size := rng.Intn(30)
		route := domain.Route{Number: i, Capacity: 30}
		for j := 0; j < size; j++ {
			route.Roster = append(route.Roster, kinds[rng.Intn(len(kinds))])
		}

		s := Summarize(route)
		assert.Equal(t, s.Boys+s.Girls, s.StudentsTotal)
		assert.Equal(t, size, s.Occupied)
		assert.LessOrEqual(t, s.StudentsTotal+s.Staff, s.Occupied)
	}
}

func TestOverviewSortedRegardlessOfInput(t *testing.T) {
	routes := []domain.Route{
		{Number: 9, Capacity: 10},
		{Number: 2, Capacity: 10},
		{Number: 7, Capacity: 10},
		{Number: 3, Capacity: 10},
	}

	got := Overview(routes)

	numbers := make([]int, len(got))
	for i, s := range got {
		numbers[i] = s.Number
	}
	assert.Equal(t, []int{2, 3, 7, 9}, numbers)

	// сортировка идемпотентна
	assert.Equal(t, got, SortSummaries(got))

	// исходный порядок не меняется
	assert.Equal(t, 9, routes[0].Number)
}

func TestSortSummariesDoesNotMutateInput(t *testing.T) {
	in := []domain.RouteSummary{{Number: 3}, {Number: 1}}

	out := SortSummaries(in)

	assert.Equal(t, 3, in[0].Number)
	assert.Equal(t, 1, out[0].Number)
}

func TestFleetTotalsPermutationInvariant(t *testing.T) {
	summaries := []domain.RouteSummary{
		{Number: 1, StudentsTotal: 3, Boys: 1, Girls: 2, Staff: 1},
		{Number: 2, StudentsTotal: 0, Boys: 0, Girls: 0, Staff: 2},
		{Number: 3, StudentsTotal: 7, Boys: 4, Girls: 3, Staff: 0},
		{Number: 4, StudentsTotal: 5, Boys: 5, Girls: 0, Staff: 1},
	}
	want := domain.FleetSummary{Buses: 4, Students: 15, Boys: 10, Girls: 5, Staff: 4}

	assert.Equal(t, want, FleetTotals(summaries))

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		shuffled := make([]domain.RouteSummary, len(summaries))
		copy(shuffled, summaries)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		assert.Equal(t, want, FleetTotals(shuffled))
	}
}

func TestFleetTotalsFoldIsAssociative(t *testing.T) {
	a := []domain.RouteSummary{{StudentsTotal: 2, Boys: 1, Girls: 1, Staff: 1}}
	b := []domain.RouteSummary{{StudentsTotal: 4, Boys: 4}, {Staff: 3}}

	whole := FleetTotals(append(append([]domain.RouteSummary{}, a...), b...))

	assert.Equal(t, whole, Add(FleetTotals(a), FleetTotals(b)))
	assert.Equal(t, domain.FleetSummary{}, FleetTotals(nil))
}
