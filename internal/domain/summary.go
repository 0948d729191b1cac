package domain

// RouteSummary derived occupancy statistics of one route. Never stored.
type RouteSummary struct {
	Number        int
	BusNumber     string
	Driver        string
	Capacity      int
	StudentsTotal int // Boys + Girls
	Boys          int
	Girls         int
	Staff         int
	Occupied      int // длина ростера, включая студентов без пола
}

// Available returns the number of free seats
func (s *RouteSummary) Available() int {
	free := s.Capacity - s.Occupied
	if free < 0 {
		return 0
	}
	return free
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *RouteSummary) OccupancyRate() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.Occupied) / float64(s.Capacity) * 100
}

// FleetSummary plain sums over all route summaries
type FleetSummary struct {
	Buses    int
	Students int
	Boys     int
	Girls    int
	Staff    int
}
