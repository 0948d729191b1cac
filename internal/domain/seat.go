package domain

// SeatCategory категория места для отображения
type SeatCategory string

const (
	SeatFaculty   SeatCategory = "faculty"
	SeatGirl      SeatCategory = "girl"
	SeatBoy       SeatCategory = "boy"
	SeatViewer    SeatCategory = "viewer"
	SeatOccupied  SeatCategory = "occupied" // студент без указанного пола
	SeatAvailable SeatCategory = "available"
)

// Seat represents one classified seat of a route
type Seat struct {
	Number       int
	Category     SeatCategory
	OccupantName string // пусто для свободных мест
}

// IsViewer returns true if the seat belongs to the person looking at the map
func (s *Seat) IsViewer() bool {
	return s.Category == SeatViewer
}
