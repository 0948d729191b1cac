package get_seat_map

import (
	"github.com/m04kA/SMC-BusSeating/internal/api/handlers"
	getSeatMap "github.com/m04kA/SMC-BusSeating/internal/usecase/get_seat_map"
)

// SeatResponse место на карте
type SeatResponse struct {
	Number   int    `json:"number"`
	Category string `json:"category"`
	Occupant string `json:"occupant,omitempty"`
}

// SeatMapResponse HTTP response model
type SeatMapResponse struct {
	Success    bool                   `json:"success"`
	Route      handlers.RouteResponse `json:"route"`
	Seats      []SeatResponse         `json:"seats"`
	ViewerSeat *int                   `json:"viewerSeat"`
}

func FromUseCaseResponse(resp *getSeatMap.Response) SeatMapResponse {
	seats := make([]SeatResponse, 0, len(resp.Seats))
	for _, s := range resp.Seats {
		seats = append(seats, SeatResponse{
			Number:   s.Number,
			Category: string(s.Category),
			Occupant: s.OccupantName,
		})
	}

	return SeatMapResponse{
		Success:    true,
		Route:      handlers.FromDomainRoute(resp.Route),
		Seats:      seats,
		ViewerSeat: resp.ViewerSeat,
	}
}
