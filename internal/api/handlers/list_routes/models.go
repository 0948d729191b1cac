package list_routes

import "github.com/m04kA/SMC-BusSeating/internal/api/handlers"

// ListRoutesResponse HTTP response model
type ListRoutesResponse struct {
	Success bool                     `json:"success"`
	Routes  []handlers.RouteResponse `json:"routes"`
}
