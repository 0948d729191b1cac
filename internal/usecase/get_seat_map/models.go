package get_seat_map

import "github.com/m04kA/SMC-BusSeating/internal/domain"

// Request модель запроса карты мест
type Request struct {
	RouteNumber int    // номер маршрута
	ViewerID    string // ID смотрящего; пусто - никого не выделять
}

// Response карта мест маршрута
type Response struct {
	Route      domain.Route  // маршрут без ростера
	Seats      []domain.Seat // места 1..capacity
	ViewerSeat *int          // nil, если смотрящего нет в ростере
}
