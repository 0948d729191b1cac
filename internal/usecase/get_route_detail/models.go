package get_route_detail

// Request модель запроса карточки маршрута
type Request struct {
	RouteNumber     int // номер маршрута
	AttendanceLimit int // сколько последних отметок вернуть
}
