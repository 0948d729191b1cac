package attendance

import "errors"

var (
	// ErrInvalidAttendance возвращается при отрицательном количестве пассажиров
	ErrInvalidAttendance = errors.New("attendance count must be a non-negative integer")

	// ErrRouteNotFound возвращается, когда маршрут не существует
	ErrRouteNotFound = errors.New("route not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("attendance: internal error")
)
