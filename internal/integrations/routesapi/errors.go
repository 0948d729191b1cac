package routesapi

import "errors"

var (
	// ErrTransport возвращается при сетевой ошибке, статусе не 2xx или ответе не в JSON.
	// Текст ошибки содержит тело ответа сервера.
	ErrTransport = errors.New("routesapi client: transport error")

	// ErrRequestFailed возвращается, когда сервер ответил success:false
	ErrRequestFailed = errors.New("routesapi client: request failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("routesapi client: internal error")
)
