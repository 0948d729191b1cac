package rabbitmq

import "errors"

var (
	// ErrConnect возвращается, когда не удалось подключиться или объявить exchange
	ErrConnect = errors.New("rabbitmq: connect failed")

	// ErrPublish возвращается при ошибке публикации или отсутствии подтверждения
	ErrPublish = errors.New("rabbitmq: publish failed")
)
