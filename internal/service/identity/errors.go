package identity

import "errors"

var (
	// ErrValidation возвращается, когда не заполнены обязательные поля или роль неизвестна
	ErrValidation = errors.New("email, password (DOB) and role are required")

	// ErrInvalidRole уточняет ErrValidation для неизвестной роли
	ErrInvalidRole = errors.New(`role must be "student" or "staff"`)

	// ErrInvalidCredentials возвращается, когда человек не найден или дата рождения не совпала
	ErrInvalidCredentials = errors.New("Invalid credentials")

	// ErrUnpaidFee возвращается студенту, который не оплатил проезд
	ErrUnpaidFee = errors.New("Pay the bus fees to access seat")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("identity: internal error")
)

// Исходы входа для метрик
const (
	OutcomeSuccess            = "success"
	OutcomeValidation         = "validation"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeUnpaid             = "unpaid"
	OutcomeError              = "error"
)
