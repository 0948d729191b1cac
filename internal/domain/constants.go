package domain

import "time"

// Значения по умолчанию
const (
	DefaultCapacity         = 50
	DefaultRecentAttendance = 6
	DefaultPollInterval     = 8 * time.Second
)

// Ограничения бизнес-валидации
const (
	MaxCapacity         = 200
	MaxRecentAttendance = 100
)

// DateFormat формат календарной даты отметки посещаемости
const DateFormat = "2006-01-02" // YYYY-MM-DD

// ValidRoles роли, под которыми можно войти
var ValidRoles = []Role{
	RoleStudent,
	RoleStaff,
}
