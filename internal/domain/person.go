package domain

import "strings"

// Role роль пассажира
type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
)

// IsValid returns true for roles that can authenticate
func (r Role) IsValid() bool {
	for _, valid := range ValidRoles {
		if r == valid {
			return true
		}
	}
	return false
}

// Gender пол студента, используется только для раскладки мест и статистики
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Person represents a student or staff member known to the transport service
type Person struct {
	ID          string
	Name        string
	Email       string
	DateOfBirth string // используется как пароль, никогда не отдается наружу
	Role        Role
	Gender      *Gender
	Paid        *bool // только для студентов
	SeatNumber  *int
}

// IsStudent returns true if the person rides as a student
func (p *Person) IsStudent() bool {
	return p.Role == RoleStudent
}

// IsStaff returns true if the person rides as staff (faculty, coordinators)
func (p *Person) IsStaff() bool {
	return p.Role == RoleStaff
}

// HasGender returns true if the person's gender is exactly g
func (p *Person) HasGender(g Gender) bool {
	return p.Gender != nil && *p.Gender == g
}

// HasPaid returns true only when the fee flag is explicitly true
func (p *Person) HasPaid() bool {
	return p.Paid != nil && *p.Paid
}

// NormalizeEmail приводит email к ключу поиска: без пробелов по краям, в нижнем регистре
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// WithoutDateOfBirth возвращает копию без даты рождения
func (p Person) WithoutDateOfBirth() Person {
	p.DateOfBirth = ""
	return p
}
