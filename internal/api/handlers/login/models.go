package login

import "github.com/m04kA/SMC-BusSeating/internal/api/handlers"

// LoginRequest HTTP request model. Пароль - дата рождения в формате YYYY-MM-DD.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Success bool                    `json:"success"`
	User    handlers.PersonResponse `json:"user"`
}
