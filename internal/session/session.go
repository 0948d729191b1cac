// Package session хранит контекст вошедшего пользователя на стороне клиента.
// Серверного токена нет: сессия живет, пока жив процесс клиента.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
)

var (
	// ErrLoginFailed возвращается, когда сервер отклонил вход
	ErrLoginFailed = errors.New("session: login failed")

	// ErrClosed возвращается при использовании закрытой сессии
	ErrClosed = errors.New("session: closed")
)

// Authenticator выполняет вход, обычно routesapi.Client
type Authenticator interface {
	Login(ctx context.Context, email, password string, role domain.Role) (*domain.Person, error)
}

// Session данные вошедшего пользователя и ресурсы, которые нужно освободить при выходе
type Session struct {
	PersonID string
	Name     string
	Role     domain.Role

	mu      sync.Mutex
	closers []func()
	closed  bool
}

// Login входит и создает сессию
func Login(ctx context.Context, auth Authenticator, email, password string, role domain.Role) (*Session, error) {
	person, err := auth.Login(ctx, email, password, role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}

	return &Session{
		PersonID: person.ID,
		Name:     person.Name,
		Role:     person.Role,
	}, nil
}

// IsStaff сотрудникам доступна сводка по маршрутам
func (s *Session) IsStaff() bool {
	return s.Role == domain.RoleStaff
}

// Attach регистрирует функцию освобождения ресурса; на закрытой сессии вызывает её сразу
func (s *Session) Attach(closer func()) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		closer()
		return ErrClosed
	}
	s.closers = append(s.closers, closer)
	s.mu.Unlock()
	return nil
}

// Close освобождает ресурсы в обратном порядке. Повторный вызов ничего не делает.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	closers := s.closers
	s.closers = nil
	s.mu.Unlock()

	for i := len(closers) - 1; i >= 0; i-- {
		closers[i]()
	}
}

// Active false после Close
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed
}
