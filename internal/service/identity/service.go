package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
	personRepo "github.com/m04kA/SMC-BusSeating/internal/infra/storage/person"
)

// Service проверяет учетные данные студентов и сотрудников
type Service struct {
	personRepo PersonRepository
	metrics    Metrics
	logger     Logger
}

// NewService создает новый экземпляр сервиса идентификации
func NewService(personRepo PersonRepository, metrics Metrics, logger Logger) *Service {
	return &Service{
		personRepo: personRepo,
		metrics:    metrics,
		logger:     logger,
	}
}

// Authenticate ищет человека по роли и email и сверяет пароль с датой рождения.
// Оплата проверяется только после совпадения учетных данных, чтобы не раскрывать,
// существует ли аккаунт. Возвращает человека без даты рождения.
func (s *Service) Authenticate(ctx context.Context, email, password string, role domain.Role) (*domain.Person, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" || role == "" {
		s.metrics.ObserveLogin(OutcomeValidation)
		return nil, ErrValidation
	}
	if !role.IsValid() {
		s.metrics.ObserveLogin(OutcomeValidation)
		return nil, fmt.Errorf("%w: %w", ErrValidation, ErrInvalidRole)
	}

	person, err := s.personRepo.FindByRoleAndEmail(ctx, role, email)
	if err != nil {
		if errors.Is(err, personRepo.ErrPersonNotFound) {
			s.logger.Warn("Authenticate: no %s with email=%s", role, email)
			s.metrics.ObserveLogin(OutcomeInvalidCredentials)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Authenticate: repository error for email=%s: %v", email, err)
		s.metrics.ObserveLogin(OutcomeError)
		return nil, fmt.Errorf("%w: Authenticate - repository error: %v", ErrInternal, err)
	}

	if person.DateOfBirth != password {
		s.logger.Warn("Authenticate: password mismatch for person id=%s", person.ID)
		s.metrics.ObserveLogin(OutcomeInvalidCredentials)
		return nil, ErrInvalidCredentials
	}

	if person.IsStudent() && !person.HasPaid() {
		s.logger.Info("Authenticate: student id=%s has not paid the bus fee", person.ID)
		s.metrics.ObserveLogin(OutcomeUnpaid)
		return nil, ErrUnpaidFee
	}

	s.logger.Info("Authenticate: %s id=%s logged in", person.Role, person.ID)
	s.metrics.ObserveLogin(OutcomeSuccess)

	result := person.WithoutDateOfBirth()
	return &result, nil
}
