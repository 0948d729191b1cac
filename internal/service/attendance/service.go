package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
)

// Service журнал посещаемости маршрутов
type Service struct {
	attendanceRepo AttendanceRepository
	routeRepo      RouteRepository
	publisher      EventPublisher
	metrics        Metrics
	logger         Logger
	now            func() time.Time
}

// NewService создает новый экземпляр сервиса посещаемости
func NewService(
	attendanceRepo AttendanceRepository,
	routeRepo RouteRepository,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		attendanceRepo: attendanceRepo,
		routeRepo:      routeRepo,
		publisher:      publisher,
		metrics:        metrics,
		logger:         logger,
		now:            time.Now,
	}
}

// Append добавляет отметку в конец журнала маршрута. Нулевая дата заменяется
// сегодняшней. Даты не упорядочиваются: журнал хранит порядок добавления.
func (s *Service) Append(ctx context.Context, routeNumber int, date time.Time, count int) (*domain.AttendanceRecord, error) {
	if count < 0 {
		s.logger.Warn("Append: negative count=%d for route=%d", count, routeNumber)
		return nil, fmt.Errorf("%w: count=%d", ErrInvalidAttendance, count)
	}

	exists, err := s.routeRepo.Exists(ctx, routeNumber)
	if err != nil {
		s.logger.Error("Append: failed to check route=%d: %v", routeNumber, err)
		return nil, fmt.Errorf("%w: Append - route lookup: %v", ErrInternal, err)
	}
	if !exists {
		s.logger.Warn("Append: route=%d not found", routeNumber)
		return nil, ErrRouteNotFound
	}

	now := s.now()
	if date.IsZero() {
		date = now
	}
	record := domain.AttendanceRecord{
		Date:  time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Count: count,
	}

	if err := s.attendanceRepo.Append(ctx, routeNumber, record); err != nil {
		s.logger.Error("Append: repository error for route=%d: %v", routeNumber, err)
		return nil, fmt.Errorf("%w: Append - repository error: %v", ErrInternal, err)
	}
	s.metrics.ObserveAttendance(routeNumber)
	s.logger.Info("Append: route=%d date=%s count=%d recorded", routeNumber, record.DateString(), count)

	// запись уже сохранена, ошибка публикации только логируется
	event := domain.AttendanceSubmitted{
		RouteNumber: routeNumber,
		Record:      record,
		SubmittedAt: now.UTC(),
	}
	if err := s.publisher.PublishAttendanceSubmitted(ctx, event); err != nil {
		s.logger.Warn("Append: failed to publish event for route=%d: %v", routeNumber, err)
	}

	return &record, nil
}

// Recent возвращает последние k отметок маршрута, от новых к старым.
// k больше MaxRecentAttendance обрезается.
func (s *Service) Recent(ctx context.Context, routeNumber int, k int) ([]domain.AttendanceRecord, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative, got %d", ErrInvalidInput, k)
	}
	if k > domain.MaxRecentAttendance {
		k = domain.MaxRecentAttendance
	}

	exists, err := s.routeRepo.Exists(ctx, routeNumber)
	if err != nil {
		s.logger.Error("Recent: failed to check route=%d: %v", routeNumber, err)
		return nil, fmt.Errorf("%w: Recent - route lookup: %v", ErrInternal, err)
	}
	if !exists {
		return nil, ErrRouteNotFound
	}

	records, err := s.attendanceRepo.Recent(ctx, routeNumber, k)
	if err != nil {
		s.logger.Error("Recent: repository error for route=%d: %v", routeNumber, err)
		return nil, fmt.Errorf("%w: Recent - repository error: %v", ErrInternal, err)
	}
	if records == nil {
		records = []domain.AttendanceRecord{}
	}
	return records, nil
}
