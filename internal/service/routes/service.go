package routes

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
	"github.com/m04kA/SMC-BusSeating/internal/occupancy"
)

// Service каталог маршрутов и сводка заполненности
type Service struct {
	routeRepo RouteRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса маршрутов
func NewService(routeRepo RouteRepository, logger Logger) *Service {
	return &Service{
		routeRepo: routeRepo,
		logger:    logger,
	}
}

// List возвращает маршруты без ростеров по возрастанию номера
func (s *Service) List(ctx context.Context) ([]domain.Route, error) {
	routes, err := s.routeRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return routes, nil
}

// Overview пересчитывает сводку по всем маршрутам при каждом вызове
func (s *Service) Overview(ctx context.Context) ([]domain.RouteSummary, error) {
	routes, err := s.routeRepo.ListWithRosters(ctx)
	if err != nil {
		s.logger.Error("Overview: repository error: %v", err)
		return nil, fmt.Errorf("%w: Overview - repository error: %v", ErrInternal, err)
	}

	for i := range routes {
		if err := routes[i].Validate(); err != nil {
			// данные в базе нарушают ограничение, но сводку все равно отдаем
			s.logger.Warn("Overview: %v", err)
		}
	}

	summaries := occupancy.Overview(routes)
	s.logger.Info("Overview: %d routes summarized", len(summaries))
	return summaries, nil
}
