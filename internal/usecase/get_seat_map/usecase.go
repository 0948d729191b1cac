package get_seat_map

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
	routeRepo "github.com/m04kA/SMC-BusSeating/internal/infra/storage/route"
	"github.com/m04kA/SMC-BusSeating/internal/seating"
)

// UseCase use case для построения карты мест маршрута
type UseCase struct {
	routeRepo RouteRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(routeRepo RouteRepository, logger Logger) *UseCase {
	return &UseCase{
		routeRepo: routeRepo,
		logger:    logger,
	}
}

// Execute выполняет use case построения карты мест
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSeatMap: route=%d, viewer=%q", req.RouteNumber, req.ViewerID)

	if req.RouteNumber <= 0 {
		uc.logger.Warn("GetSeatMap: invalid route number=%d", req.RouteNumber)
		return nil, fmt.Errorf("%w: route number must be positive", ErrInvalidInput)
	}

	route, err := uc.routeRepo.GetByNumber(ctx, req.RouteNumber)
	if err != nil {
		if errors.Is(err, routeRepo.ErrRouteNotFound) {
			uc.logger.Warn("GetSeatMap: route=%d not found", req.RouteNumber)
			return nil, ErrRouteNotFound
		}
		uc.logger.Error("GetSeatMap: failed to get route=%d: %v", req.RouteNumber, err)
		return nil, fmt.Errorf("%w: failed to get route: %v", ErrInternal, err)
	}

	// место видит только тот, кто прошел бы вход: неоплативший студент получает отказ
	if viewer := findRider(route, req.ViewerID); viewer != nil && viewer.IsStudent() && !viewer.HasPaid() {
		uc.logger.Warn("GetSeatMap: route=%d viewer=%q has not paid the bus fee", req.RouteNumber, req.ViewerID)
		return nil, ErrUnpaidFee
	}

	seats, err := seating.Classify(*route, req.ViewerID)
	if err != nil {
		// ростер в базе не помещается в автобус
		uc.logger.Error("GetSeatMap: failed to classify route=%d: %v", req.RouteNumber, err)
		return nil, fmt.Errorf("%w: failed to classify seats: %v", ErrInternal, err)
	}

	resp := &Response{Seats: seats}
	resp.Route = *route
	resp.Route.Roster = nil
	if number, ok := seating.ViewerSeat(seats); ok {
		resp.ViewerSeat = &number
	}

	return resp, nil
}

func findRider(route *domain.Route, id string) *domain.Person {
	if id == "" {
		return nil
	}
	for i := range route.Roster {
		if route.Roster[i].ID == id {
			return &route.Roster[i]
		}
	}
	return nil
}
