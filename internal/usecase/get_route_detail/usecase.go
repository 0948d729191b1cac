package get_route_detail

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
	routeRepo "github.com/m04kA/SMC-BusSeating/internal/infra/storage/route"
)

// UseCase use case для получения карточки маршрута с ростером и посещаемостью
type UseCase struct {
	routeRepo  RouteRepository
	attendance AttendanceLedger
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(routeRepo RouteRepository, attendance AttendanceLedger, logger Logger) *UseCase {
	return &UseCase{
		routeRepo:  routeRepo,
		attendance: attendance,
		logger:     logger,
	}
}

// Execute выполняет use case получения карточки маршрута
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.RouteDetail, error) {
	uc.logger.Info("GetRouteDetail: route=%d, attendanceLimit=%d", req.RouteNumber, req.AttendanceLimit)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetRouteDetail: validation failed: %v", err)
		return nil, err
	}

	// 2. Маршрут вместе с ростером
	route, err := uc.routeRepo.GetByNumber(ctx, req.RouteNumber)
	if err != nil {
		if errors.Is(err, routeRepo.ErrRouteNotFound) {
			uc.logger.Warn("GetRouteDetail: route=%d not found", req.RouteNumber)
			return nil, ErrRouteNotFound
		}
		uc.logger.Error("GetRouteDetail: failed to get route=%d: %v", req.RouteNumber, err)
		return nil, fmt.Errorf("%w: failed to get route: %v", ErrInternal, err)
	}

	// 3. Последние отметки, от новых к старым
	records, err := uc.attendance.Recent(ctx, req.RouteNumber, req.AttendanceLimit)
	if err != nil {
		uc.logger.Error("GetRouteDetail: failed to get attendance for route=%d: %v", req.RouteNumber, err)
		return nil, fmt.Errorf("%w: failed to get attendance: %v", ErrInternal, err)
	}

	return &domain.RouteDetail{
		Number:     route.Number,
		BusNumber:  route.BusNumber,
		Driver:     route.Driver,
		Capacity:   route.Capacity,
		Staff:      route.Staff(),
		Students:   route.Students(),
		Attendance: records,
	}, nil
}
