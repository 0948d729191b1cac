package get_route

import (
	"context"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
	getRouteDetail "github.com/m04kA/SMC-BusSeating/internal/usecase/get_route_detail"
)

type GetRouteDetailUseCase interface {
	Execute(ctx context.Context, req *getRouteDetail.Request) (*domain.RouteDetail, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
