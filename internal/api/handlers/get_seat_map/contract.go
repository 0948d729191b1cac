package get_seat_map

import (
	"context"

	getSeatMap "github.com/m04kA/SMC-BusSeating/internal/usecase/get_seat_map"
)

type GetSeatMapUseCase interface {
	Execute(ctx context.Context, req *getSeatMap.Request) (*getSeatMap.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
