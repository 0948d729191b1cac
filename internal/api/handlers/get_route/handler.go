package get_route

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BusSeating/internal/api/handlers"
	getRouteDetail "github.com/m04kA/SMC-BusSeating/internal/usecase/get_route_detail"
)

const (
	msgInvalidRouteNumber = "Invalid route number"
	msgRouteNotFound      = "Route not found"
)

type Handler struct {
	useCase          GetRouteDetailUseCase
	recentAttendance int
	logger           Logger
}

// NewHandler recentAttendance - сколько последних отметок включать в карточку
func NewHandler(useCase GetRouteDetailUseCase, recentAttendance int, logger Logger) *Handler {
	return &Handler{
		useCase:          useCase,
		recentAttendance: recentAttendance,
		logger:           logger,
	}
}

// Handle GET /routes/{number}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(mux.Vars(r)["number"])
	if err != nil {
		h.logger.Warn("GET /routes/{number} - Invalid route number: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRouteNumber)
		return
	}

	detail, err := h.useCase.Execute(r.Context(), &getRouteDetail.Request{
		RouteNumber:     number,
		AttendanceLimit: h.recentAttendance,
	})
	if err != nil {
		switch {
		case errors.Is(err, getRouteDetail.ErrRouteNotFound):
			h.logger.Warn("GET /routes/{number} - Route not found: number=%d", number)
			handlers.RespondNotFound(w, msgRouteNotFound)

		case errors.Is(err, getRouteDetail.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRouteNumber)

		default:
			h.logger.Error("GET /routes/{number} - Failed to get route: number=%d, error=%v", number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, GetRouteResponse{
		Success: true,
		Route:   FromDomainDetail(detail),
	})
}
