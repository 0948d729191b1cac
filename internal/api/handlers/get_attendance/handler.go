package get_attendance

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BusSeating/internal/api/handlers"
	"github.com/m04kA/SMC-BusSeating/internal/service/attendance"
)

const (
	msgInvalidRouteNumber = "Invalid route number"
	msgInvalidLimit       = "limit must be a non-negative integer"
	msgRouteNotFound      = "Route not found"
)

type Handler struct {
	service      AttendanceService
	defaultLimit int
	logger       Logger
}

func NewHandler(service AttendanceService, defaultLimit int, logger Logger) *Handler {
	return &Handler{
		service:      service,
		defaultLimit: defaultLimit,
		logger:       logger,
	}
}

// Handle GET /routes/{number}/attendance?limit=K
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(mux.Vars(r)["number"])
	if err != nil {
		h.logger.Warn("GET /routes/{number}/attendance - Invalid route number: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRouteNumber)
		return
	}

	limit := h.defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			h.logger.Warn("GET /routes/{number}/attendance - Invalid limit: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
	}

	records, err := h.service.Recent(r.Context(), number, limit)
	if err != nil {
		switch {
		case errors.Is(err, attendance.ErrRouteNotFound):
			handlers.RespondNotFound(w, msgRouteNotFound)

		case errors.Is(err, attendance.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidLimit)

		default:
			h.logger.Error("GET /routes/{number}/attendance - Failed to get attendance: number=%d, error=%v", number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, AttendanceResponse{
		Success:    true,
		Attendance: handlers.FromDomainAttendance(records),
	})
}
