package submit_attendance

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BusSeating/internal/api/handlers"
	"github.com/m04kA/SMC-BusSeating/internal/service/attendance"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidRouteNumber = "Invalid route number"
	msgInvalidDate        = "Invalid date, expected YYYY-MM-DD"
	msgInvalidCount       = "count must be a non-negative integer"
	msgRouteNotFound      = "Route not found"
)

type Handler struct {
	service AttendanceService
	logger  Logger
}

func NewHandler(service AttendanceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /routes/{number}/attendance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(mux.Vars(r)["number"])
	if err != nil {
		h.logger.Warn("POST /routes/{number}/attendance - Invalid route number: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRouteNumber)
		return
	}

	var req SubmitAttendanceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /routes/{number}/attendance - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.Count == nil {
		handlers.RespondBadRequest(w, msgInvalidCount)
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		h.logger.Warn("POST /routes/{number}/attendance - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	record, err := h.service.Append(r.Context(), number, date, *req.Count)
	if err != nil {
		switch {
		case errors.Is(err, attendance.ErrInvalidAttendance):
			handlers.RespondBadRequest(w, msgInvalidCount)

		case errors.Is(err, attendance.ErrRouteNotFound):
			h.logger.Warn("POST /routes/{number}/attendance - Route not found: number=%d", number)
			handlers.RespondNotFound(w, msgRouteNotFound)

		default:
			h.logger.Error("POST /routes/{number}/attendance - Failed to append: number=%d, error=%v", number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /routes/{number}/attendance - Recorded: number=%d, date=%s, count=%d",
		number, record.DateString(), record.Count)
	handlers.RespondJSON(w, http.StatusCreated, SubmitAttendanceResponse{
		Success: true,
		Record:  handlers.AttendanceRecordResponse{Date: record.DateString(), Count: record.Count},
	})
}
