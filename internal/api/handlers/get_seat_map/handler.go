package get_seat_map

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BusSeating/internal/api/handlers"
	getSeatMap "github.com/m04kA/SMC-BusSeating/internal/usecase/get_seat_map"
)

const (
	msgInvalidRouteNumber = "Invalid route number"
	msgRouteNotFound      = "Route not found"
	msgUnpaidFee          = "Pay the bus fees to access seat"
)

type Handler struct {
	useCase GetSeatMapUseCase
	logger  Logger
}

func NewHandler(useCase GetSeatMapUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /routes/{number}/seats?viewerId=ID
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(mux.Vars(r)["number"])
	if err != nil {
		h.logger.Warn("GET /routes/{number}/seats - Invalid route number: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRouteNumber)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &getSeatMap.Request{
		RouteNumber: number,
		ViewerID:    r.URL.Query().Get("viewerId"),
	})
	if err != nil {
		switch {
		case errors.Is(err, getSeatMap.ErrRouteNotFound):
			handlers.RespondNotFound(w, msgRouteNotFound)

		case errors.Is(err, getSeatMap.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRouteNumber)

		case errors.Is(err, getSeatMap.ErrUnpaidFee):
			handlers.RespondForbidden(w, msgUnpaidFee)

		default:
			h.logger.Error("GET /routes/{number}/seats - Failed to build seat map: number=%d, error=%v", number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
