package list_routes

import (
	"net/http"

	"github.com/m04kA/SMC-BusSeating/internal/api/handlers"
)

type Handler struct {
	service RouteService
	logger  Logger
}

func NewHandler(service RouteService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /routes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	routes, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /routes - Failed to list routes: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := ListRoutesResponse{
		Success: true,
		Routes:  make([]handlers.RouteResponse, 0, len(routes)),
	}
	for _, route := range routes {
		resp.Routes = append(resp.Routes, handlers.FromDomainRoute(route))
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
