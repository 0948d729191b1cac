package get_overview

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

// Handle GET /routes/admin/overview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.Overview(r.Context())
	if err != nil {
		h.logger.Error("GET /routes/admin/overview - Failed to build overview: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := OverviewResponse{
		Success:  true,
		Overview: make([]handlers.RouteSummaryResponse, 0, len(summaries)),
	}
	for _, s := range summaries {
		resp.Overview = append(resp.Overview, handlers.FromDomainSummary(s))
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
