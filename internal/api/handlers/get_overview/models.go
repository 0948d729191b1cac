package get_overview

import "github.com/m04kA/SMC-BusSeating/internal/api/handlers"

// OverviewResponse HTTP response model
type OverviewResponse struct {
	Success  bool                            `json:"success"`
	Overview []handlers.RouteSummaryResponse `json:"overview"`
}
