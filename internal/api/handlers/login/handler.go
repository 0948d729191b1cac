package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BusSeating/internal/api/handlers"
	"github.com/m04kA/SMC-BusSeating/internal/domain"
	"github.com/m04kA/SMC-BusSeating/internal/service/identity"
)

const msgInvalidRequestBody = "Invalid request body"

type Handler struct {
	service IdentityService
	logger  Logger
}

func NewHandler(service IdentityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	person, err := h.service.Authenticate(r.Context(), req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrInvalidRole):
			handlers.RespondBadRequest(w, identity.ErrInvalidRole.Error())

		case errors.Is(err, identity.ErrValidation):
			handlers.RespondBadRequest(w, identity.ErrValidation.Error())

		case errors.Is(err, identity.ErrInvalidCredentials):
			handlers.RespondUnauthorized(w, identity.ErrInvalidCredentials.Error())

		case errors.Is(err, identity.ErrUnpaidFee):
			handlers.RespondForbidden(w, identity.ErrUnpaidFee.Error())

		default:
			h.logger.Error("POST /auth/login - Failed to authenticate: role=%s, error=%v", req.Role, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - Logged in: id=%s, role=%s", person.ID, person.Role)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		Success: true,
		User:    handlers.FromDomainPerson(*person),
	})
}
