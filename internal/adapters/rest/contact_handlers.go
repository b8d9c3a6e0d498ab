package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"property-showcase/internal/contextkeys"
	"property-showcase/internal/core/domain"
	"property-showcase/internal/core/port"
	"property-showcase/internal/core/port/usecases_port"
)

type ContactHandler struct {
	contactUC usecases_port.ContactAgentUseCase
}

func NewContactHandler(contactUC usecases_port.ContactAgentUseCase) *ContactHandler {
	return &ContactHandler{contactUC: contactUC}
}

// Open обрабатывает POST /api/v1/sessions/{sessionID}/contact/open
func (h *ContactHandler) Open(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuidParam(r, "sessionID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid session ID format")
		return
	}
	form, err := h.contactUC.Open(r.Context(), sessionID)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toContactFormResponse(form))
}

// Submit обрабатывает POST /api/v1/sessions/{sessionID}/contact.
// При ошибке валидации возвращает причину и сохраненное состояние формы.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	sessionID, err := uuidParam(r, "sessionID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid session ID format")
		return
	}

	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	form, err := h.contactUC.Submit(r.Context(), sessionID, req.Name, req.Email, req.Message)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidEmail) || errors.Is(err, domain.ErrIncompleteContactForm) {
			RespondWithJSON(w, http.StatusUnprocessableEntity, ContactErrorResponse{
				Error: errorMessage(err),
				Form:  toContactFormResponse(form),
			})
			return
		}
		writeUseCaseError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toContactFormResponse(form))
}

// Cancel обрабатывает DELETE /api/v1/sessions/{sessionID}/contact
func (h *ContactHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuidParam(r, "sessionID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid session ID format")
		return
	}
	form, err := h.contactUC.Cancel(r.Context(), sessionID)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toContactFormResponse(form))
}
