package rest

import (
	"net/http"
	"property-showcase/internal/contextkeys"
	"property-showcase/internal/core/port/usecases_port"
)

type SessionHandler struct {
	openSessionUC  usecases_port.OpenSessionUseCase
	closeSessionUC usecases_port.CloseSessionUseCase
}

func NewSessionHandler(openSessionUC usecases_port.OpenSessionUseCase, closeSessionUC usecases_port.CloseSessionUseCase) *SessionHandler {
	return &SessionHandler{openSessionUC: openSessionUC, closeSessionUC: closeSessionUC}
}

// OpenSession обрабатывает POST /api/v1/sessions
func (h *SessionHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	id, err := h.openSessionUC.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, SessionResponse{SessionID: id.String()})
}

// CloseSession обрабатывает DELETE /api/v1/sessions/{sessionID}
func (h *SessionHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuidParam(r, "sessionID")
	if err != nil {
		contextkeys.LoggerFromContext(r.Context()).Debug("Invalid session ID format", nil)
		WriteJSONError(w, http.StatusBadRequest, "Invalid session ID format")
		return
	}
	if err := h.closeSessionUC.Execute(r.Context(), sessionID); err != nil {
		writeUseCaseError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
