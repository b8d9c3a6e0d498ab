package rest

import (
	"net/http"
	"property-showcase/internal/contextkeys"
	"property-showcase/internal/core/port"
	"property-showcase/internal/core/port/usecases_port"
)

// PropertyHandler обслуживает экран списка и детальный экран.
type PropertyHandler struct {
	browseUC    usecases_port.BrowsePropertiesUseCase
	selectionUC usecases_port.SelectionUseCase
}

func NewPropertyHandler(browseUC usecases_port.BrowsePropertiesUseCase, selectionUC usecases_port.SelectionUseCase) *PropertyHandler {
	return &PropertyHandler{browseUC: browseUC, selectionUC: selectionUC}
}

// ListFiltered обрабатывает GET /api/v1/sessions/{sessionID}/properties
func (h *PropertyHandler) ListFiltered(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuidParam(r, "sessionID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid session ID format")
		return
	}
	view, err := h.browseUC.ListFiltered(r.Context(), sessionID)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toListResponse(view))
}

// ListAll обрабатывает GET /api/v1/sessions/{sessionID}/properties/all
func (h *PropertyHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuidParam(r, "sessionID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid session ID format")
		return
	}
	view, err := h.browseUC.ListAll(r.Context(), sessionID)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toListResponse(view))
}

// Select обрабатывает PUT /api/v1/sessions/{sessionID}/selection/{propertyID}
func (h *PropertyHandler) Select(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	sessionID, err := uuidParam(r, "sessionID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid session ID format")
		return
	}
	propertyID, err := uuidParam(r, "propertyID")
	if err != nil {
		logger.Warn("Invalid property ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return
	}

	view, err := h.selectionUC.Select(r.Context(), sessionID, propertyID)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toDetailsResponse(view))
}

// Current обрабатывает GET /api/v1/sessions/{sessionID}/selection
func (h *PropertyHandler) Current(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuidParam(r, "sessionID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid session ID format")
		return
	}
	view, err := h.selectionUC.Current(r.Context(), sessionID)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toDetailsResponse(view))
}

// ClearSelection обрабатывает DELETE /api/v1/sessions/{sessionID}/selection
func (h *PropertyHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuidParam(r, "sessionID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid session ID format")
		return
	}
	if err := h.selectionUC.Clear(r.Context(), sessionID); err != nil {
		writeUseCaseError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
