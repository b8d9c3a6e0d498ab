package rest

import (
	"encoding/json"
	"net/http"
	"property-showcase/internal/contextkeys"
	"property-showcase/internal/core/domain"
	"property-showcase/internal/core/port"
	"property-showcase/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// FilterHandler обслуживает экран фильтров.
type FilterHandler struct {
	browseUC           usecases_port.BrowsePropertiesUseCase
	updateFiltersUC    usecases_port.UpdateFiltersUseCase
	getFilterOptionsUC usecases_port.GetFilterOptionsUseCase
}

func NewFilterHandler(browseUC usecases_port.BrowsePropertiesUseCase,
	updateFiltersUC usecases_port.UpdateFiltersUseCase,
	getFilterOptionsUC usecases_port.GetFilterOptionsUseCase) *FilterHandler {
	return &FilterHandler{
		browseUC:           browseUC,
		updateFiltersUC:    updateFiltersUC,
		getFilterOptionsUC: getFilterOptionsUC,
	}
}

// GetFilters обрабатывает GET /api/v1/sessions/{sessionID}/filters
func (h *FilterHandler) GetFilters(w http.ResponseWriter, r *http.Request) {
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
	RespondWithJSON(w, http.StatusOK, toCriteriaResponse(view.Criteria))
}

// PatchFilters обрабатывает PATCH /api/v1/sessions/{sessionID}/filters
func (h *FilterHandler) PatchFilters(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	sessionID, err := uuidParam(r, "sessionID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid session ID format")
		return
	}

	var req PatchFiltersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	update := domain.FilterUpdate{
		Reset:            req.Reset,
		SearchText:       req.SearchText,
		PriceLower:       req.PriceLower,
		PriceUpper:       req.PriceUpper,
		MinBedrooms:      req.MinBedrooms,
		MinBathrooms:     req.MinBathrooms,
		MinSquareFootage: req.MinSquareFootage,
	}
	for _, raw := range req.ToggleTypes {
		t, err := domain.ParsePropertyType(raw)
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		update.ToggleTypes = append(update.ToggleTypes, t)
	}

	h.update(w, r, sessionID, update)
}

// ToggleType обрабатывает POST /api/v1/sessions/{sessionID}/filters/types/{type}
func (h *FilterHandler) ToggleType(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuidParam(r, "sessionID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid session ID format")
		return
	}
	t, err := domain.ParsePropertyType(chi.URLParam(r, "type"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.update(w, r, sessionID, domain.FilterUpdate{ToggleTypes: []domain.PropertyType{t}})
}

// ResetFilters обрабатывает DELETE /api/v1/sessions/{sessionID}/filters
func (h *FilterHandler) ResetFilters(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuidParam(r, "sessionID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid session ID format")
		return
	}
	h.update(w, r, sessionID, domain.FilterUpdate{Reset: true})
}

func (h *FilterHandler) update(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID, update domain.FilterUpdate) {
	view, err := h.updateFiltersUC.Execute(r.Context(), sessionID, update)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toListResponse(view))
}

// GetFilterOptions обрабатывает GET /api/v1/filters/options
func (h *FilterHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.getFilterOptionsUC.Execute(r.Context())
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to get filter options")
		return
	}
	RespondWithJSON(w, http.StatusOK, toFilterOptionsResponse(options))
}
