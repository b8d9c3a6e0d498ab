package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"property-showcase/internal/adapters/session"
	"property-showcase/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, map[string]string{"error": message})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// uuidParam разбирает UUID из параметра маршрута
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}

// statusForError сопоставляет доменные ошибки с HTTP-статусами.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrPropertyNotFound),
		errors.Is(err, domain.ErrNoSelection):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrIncompleteContactForm):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrContactFormClosed):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidPropertyType):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrSessionLimitReached):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage скрывает текст внутренних ошибок
func errorMessage(err error) string {
	for _, known := range []error{
		domain.ErrSessionNotFound,
		domain.ErrPropertyNotFound,
		domain.ErrNoSelection,
		domain.ErrInvalidEmail,
		domain.ErrIncompleteContactForm,
		domain.ErrContactFormClosed,
		domain.ErrInvalidPropertyType,
		session.ErrSessionLimitReached,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return "internal error"
}

func writeUseCaseError(w http.ResponseWriter, err error) {
	WriteJSONError(w, statusForError(err), errorMessage(err))
}
