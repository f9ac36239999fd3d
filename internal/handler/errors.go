package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pkordes/sidequest/internal/domain"
	"github.com/pkordes/sidequest/internal/handler/gen"
)

// sentinels are the domain errors whose wrapped detail is safe to show to clients.
var sentinels = []error{
	domain.ErrValidation,
	domain.ErrNotFound,
	domain.ErrConflict,
	domain.ErrForbidden,
	domain.ErrUnauthorized,
	domain.ErrPreferencesRequired,
}

func errorBody(code, message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}}
}

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "trip not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return errorBody("not_found", message)
}

// notFoundDetail prefers the service's own detail ("no user with that email")
// and falls back to message when the error carries none.
func notFoundDetail(err error, message string) gen.ErrorResponse {
	if detail, ok := sentinelDetail(err); ok {
		return notFoundBody(detail)
	}
	return notFoundBody(message)
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) gen.ErrorResponse {
	return errorBody("validation_error", unwrapMessage(err))
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. missing body).
func requestBody(message string) gen.ErrorResponse {
	return errorBody("validation_error", message)
}

func forbiddenBody(err error) gen.ErrorResponse {
	return errorBody("forbidden", unwrapMessage(err))
}

func conflictBody(message string) gen.ErrorResponse {
	return errorBody("conflict", message)
}

func preferencesRequiredBody() gen.ErrorResponse {
	return errorBody("preferences_required", "complete onboarding first")
}

// sentinelDetail returns the text following the last domain sentinel in err's
// message, e.g. "service.AuthService.Register: validation error: invalid email"
// yields "invalid email". It reports false when no detail follows a sentinel.
func sentinelDetail(err error) (string, bool) {
	msg := err.Error()
	for _, s := range sentinels {
		marker := s.Error() + ": "
		if i := strings.LastIndex(msg, marker); i >= 0 {
			return msg[i+len(marker):], true
		}
	}
	return "", false
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	if detail, ok := sentinelDetail(err); ok {
		return detail
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}

// statusFor maps an error to its HTTP status and error code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, "validation_error"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "conflict"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domain.ErrPreferencesRequired):
		return http.StatusBadRequest, "preferences_required"
	}
	return http.StatusInternalServerError, "internal_error"
}

func writeError(w http.ResponseWriter, status int, body gen.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// RequestErrorHandler answers requests the generated router rejects before
// a handler runs: malformed JSON bodies and unparsable path or query params.
func RequestErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, http.StatusBadRequest, errorBody("bad_request", err.Error()))
}

// NewResponseErrorHandler returns the fallback for errors a handler returned
// instead of a typed response. Domain sentinels keep their status; anything
// else is logged and reported as a bare 500.
func NewResponseErrorHandler(log *slog.Logger) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		status, code := statusFor(err)
		if status == http.StatusInternalServerError {
			log.ErrorContext(r.Context(), "request failed",
				"method", r.Method,
				"path", r.URL.Path,
				"error", err,
			)
			writeError(w, status, errorBody(code, "internal server error"))
			return
		}
		writeError(w, status, errorBody(code, unwrapMessage(err)))
	}
}
