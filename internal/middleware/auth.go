package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/sidequest/internal/auth"
)

// TokenParser verifies a bearer token and returns the user id it was issued for.
type TokenParser interface {
	Parse(token string) (uuid.UUID, error)
}

// NewAuthenticator returns a middleware that requires a valid
// "Authorization: Bearer <token>" header on every request except those whose
// path exactly matches one of publicPaths. The user id is stored in the
// request context, where handlers read it with auth.UserIDFromContext.
// Rejected requests get 401 with the API's JSON error body.
func NewAuthenticator(parser TokenParser, publicPaths ...string) func(http.Handler) http.Handler {
	public := make(map[string]struct{}, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := public[r.URL.Path]; ok || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				writeUnauthorized(w, "missing bearer token")
				return
			}
			id, err := parser.Parse(token)
			if err != nil {
				writeUnauthorized(w, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), id)))
		})
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="sidequest"`)
	writeError(w, http.StatusUnauthorized, "unauthorized", message)
}
