package middleware

import "net/http"

// AdminToken guards admin endpoints with the configured static access
// token, accepted as a ?token= query parameter or X-Admin-Token header.
func AdminToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.URL.Query().Get("token")
			if got == "" {
				got = r.Header.Get("X-Admin-Token")
			}
			if got == "" || got != token {
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
