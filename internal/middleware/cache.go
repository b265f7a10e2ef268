// Package middleware holds HTTP middleware shared by every route.
package middleware

import (
	"fmt"
	"net/http"
	"time"
)

// CacheControl sets a max-age cache header on GET responses. Writes pass
// through untouched.
func CacheControl(maxAge time.Duration) func(http.Handler) http.Handler {
	value := fmt.Sprintf("max-age=%d", int(maxAge.Seconds()))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet {
				w.Header().Set("Cache-Control", value)
			}
			next.ServeHTTP(w, r)
		})
	}
}
