package middleware

import (
	"net/http"
	"strings"
)

// LowerPath lower-cases the request path before routing so /Movies/Edit/3
// and /movies/edit/3 reach the same route. It must run as router-level
// middleware (chi Mux.Use) to take effect before matching.
func LowerPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lower := strings.ToLower(r.URL.Path)
		if lower == r.URL.Path {
			next.ServeHTTP(w, r)
			return
		}

		u := *r.URL
		u.Path = lower
		u.RawPath = ""

		r2 := new(http.Request)
		*r2 = *r
		r2.URL = &u
		next.ServeHTTP(w, r2)
	})
}
