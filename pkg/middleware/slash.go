package middleware

import (
	"net/http"
	"strings"
)

// TrimSlash redirects "/clients/" to "/clients". The root path is left
// alone. The shell's route table matches exact paths, so this keeps the
// canonical form in front of it.
func TrimSlash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) > 1 && strings.HasSuffix(r.URL.Path, "/") {
				redirect(w, r, strings.TrimRight(r.URL.Path, "/"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func redirect(w http.ResponseWriter, r *http.Request, path string) {
	if path == "" {
		path = "/"
	}
	if r.URL.RawQuery != "" {
		path += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, path, http.StatusMovedPermanently)
}
