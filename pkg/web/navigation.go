package web

import (
	"context"
	"net/http"
	"path"
)

// Navigation is the current location within the shell. Path is relative to
// BasePath; the shell mounted at "/app" sees "/app/clients" as Path
// "/clients".
type Navigation struct {
	BasePath string
	Path     string
}

// NavigationFrom reads the navigation from a request whose path has
// already had the base path removed.
func NavigationFrom(r *http.Request, basePath string) Navigation {
	p := r.URL.Path
	if p == "" {
		p = "/"
	}
	return Navigation{BasePath: basePath, Path: p}
}

// URL returns the absolute path for a shell-relative target.
func (n Navigation) URL(target string) string {
	if n.BasePath == "" {
		return target
	}
	if target == "/" {
		return n.BasePath
	}
	return path.Join(n.BasePath, target)
}

// Active reports whether target is the current path.
func (n Navigation) Active(target string) bool {
	return n.Path == target
}

type navigationKey struct{}

func WithNavigation(ctx context.Context, nav Navigation) context.Context {
	return context.WithValue(ctx, navigationKey{}, nav)
}

// NavigationFromContext returns the navigation stored by WithNavigation and
// whether one was present.
func NavigationFromContext(ctx context.Context) (Navigation, bool) {
	nav, ok := ctx.Value(navigationKey{}).(Navigation)
	return nav, ok
}
