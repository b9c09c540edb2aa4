// Package web provides the console's page routing and rendering
// infrastructure: an ordered route table mapping paths to views, a
// pre-parsed template set that produces views, and helpers for serving
// embedded static assets.
package web

import (
	"errors"
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

var (
	ErrInvalidPath    = errors.New("invalid route path")
	ErrNilView        = errors.New("route view is nil")
	ErrDuplicateRoute = errors.New("duplicate route path")
)

// View is a renderable unit. Any templ.Component is a view.
type View = templ.Component

// Route associates an exact URL path with the view rendered for it.
type Route struct {
	Path  string
	Title string
	View  View
}

// Table is an immutable, ordered set of routes. It is safe for concurrent
// use.
type Table struct {
	routes []Route
}

// NewTable validates routes and keeps them in declaration order. Every path
// must start with "/" and appear at most once.
func NewTable(routes ...Route) (*Table, error) {
	seen := make(map[string]int, len(routes))
	for i, r := range routes {
		if !strings.HasPrefix(r.Path, "/") {
			return nil, fmt.Errorf("route %d: %w: %q", i, ErrInvalidPath, r.Path)
		}
		if r.View == nil {
			return nil, fmt.Errorf("route %s: %w", r.Path, ErrNilView)
		}
		if prev, ok := seen[r.Path]; ok {
			return nil, fmt.Errorf("route %d: %w: %s (first declared at %d)", i, ErrDuplicateRoute, r.Path, prev)
		}
		seen[r.Path] = i
	}

	return &Table{routes: append([]Route(nil), routes...)}, nil
}

// Match returns the first route whose path equals path.
func (t *Table) Match(path string) (Route, bool) {
	for _, r := range t.routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// Resolution is the outcome of resolving a navigation against a table.
type Resolution struct {
	Navigation Navigation
	Route      Route
	Found      bool
}

func (t *Table) Resolve(nav Navigation) Resolution {
	route, ok := t.Match(nav.Path)
	return Resolution{
		Navigation: nav,
		Route:      route,
		Found:      ok,
	}
}

// Routes returns a copy of the declared routes in order.
func (t *Table) Routes() []Route {
	return append([]Route(nil), t.routes...)
}
