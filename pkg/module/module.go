// Package module mounts self-contained HTTP handlers under single-segment
// URL prefixes, each with its own middleware stack.
package module

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JaimeStill/vector2/pkg/middleware"
)

// Module is a handler mounted at Prefix. The handler sees request paths with
// the prefix removed.
type Module struct {
	prefix     string
	handler    http.Handler
	middleware middleware.System
}

// New creates a module. It panics if prefix is not a single path segment
// such as "/app"; prefixes are fixed at startup and a bad one is a
// programming error.
func New(prefix string, handler http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix:     prefix,
		handler:    handler,
		middleware: middleware.New(),
	}
}

func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends mw to the module's middleware stack.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware.Use(mw)
}

// Handler returns the module handler wrapped in its middleware, without
// prefix handling.
func (m *Module) Handler() http.Handler {
	return m.middleware.Apply(m.handler)
}

// Serve runs the middleware against the full request path, then strips the
// prefix before calling the module handler.
func (m *Module) Serve(w http.ResponseWriter, r *http.Request) {
	m.middleware.Apply(http.HandlerFunc(m.strip)).ServeHTTP(w, r)
}

func (m *Module) strip(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, m.prefix)
	if path == "" {
		path = "/"
	}

	r2 := r.Clone(r.Context())
	r2.URL.Path = path
	r2.URL.RawPath = ""
	m.handler.ServeHTTP(w, r2)
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("module prefix required")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix %q must start with /", prefix)
	}
	if len(prefix) == 1 || strings.Contains(prefix[1:], "/") {
		return fmt.Errorf("module prefix %q must be a single path segment", prefix)
	}
	return nil
}
