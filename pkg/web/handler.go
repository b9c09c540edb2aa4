package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// NotFoundPolicy decides what the table renders for an unmatched path.
type NotFoundPolicy string

const (
	// NotFoundPage renders the not-found view with status 404.
	NotFoundPage NotFoundPolicy = "page"
	// NotFoundBlank renders the not-found view (normally an empty shell)
	// with status 200.
	NotFoundBlank NotFoundPolicy = "blank"
)

func (p NotFoundPolicy) Validate() error {
	switch p {
	case NotFoundPage, NotFoundBlank:
		return nil
	default:
		return fmt.Errorf("invalid not-found policy: %s (must be page or blank)", p)
	}
}

// Status is the HTTP status written for unmatched paths.
func (p NotFoundPolicy) Status() int {
	if p == NotFoundBlank {
		return http.StatusOK
	}
	return http.StatusNotFound
}

type tableHandler struct {
	table    *Table
	basePath string
	policy   NotFoundPolicy
	notFound View
	logger   *slog.Logger
}

// HandlerOption configures Table.Handler.
type HandlerOption func(*tableHandler)

// WithBasePath sets the base path recorded in each request's Navigation.
func WithBasePath(basePath string) HandlerOption {
	return func(h *tableHandler) {
		h.basePath = basePath
	}
}

// WithNotFound sets the policy and the view rendered for unmatched paths.
// A nil view writes an empty body.
func WithNotFound(policy NotFoundPolicy, view View) HandlerOption {
	return func(h *tableHandler) {
		h.policy = policy
		h.notFound = view
	}
}

func WithLogger(logger *slog.Logger) HandlerOption {
	return func(h *tableHandler) {
		h.logger = logger
	}
}

// Handler serves the table. GET and HEAD requests resolve r.URL.Path and
// render the matched view with the request's Navigation on the context.
// Other methods receive 405.
func (t *Table) Handler(opts ...HandlerOption) http.Handler {
	h := &tableHandler{
		table:  t,
		policy: NotFoundPage,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *tableHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", strings.Join([]string{http.MethodGet, http.MethodHead}, ", "))
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	res := h.table.Resolve(NavigationFrom(r, h.basePath))
	r = r.WithContext(WithNavigation(r.Context(), res.Navigation))

	span := trace.SpanFromContext(r.Context())

	if res.Found {
		span.SetAttributes(attribute.String("web.route", res.Route.Path))
		h.render(w, r, res.Route.View, http.StatusOK)
		return
	}

	span.SetAttributes(
		attribute.Bool("web.route.matched", false),
		attribute.String("web.not_found_policy", string(h.policy)),
	)
	h.logger.Debug("no route matched", "path", res.Navigation.Path, "policy", h.policy)

	if h.notFound == nil {
		w.WriteHeader(h.policy.Status())
		return
	}
	h.render(w, r, h.notFound, h.policy.Status())
}

func (h *tableHandler) render(w http.ResponseWriter, r *http.Request, view View, status int) {
	templ.Handler(view,
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				h.logger.Error("render failed", "path", r.URL.Path, "error", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}
