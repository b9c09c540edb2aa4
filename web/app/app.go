// Package app is the console's page shell. It declares the route table,
// renders each view inside the shell layout's root container, and serves
// the shell's embedded assets.
package app

import (
	"embed"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/vector2/internal/config"
	"github.com/JaimeStill/vector2/pkg/module"
	"github.com/JaimeStill/vector2/pkg/web"
)

//go:embed dist/*
var distFS embed.FS

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const layout = "app.html"

var publicFiles = []string{
	"robots.txt",
	"site.webmanifest",
}

var views = []web.ViewDef{
	{Route: "/", Template: "dashboard.html", Title: "Dashboard", Bundle: "app"},
	{Route: "/clients", Template: "clients.html", Title: "Clients", Bundle: "app"},
}

var notFoundView = web.ViewDef{Template: "404.html", Title: "Not Found", Bundle: "app"}

// Shell is the assembled page shell.
type Shell struct {
	Table   *web.Table
	handler http.Handler
}

// New parses the shell templates and builds the route table for cfg.
func New(cfg *config.ShellConfig, logger *slog.Logger) (*Shell, error) {
	titled := make([]web.ViewDef, 0, len(views)+1)
	for _, v := range append(views, notFoundView) {
		v.Title = fmt.Sprintf("%s | %s", v.Title, cfg.Title)
		titled = append(titled, v)
	}

	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		cfg.BasePath,
		titled,
	)
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}

	routes := make([]web.Route, 0, len(views))
	for _, v := range titled[:len(views)] {
		routes = append(routes, ts.Route(layout, v))
	}

	table, err := web.NewTable(routes...)
	if err != nil {
		return nil, fmt.Errorf("routes: %w", err)
	}

	notFound := ts.View(layout, titled[len(views)])
	if cfg.NotFound == web.NotFoundBlank {
		notFound = ts.Shell(layout, cfg.Title, "app")
	}

	return &Shell{
		Table: table,
		handler: buildRouter(table.Handler(
			web.WithBasePath(cfg.BasePath),
			web.WithNotFound(cfg.NotFound, notFound),
			web.WithLogger(logger),
		)),
	}, nil
}

// Handler serves shell-relative paths: "/" and "/clients" rather than
// "/app/clients".
func (s *Shell) Handler() http.Handler {
	return s.handler
}

// NewModule builds the shell and mounts it at cfg.BasePath.
func NewModule(cfg *config.ShellConfig, logger *slog.Logger) (*module.Module, error) {
	shell, err := New(cfg, logger)
	if err != nil {
		return nil, err
	}
	return module.New(cfg.BasePath, shell.Handler()), nil
}

func buildRouter(pages http.Handler) http.Handler {
	r := web.NewRouter()
	r.SetFallback(pages)

	r.Handle("GET /dist/", web.DistServer(distFS, "dist", "/dist/"))

	for _, route := range web.PublicFileRoutes(publicFS, "public", publicFiles...) {
		r.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}

	return r
}
