package web_test

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/JaimeStill/vector2/pkg/web"
)

//go:embed testdata/layouts/*
var layoutFS embed.FS

//go:embed testdata/views/*
var viewFS embed.FS

var testViews = []web.ViewDef{
	{Route: "/", Template: "home.html", Title: "Home", Bundle: "app"},
	{Route: "/about", Template: "about.html", Title: "About", Bundle: "app"},
}

var notFoundView = web.ViewDef{Template: "404.html", Title: "Not Found", Bundle: "app"}

func newTemplateSet(t *testing.T, basePath string) *web.TemplateSet {
	t.Helper()
	ts, err := web.NewTemplateSet(layoutFS, viewFS, "testdata/layouts/*.html", "testdata/views", basePath,
		append(testViews, notFoundView))
	if err != nil {
		t.Fatalf("NewTemplateSet() error = %v", err)
	}
	return ts
}

func TestNewTemplateSet_Errors(t *testing.T) {
	tests := []struct {
		name   string
		glob   string
		subdir string
		views  []web.ViewDef
	}{
		{"invalid layout glob", "nonexistent/*.html", "testdata/views", testViews},
		{"invalid view subdir", "testdata/layouts/*.html", "../outside", testViews},
		{"missing template", "testdata/layouts/*.html", "testdata/views", []web.ViewDef{{Template: "nonexistent.html"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := web.NewTemplateSet(layoutFS, viewFS, tt.glob, tt.subdir, "/app", tt.views); err == nil {
				t.Error("NewTemplateSet() succeeded, want error")
			}
		})
	}
}

func TestTemplateSet_Execute(t *testing.T) {
	ts := newTemplateSet(t, "/app")

	var buf bytes.Buffer
	data := web.ViewData{Title: "Test", Bundle: "test-bundle", BasePath: "/app"}
	if err := ts.Execute(&buf, "test.html", "home.html", data); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	body := buf.String()
	for _, want := range []string{"<!DOCTYPE html>", "<title>Test</title>", "Home Page", "test-bundle", `data-basepath="/app"`} {
		if !strings.Contains(body, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestTemplateSet_Execute_NotFound(t *testing.T) {
	ts := newTemplateSet(t, "/app")

	err := ts.Execute(&bytes.Buffer{}, "test.html", "nonexistent.html", web.ViewData{})
	if !errors.Is(err, web.ErrTemplateNotFound) {
		t.Errorf("Execute() error = %v, want ErrTemplateNotFound", err)
	}
}

func TestTemplateSet_ViewUsesNavigation(t *testing.T) {
	ts := newTemplateSet(t, "/app")

	ctx := web.WithNavigation(context.Background(), web.Navigation{BasePath: "/app", Path: "/about"})

	var buf bytes.Buffer
	if err := ts.View("test.html", testViews[1]).Render(ctx, &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	body := buf.String()
	for _, want := range []string{"<title>About</title>", "About Page", `data-path="/about"`, `href="/app"`} {
		if !strings.Contains(body, want) {
			t.Errorf("output missing %q: %s", want, body)
		}
	}
}

func TestTemplateSet_Shell(t *testing.T) {
	ts := newTemplateSet(t, "/app")

	var buf bytes.Buffer
	if err := ts.Shell("test.html", "Console", "app").Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	body := buf.String()
	if !strings.Contains(body, `<div class="App" id="app"></div>`) {
		t.Errorf("shell root container should be empty: %s", body)
	}
	if strings.Contains(body, "Home Page") || strings.Contains(body, "404") {
		t.Errorf("shell leaked page content: %s", body)
	}
}

func TestTemplateSet_RouteInTable(t *testing.T) {
	ts := newTemplateSet(t, "/app")

	routes := make([]web.Route, 0, len(testViews))
	for _, v := range testViews {
		routes = append(routes, ts.Route("test.html", v))
	}
	table, err := web.NewTable(routes...)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}

	h := table.Handler(
		web.WithBasePath("/app"),
		web.WithNotFound(web.NotFoundPage, ts.View("test.html", notFoundView)),
	)

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/", http.StatusOK, "Home Page"},
		{"/about", http.StatusOK, "About Page"},
		{"/nope", http.StatusNotFound, "404 Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := serve(h, http.MethodGet, tt.path)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("body missing %q", tt.wantBody)
			}
		})
	}
}
