package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/a-h/templ"
)

var ErrTemplateNotFound = errors.New("template not found")

// ViewDef declares a view backed by a page template.
type ViewDef struct {
	Route    string
	Template string
	Title    string
	Bundle   string
}

// ViewData is passed to templates. BasePath and Path come from the request
// Navigation so templates can build links with {{ .Nav.URL "/clients" }}.
type ViewData struct {
	Title    string
	Bundle   string
	BasePath string
	Nav      Navigation
}

// TemplateSet holds one parsed template tree per view: the layouts cloned
// and combined with that view's page template. Everything is parsed at
// construction so a bad template fails startup rather than a request.
type TemplateSet struct {
	pages    map[string]*template.Template
	shell    *template.Template
	basePath string
}

// NewTemplateSet parses the layouts matched by layoutGlob in layoutFS, then
// for each view clones them and parses the view template from viewSubdir
// of viewFS.
func NewTemplateSet(layoutFS, viewFS fs.FS, layoutGlob, viewSubdir, basePath string, views []ViewDef) (*TemplateSet, error) {
	layouts, err := template.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	viewSub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, fmt.Errorf("open views: %w", err)
	}

	pages := make(map[string]*template.Template, len(views))
	for _, v := range views {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse template %s: %w", v.Template, err)
		}
		pages[v.Template] = t
	}

	shell, err := layouts.Clone()
	if err != nil {
		return nil, fmt.Errorf("clone layouts for shell: %w", err)
	}

	return &TemplateSet{
		pages:    pages,
		shell:    shell,
		basePath: basePath,
	}, nil
}

// Execute renders layout with the page template for pagePath into w.
func (ts *TemplateSet) Execute(w io.Writer, layout, pagePath string, data ViewData) error {
	t, ok := ts.pages[pagePath]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, pagePath)
	}
	return t.ExecuteTemplate(w, layout, data)
}

// View returns the view that renders def inside layout.
func (ts *TemplateSet) View(layout string, def ViewDef) View {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return ts.Execute(w, layout, def.Template, ts.data(ctx, def.Title, def.Bundle))
	})
}

// Shell returns a view that renders layout with no page content: the root
// container is present but empty.
func (ts *TemplateSet) Shell(layout, title, bundle string) View {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return ts.shell.ExecuteTemplate(w, layout, ts.data(ctx, title, bundle))
	})
}

// Route builds a table route for def rendered inside layout.
func (ts *TemplateSet) Route(layout string, def ViewDef) Route {
	return Route{
		Path:  def.Route,
		Title: def.Title,
		View:  ts.View(layout, def),
	}
}

func (ts *TemplateSet) data(ctx context.Context, title, bundle string) ViewData {
	nav, ok := NavigationFromContext(ctx)
	if !ok {
		nav = Navigation{BasePath: ts.basePath, Path: "/"}
	}
	return ViewData{
		Title:    title,
		Bundle:   bundle,
		BasePath: ts.basePath,
		Nav:      nav,
	}
}
