package web

import (
	"io/fs"
	"mime"
	"net/http"
	"path"
)

// FileRoute is a single GET route serving an embedded file.
type FileRoute struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// DistServer serves files from subdir of fsys under the URL prefix.
func DistServer(fsys fs.FS, subdir, prefix string) http.HandlerFunc {
	sub, err := fs.Sub(fsys, subdir)
	if err != nil {
		return http.NotFound
	}
	return http.StripPrefix(prefix, http.FileServer(http.FS(sub))).ServeHTTP
}

// PublicFile serves a single file from subdir of fsys.
func PublicFile(fsys fs.FS, subdir, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(fsys, path.Join(subdir, name))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
			w.Header().Set("Content-Type", ct)
		}
		w.Write(data)
	}
}

// PublicFileRoutes returns a root-level route for each named file.
func PublicFileRoutes(fsys fs.FS, subdir string, names ...string) []FileRoute {
	routes := make([]FileRoute, 0, len(names))
	for _, name := range names {
		routes = append(routes, FileRoute{
			Method:  http.MethodGet,
			Pattern: "/" + name,
			Handler: PublicFile(fsys, subdir, name),
		})
	}
	return routes
}
