package main

import (
	"net/http"

	"github.com/JaimeStill/vector2/internal/config"
	"github.com/JaimeStill/vector2/internal/infrastructure"
	"github.com/JaimeStill/vector2/pkg/middleware"
	"github.com/JaimeStill/vector2/pkg/module"
	"github.com/JaimeStill/vector2/pkg/tracing"
	"github.com/JaimeStill/vector2/web/app"
)

const tracerName = "github.com/JaimeStill/vector2"

type Modules struct {
	App *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	appModule, err := app.NewModule(&cfg.Shell, infra.Logger)
	if err != nil {
		return nil, err
	}
	appModule.Use(middleware.TrimSlash())

	return &Modules{
		App: appModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.App)
}

func buildRouter(infra *infrastructure.Infrastructure, cfg *config.Config) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	router.HandleNative("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, cfg.Shell.BasePath, http.StatusFound)
	})

	return router
}

func buildMiddleware(infra *infrastructure.Infrastructure, cfg *config.Config) middleware.System {
	sys := middleware.New()
	sys.Use(middleware.RequestID())
	sys.Use(tracing.Middleware(infra.TracerProvider, tracerName))
	sys.Use(middleware.Logger(infra.Logger))
	sys.Use(middleware.CORS(&cfg.CORS))
	return sys
}
