// Package infrastructure assembles the process-wide systems every module
// depends on: lifecycle coordination, logging, and tracing.
package infrastructure

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/JaimeStill/vector2/internal/config"
	"github.com/JaimeStill/vector2/pkg/lifecycle"
	"github.com/JaimeStill/vector2/pkg/logging"
	"github.com/JaimeStill/vector2/pkg/tracing"
)

// Infrastructure holds the core systems shared by all modules.
type Infrastructure struct {
	Lifecycle      *lifecycle.Coordinator
	Logger         *slog.Logger
	TracerProvider trace.TracerProvider

	shutdownTracing func(context.Context) error
	shutdownTimeout string
}

// New creates an Infrastructure from the application configuration.
// Tracing is installed here so spans are available before Start.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	shutdownTracing, err := tracing.Setup(lc.Context(), &cfg.Tracing)
	if err != nil {
		return nil, fmt.Errorf("tracing init failed: %w", err)
	}
	if cfg.Tracing.Active() {
		logger.Info("tracing enabled", "endpoint", cfg.Tracing.Endpoint, "service", cfg.Tracing.ServiceName)
	}

	return &Infrastructure{
		Lifecycle:       lc,
		Logger:          logger,
		TracerProvider:  otel.GetTracerProvider(),
		shutdownTracing: shutdownTracing,
		shutdownTimeout: cfg.ShutdownTimeout,
	}, nil
}

// Start registers infrastructure shutdown hooks with the lifecycle
// coordinator.
func (i *Infrastructure) Start() error {
	i.Lifecycle.OnShutdown(func() {
		<-i.Lifecycle.Context().Done()

		// The root context is already cancelled; flush on a fresh one.
		if err := i.shutdownTracing(context.Background()); err != nil {
			i.Logger.Error("tracing shutdown error", "error", err)
		}
	})
	return nil
}
