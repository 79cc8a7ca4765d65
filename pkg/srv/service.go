package srv

import (
	"context"

	"github.com/sandevgo/argand/pkg/log"
)

// Service is a long-running component started with the process and stopped on
// shutdown. Start may block until ctx is cancelled.
type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

func StartServices(ctx context.Context, services []Service) {
	logger := log.FromCtx(ctx)
	for _, service := range services {
		go func(service Service) {
			if err := service.Start(ctx); err != nil {
				logger.Fatal().Err(err).Msgf("%T failed to start", service)
			}
		}(service)
	}
}

// ShutdownServices waits for ctx to end, then stops services in reverse
// order so closers registered first (storage) run last.
func ShutdownServices(ctx context.Context, services []Service) {
	<-ctx.Done()
	shutdownCtx := context.WithoutCancel(ctx)
	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Shutdown(shutdownCtx); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msgf("%T failed to shutdown", services[i])
		}
	}
}

// CleanupFunc adapts a closer to Service. Start is a no-op.
type CleanupFunc func() error

func (f CleanupFunc) Start(ctx context.Context) error {
	return nil
}

func (f CleanupFunc) Shutdown(ctx context.Context) error {
	if f == nil {
		return nil
	}
	return f()
}

func NewCleanup(fn func() error) Service {
	return CleanupFunc(fn)
}
