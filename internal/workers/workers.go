package workers

import (
	"context"

	"github.com/vidora/accounts/internal/config"
	"github.com/vidora/accounts/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the application's background workers. Workers stop
// when ctx is cancelled.
func NewWorkers(ctx context.Context, cfg *config.StructuredConfig, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewStagingJanitor(ctx, cfg.Storage.Staging.Dir, cfg.Workers, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
