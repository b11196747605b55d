package workers

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/vidora/accounts/internal/config"
	"github.com/vidora/accounts/internal/logger"
)

// StagingJanitor periodically removes orphaned files from the upload staging
// directory. Files outlive a registration attempt when the process dies
// between staging and upload, or when the media host rejects the upload; the
// janitor reclaims that disk space.
type StagingJanitor struct {
	ctx      context.Context
	dir      string
	interval time.Duration
	maxAge   time.Duration
	logger   *logger.Logger
}

func NewStagingJanitor(ctx context.Context, dir string, cfg config.Workers, logger *logger.Logger) *StagingJanitor {
	return &StagingJanitor{
		ctx:      ctx,
		dir:      dir,
		interval: cfg.StagingCleanupInterval,
		maxAge:   cfg.StagingMaxAge,
		logger:   logger,
	}
}

// Run starts the cleanup loop in a background goroutine. The loop stops when
// the janitor's context is cancelled.
func (j *StagingJanitor) Run() {
	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		j.logger.Info().Str("dir", j.dir).Dur("interval", j.interval).Msg("staging janitor started")

		for {
			select {
			case <-j.ctx.Done():
				j.logger.Info().Msg("staging janitor stopped")
				return
			case <-ticker.C:
				j.sweep()
			}
		}
	}()
}

// sweep removes every regular file in the staging directory older than
// maxAge. A missing directory is not an error; it simply means nothing has
// been staged yet.
func (j *StagingJanitor) sweep() {
	entries, err := os.ReadDir(j.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			j.logger.Err(err).Str("dir", j.dir).Msg("reading staging directory failed")
		}
		return
	}

	cutoff := time.Now().Add(-j.maxAge)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(j.dir, entry.Name())
		if err = os.Remove(path); err != nil {
			j.logger.Err(err).Str("path", path).Msg("removing stale staged file failed")
			continue
		}
		removed++
	}

	if removed > 0 {
		j.logger.Info().Int("removed", removed).Msg("stale staged files removed")
	}
}
