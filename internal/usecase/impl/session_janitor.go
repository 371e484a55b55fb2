package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"bid4service/internal/domain/repository"

	"go.uber.org/fx"
)

// Expired refresh-token rows are already rejected on use; the purge only
// keeps the table from growing, so an hourly pass is plenty.
const sessionPurgeInterval = time.Hour

// sessionJanitor periodically deletes expired refresh-token rows so abandoned
// sessions do not accumulate in the database.
type sessionJanitor struct {
	refreshTokenRepo repository.RefreshTokenRepository
	logger           *slog.Logger
	done             chan struct{}
	once             sync.Once
}

// SessionJanitorParams holds dependencies for the session janitor, injected by Fx.
type SessionJanitorParams struct {
	fx.In

	Lifecycle        fx.Lifecycle
	RefreshTokenRepo repository.RefreshTokenRepository
	Logger           *slog.Logger
}

// RegisterSessionJanitor ties the background purge of expired refresh tokens
// to the application lifecycle. Used with fx.Invoke.
func RegisterSessionJanitor(params SessionJanitorParams) {
	j := &sessionJanitor{
		refreshTokenRepo: params.RefreshTokenRepo,
		logger:           params.Logger,
		done:             make(chan struct{}),
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go j.run()

			return nil
		},
		OnStop: func(context.Context) error {
			j.stop()

			return nil
		},
	})
}

func (j *sessionJanitor) run() {
	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-j.done:
			return
		case <-ticker.C:
			j.purge(context.Background())
		}
	}
}

// purge deletes expired refresh-token rows. A failed pass is only logged; the
// next tick retries it.
func (j *sessionJanitor) purge(ctx context.Context) {
	removed, err := j.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		j.logger.Error("Failed to purge expired refresh tokens", slog.Any("error", err))

		return
	}

	if removed > 0 {
		j.logger.Info("Purged expired refresh tokens", slog.Int64("removed", removed))
	}
}

func (j *sessionJanitor) stop() {
	j.once.Do(func() { close(j.done) })
}
