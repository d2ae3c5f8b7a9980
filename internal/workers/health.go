package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-profile-editor/internal/logger"
)

// HealthWorker pings the store every interval and reports the result. The
// first check runs immediately.
type HealthWorker struct {
	pinger   Pinger
	reporter HealthReporter
	interval time.Duration
	logger   *logger.Logger
}

func NewHealthWorker(pinger Pinger, reporter HealthReporter, interval time.Duration, logger *logger.Logger) *HealthWorker {
	return &HealthWorker{
		pinger:   pinger,
		reporter: reporter,
		interval: interval,
		logger:   logger,
	}
}

func (w *HealthWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Warn().Str("func", "*HealthWorker.Run").Msg("health interval is not positive, worker disabled")
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	serving := w.check(ctx, false)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			serving = w.check(ctx, serving)
		}
	}
}

// check runs one ping bounded by the interval and logs status changes.
func (w *HealthWorker) check(ctx context.Context, wasServing bool) bool {
	pingCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	err := w.pinger.Ping(pingCtx)
	serving := err == nil
	w.reporter.SetServing(serving)

	switch {
	case !serving && ctx.Err() == nil:
		w.logger.Err(err).Str("func", "*HealthWorker.check").Msg("store ping failed")
	case serving && !wasServing:
		w.logger.Info().Str("func", "*HealthWorker.check").Msg("store is reachable")
	}
	return serving
}
