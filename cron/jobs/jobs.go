// Package jobs registers the built-in cron jobs. Import it for side effects;
// schedules come from config.CronSchedule.
package jobs

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"glomnidesigns.GO/app"
	"glomnidesigns.GO/config"
	"glomnidesigns.GO/cron"
)

const (
	CacheWarmJob   = "cachewarmjob"
	SnapshotJob    = "snapshotjob"
	DesignIndexJob = "designindexjob"
)

// ErrIndexDisabled is returned by the index job when ELASTICSEARCH_HOST is unset.
var ErrIndexDisabled = errors.New("design index not configured")

func init() {
	cron.Register(CacheWarmJob, config.CronSchedule(CacheWarmJob), func(ctx context.Context) error {
		return WarmCache(ctx, app.Default())
	})
	cron.Register(SnapshotJob, config.CronSchedule(SnapshotJob), func(ctx context.Context) error {
		return SyncSnapshot(ctx, app.Default())
	})
	cron.Register(DesignIndexJob, config.CronSchedule(DesignIndexJob), func(ctx context.Context) error {
		return IndexDesigns(ctx, app.Default())
	})
}

// WarmCache prefetches the default listings into the envelope cache.
func WarmCache(ctx context.Context, a *app.App) error {
	return a.Content.Warm(ctx)
}

// SyncSnapshot mirrors every CMS collection into the snapshot table.
func SyncSnapshot(ctx context.Context, a *app.App) error {
	svc, err := a.Snapshot()
	if err != nil {
		return err
	}
	report, err := svc.Sync(ctx)
	for name, c := range report.Collections {
		a.Log.Info("snapshot collection",
			zap.String("collection", name),
			zap.Int("fetched", c.Fetched),
			zap.Int("stored", c.Stored),
			zap.Int64("pruned", c.Pruned),
		)
	}
	return err
}

// IndexDesigns rebuilds the design search index from the CMS.
func IndexDesigns(ctx context.Context, a *app.App) error {
	if !a.Index.Enabled() {
		return ErrIndexDisabled
	}
	n, err := a.Index.Reindex(ctx, a.Client)
	a.Log.Info("designs indexed", zap.Int("count", n), zap.String("index", a.Index.IndexName()))
	return err
}
