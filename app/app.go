// Package app wires the CMS client and the services built on it from
// configuration. The server, the CLI and cron jobs share one App.
package app

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"glomnidesigns.GO/cms"
	"glomnidesigns.GO/config"
	"glomnidesigns.GO/core/cache"
	"glomnidesigns.GO/core/logging"
	snapshotRepo "glomnidesigns.GO/model/repository/snapshot"
	"glomnidesigns.GO/search"
	"glomnidesigns.GO/service/content"
	"glomnidesigns.GO/service/snapshot"
)

type App struct {
	Config  *config.Config
	Log     *zap.Logger
	Client  *cms.Client
	Content *content.Service
	Index   *search.DesignIndex
	Cache   *content.EnvelopeCache

	openDB   func() (*gorm.DB, error)
	dbOnce   sync.Once
	db       *gorm.DB
	dbErr    error
	snapshot *snapshot.SyncService
}

type Option func(*App)

// WithDB replaces the snapshot database opener (config.NewDB by default).
func WithDB(open func() (*gorm.DB, error)) Option {
	return func(a *App) { a.openDB = open }
}

// WithIndex sets the design index instead of reading ELASTICSEARCH_HOST.
func WithIndex(idx *search.DesignIndex) Option {
	return func(a *App) { a.Index = idx }
}

func New(cfg *config.Config, log *zap.Logger, opts ...Option) *App {
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{Config: cfg, Log: log, openDB: config.NewDB}
	for _, opt := range opts {
		opt(a)
	}

	a.Client = cms.NewClient(cfg.APIURL,
		cms.WithTimeout(cfg.RequestTimeout),
		cms.WithObserver(logging.CMSObserver(log)),
	)
	if a.Index == nil {
		idx, err := search.NewDesignIndexFromEnv()
		if err != nil {
			log.Warn("design index disabled", zap.Error(err))
		}
		a.Index = idx
	}
	a.Cache = content.NewEnvelopeCache(cache.GetInstance(), config.RedisClient, cfg.CacheTTL, log)

	svcOpts := []content.Option{content.WithLogger(log), content.WithCache(a.Cache)}
	if a.Index.Enabled() {
		svcOpts = append(svcOpts, content.WithSearcher(a.Index))
	}
	a.Content = content.New(a.Client, svcOpts...)
	return a
}

// DB opens and migrates the snapshot database on first use.
func (a *App) DB() (*gorm.DB, error) {
	a.dbOnce.Do(func() {
		db, err := a.openDB()
		if err != nil {
			a.dbErr = fmt.Errorf("failed to connect to DB: %w", err)
			return
		}
		repo := snapshotRepo.NewSnapshotRepository(db)
		if err := repo.Migrate(); err != nil {
			a.dbErr = fmt.Errorf("migrate snapshot table: %w", err)
			return
		}
		a.db = db
		a.snapshot = snapshot.NewSyncService(a.Client, repo, a.Log)
	})
	return a.db, a.dbErr
}

// Snapshot returns the sync service, opening the database if needed.
func (a *App) Snapshot() (*snapshot.SyncService, error) {
	if _, err := a.DB(); err != nil {
		return nil, err
	}
	return a.snapshot, nil
}

var (
	defaultOnce sync.Once
	defaultApp  *App
)

// Default builds the process App from config.AppConfig and logging.L().
func Default() *App {
	defaultOnce.Do(func() {
		config.LoadAppConfig()
		defaultApp = New(config.AppConfig, logging.L())
	})
	return defaultApp
}
