package app

import (
	"context"
	"fmt"
	"net/http"

	"menu-app-go/internal/config"
	"menu-app-go/internal/db"
	menudomain "menu-app-go/internal/domain/menu"
	subscriptiondomain "menu-app-go/internal/domain/subscription"
	"menu-app-go/internal/repository/inmemory"
	menurepo "menu-app-go/internal/repository/postgres/menu"
	subscriptionrepo "menu-app-go/internal/repository/postgres/subscription"
	"menu-app-go/internal/storage"
	"menu-app-go/internal/transport/httpserver"
	"menu-app-go/internal/transport/httpserver/handler"
	"menu-app-go/internal/transport/httpserver/middleware"
	"menu-app-go/pkg/logger"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
	scheduler  *cron.Cron
	log        logger.Logger
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		log.Info("app: applying migrations")
		if err := db.Migrate(dbConn, log); err != nil {
			closeDB(dbConn)
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	objectStorage, err := newObjectStorage(cfg.Storage, log)
	if err != nil {
		closeDB(dbConn)
		return nil, err
	}

	menuCache := inmemory.NewInMemoryMenuCache()
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Cache.SweepSchedule, func() {
		if removed := menuCache.Sweep(); removed > 0 {
			log.Debug("cache: swept expired menus", "removed", removed, "remaining", menuCache.Len())
		}
	}); err != nil {
		closeDB(dbConn)
		return nil, fmt.Errorf("schedule cache sweep %q: %w", cfg.Cache.SweepSchedule, err)
	}

	subscriptions := subscriptiondomain.NewService(subscriptionrepo.NewPostgres(dbConn))
	menus := menudomain.NewServiceWithDeps(menurepo.NewPostgres(dbConn), menudomain.Deps{
		Cache:         menuCache,
		CacheTTL:      cfg.Cache.MenuTTL,
		Subscriptions: subscriptions,
		Storage:       objectStorage,
		Log:           log,
	})

	perf := middleware.NewPerfRecorder(middleware.DefaultPerfCapacity, middleware.DefaultSlowRequestCutoff, log)
	ping := func(ctx context.Context) error {
		return db.Ping(ctx, dbConn)
	}

	log.Info("app: initializing router")
	handlers := handler.New(menus, subscriptions, ping, perf, log)
	router := httpserver.NewRouter(cfg, handlers, perf, log)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	scheduler.Start()
	log.Info("app: cache sweep scheduled", "schedule", cfg.Cache.SweepSchedule, "ttl", cfg.Cache.MenuTTL)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
		scheduler:  scheduler,
		log:        log,
	}, nil
}

// newObjectStorage returns nil when no bucket credentials are configured; the
// menu service then skips object removal.
func newObjectStorage(cfg config.StorageConfig, log logger.Logger) (menudomain.ObjectStorage, error) {
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		log.Warn("app: object storage not configured, cleared images will not be removed")
		return nil, nil
	}

	s3Storage, err := storage.NewS3Storage(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("init object storage: %w", err)
	}
	return s3Storage, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.scheduler != nil {
		<-a.scheduler.Stop().Done()
	}
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func closeDB(gormDB *gorm.DB) {
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
