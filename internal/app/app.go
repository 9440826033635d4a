package app

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/mgwunna/portfolio/internal/config"
	"github.com/mgwunna/portfolio/internal/httpserver"
	"github.com/mgwunna/portfolio/internal/httpserver/deps"
	"github.com/mgwunna/portfolio/internal/httpserver/mw"
	"github.com/mgwunna/portfolio/internal/index"
	"github.com/mgwunna/portfolio/internal/logger"
	"github.com/mgwunna/portfolio/internal/redis"
	"github.com/mgwunna/portfolio/internal/scheduler"
	redisstore "github.com/mgwunna/portfolio/internal/store/redis"
	"github.com/mgwunna/portfolio/internal/version"
	"github.com/mgwunna/portfolio/internal/view"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	pageIndex   *index.PageIndex
	reloader    *scheduler.ContentReloader
	gc          *scheduler.GarbageCollector
}

// New wires every component of the site server. Redis is optional: when
// it is not configured, pages are served from memory only.
func New(ctx context.Context, cfg *config.Config, loggerClient logger.Logger) (*App, error) {
	var redisClient *goredis.Client
	var store *redisstore.Store
	if cfg.RedisEnabled() {
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.New(ctx, redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		redisClient = client
		store = redisstore.NewStore(client)
		loggerClient.Info("Redis initialized successfully")
	} else {
		loggerClient.Info("redis not configured, page views are kept in memory only")
	}

	pageIndex := index.NewPageIndex()

	// Warm the index from the last snapshot so views survive restarts.
	if store != nil {
		syncer := scheduler.NewRedisSyncer(store, pageIndex, loggerClient)
		if err := syncer.Sync(ctx); err != nil {
			loggerClient.Warn("failed to sync from redis on startup, will load from content",
				logger.Error(err))
		}
	}

	reloadTrigger := make(chan struct{}, 1)

	reloader := scheduler.NewContentReloader(
		cfg.ContentFile,
		store,
		pageIndex,
		loggerClient,
		cfg.ReloadInterval,
		time.Now,
		reloadTrigger,
	)

	gc := scheduler.NewGarbageCollector(
		store,
		pageIndex,
		loggerClient,
		cfg.GCInterval,
		cfg.GCThreshold,
		time.Now,
	)

	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		TimeNow:      time.Now,
		AllowedHosts: cfg.AllowedHosts,
		AllowedCIDRS: cfg.AllowedCIDRS,
		TrustProxy:   cfg.TrustProxy,
		ContentFile:  cfg.ContentFile,
		RedisClient:  redisClient,
		Store:        store,
		PageIndex:    pageIndex,
		Renderer:     view.NewRenderer(time.Now, cfg.StylesheetURL),
		RateLimit: mw.RateLimitConfig{
			Burst:             cfg.RateLimitBurst,
			RefillPerIPPerMin: cfg.RateLimitPerMinute,
			MaxEntries:        10000,
		},
		ReloadTrigger: reloadTrigger,
	}

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      httpserver.New(cfg, loggerClient, d),
		redisClient: redisClient,
		pageIndex:   pageIndex,
		reloader:    reloader,
		gc:          gc,
	}, nil
}

// Run serves until ctx is cancelled, then shuts everything down.
func (a *App) Run(ctx context.Context) error {
	a.logger.Infof("Starting %s on %s", version.String(), a.cfg.ListenPort)

	if err := a.reloader.Start(ctx); err != nil {
		a.closeRedis()
		return fmt.Errorf("failed to start content reloader: %w", err)
	}
	a.logger.Info("content reloader started",
		logger.Int("pages", a.pageIndex.Count()),
		logger.Duration("interval", a.cfg.ReloadInterval))

	if err := a.gc.Start(ctx); err != nil {
		a.reloader.Stop()
		a.closeRedis()
		return fmt.Errorf("failed to start garbage collector: %w", err)
	}
	a.logger.Info("garbage collector started",
		logger.Duration("interval", a.cfg.GCInterval),
		logger.Duration("threshold", a.cfg.GCThreshold))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("Shutting down gracefully...")
	case runErr = <-errCh:
	}

	a.reloader.Stop()
	a.gc.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("failed to stop server: %w", err)
	}

	a.closeRedis()

	if runErr != nil {
		return runErr
	}
	a.logger.Info("portfolio stopped cleanly")
	return nil
}

func (a *App) closeRedis() {
	if a.redisClient == nil {
		return
	}
	if err := a.redisClient.Close(); err != nil {
		a.logger.Warnf("failed to close redis: %v", err)
		return
	}
	a.logger.Info("Redis closed cleanly")
}
