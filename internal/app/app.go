package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/mainra/showcase/internal/admin"
	"github.com/mainra/showcase/internal/config"
	"github.com/mainra/showcase/internal/httpserver"
	"github.com/mainra/showcase/internal/httpserver/deps"
	"github.com/mainra/showcase/internal/i18n"
	"github.com/mainra/showcase/internal/index"
	"github.com/mainra/showcase/internal/live"
	"github.com/mainra/showcase/internal/logger"
	"github.com/mainra/showcase/internal/redis"
	"github.com/mainra/showcase/internal/scheduler"
	"github.com/mainra/showcase/internal/site"
	"github.com/mainra/showcase/internal/sources/document"
	"github.com/mainra/showcase/internal/store"
	redisstore "github.com/mainra/showcase/internal/store/redis"
	"github.com/mainra/showcase/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	reloader    *scheduler.DocumentReloader
	hub         *live.Hub
}

// New wires every component from the environment configuration.
func New() (*App, error) {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	redisClient, cache, err := newCache(cfg, loggerClient)
	if err != nil {
		return nil, err
	}

	bundle, err := i18n.Load(cfg.DefaultLang)
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}
	for _, tag := range bundle.Supported() {
		if missing := bundle.Missing(tag); len(missing) > 0 {
			loggerClient.Warn("incomplete translation",
				logger.String("lang", tag.String()),
				logger.Strings("missing", missing))
		}
	}

	renderer, err := site.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	locations := document.Locations{
		Static:       cfg.DocumentPath,
		FetchTimeout: cfg.FetchTimeout,
		Cache:        cache,
	}
	adminChain, err := document.BuildChain(cfg.AdminSources, locations, loggerClient)
	if err != nil {
		return nil, fmt.Errorf("invalid admin sources: %w", err)
	}
	publicChain, err := document.BuildChain(cfg.PublicSources, locations, loggerClient)
	if err != nil {
		return nil, fmt.Errorf("invalid public sources: %w", err)
	}

	controller := admin.NewController(cache, loggerClient.With(logger.Component("admin")))
	controller.Load(context.Background(), adminChain)

	snapshot := index.NewSnapshot()
	hub := live.NewHub(loggerClient.With(logger.Component("live")))

	// Create manual reload trigger channel
	reloadTrigger := make(chan struct{}, 1)

	opts := scheduler.ReloaderOptions{Interval: cfg.ReloadInterval}
	if cfg.WatchDocument && !cfg.IsRemoteDocument() {
		opts.WatchPath = cfg.DocumentPath
	}
	var notifier scheduler.Notifier
	if cfg.LiveReload {
		notifier = hub
	}
	reloader := scheduler.NewDocumentReloader(publicChain, snapshot, notifier,
		loggerClient.With(logger.Component("reloader")), opts, reloadTrigger)

	d := deps.Deps{
		Logger:          loggerClient,
		StartTime:       time.Now(),
		Version:         version.Version,
		Commit:          version.Commit,
		BuildDate:       version.BuildDate,
		GoVersion:       version.GoVersion,
		TimeNow:         time.Now,
		AllowedHosts:    cfg.AllowedHosts,
		AllowedCIDRS:    cfg.AllowedCIDRS,
		TrustProxy:      cfg.TrustProxy,
		AdminRateBurst:  cfg.AdminRateBurst,
		AdminRatePerMin: cfg.AdminRatePerMin,
		RedisClient:     redisClient,
		Snapshot:        snapshot,
		Controller:      controller,
		Hub:             hub,
		Bundle:          bundle,
		Renderer:        renderer,
		FeaturedLimit:   cfg.FeaturedLimit,
		LiveReload:      cfg.LiveReload,
		ReloadTrigger:   reloadTrigger,
	}

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      httpserver.New(cfg, loggerClient, d),
		redisClient: redisClient,
		reloader:    reloader,
		hub:         hub,
	}, nil
}

// newCache connects to Redis when configured, failing fast when it is
// unreachable, and otherwise returns the in-process cache.
func newCache(cfg *config.Config, log logger.Logger) (*goredis.Client, store.DocumentCache, error) {
	if !cfg.UseRedis() {
		log.Info("no redis configured, admin edits are cached in memory")
		return nil, store.NewMemory(), nil
	}

	log.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	client, err := redis.Connect(context.Background(), redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		DB:             cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Info("Redis initialized successfully")
	return client, redisstore.NewStore(client, cfg.CacheKey), nil
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting showcase v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("showcase %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.reloader.Start(ctx); err != nil {
		return fmt.Errorf("failed to start document reloader: %w", err)
	}
	a.logger.Info("document reloader started",
		logger.Duration("interval", a.cfg.ReloadInterval),
		logger.String("document", a.cfg.DocumentPath))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		a.reloader.Stop()
		return err
	}

	a.reloader.Stop()
	a.hub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ showcase stopped cleanly")
	return nil
}
