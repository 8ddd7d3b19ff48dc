package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"storage-dashboard/config"
	"storage-dashboard/internal/application/services"
	"storage-dashboard/internal/infrastructure/backend"
	"storage-dashboard/internal/infrastructure/metrics"
	"storage-dashboard/internal/infrastructure/sessionfile"
	"storage-dashboard/internal/interface/api/rest"
	"storage-dashboard/internal/interface/api/rest/middleware"
)

type App struct {
	logger   *zap.Logger
	cfg      config.Config
	storage  *backend.Client
	store    *sessionfile.Store
	httpSrv  *http.Server
	router   *gin.Engine
	mCounter *prometheus.CounterVec
}

func NewApp(ctx context.Context) (*App, error) {
	// logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}
	defer logger.Sync()

	// config
	if err = godotenv.Load(".env"); err != nil {
		logger.Warn("no .env file loaded", zap.Error(err))
	}
	cfg := config.Load()

	// metrics
	mCounter := metrics.NewCounter()

	// router
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.MaxMultipartMemory = cfg.Storage.MaxUploadBytes
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogGin(logger, mCounter))

	// the SPA is served from a different origin than this gateway
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORS.AllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORS.AllowOrigins
	} else {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	r.Use(cors.New(corsCfg))

	// httpServer
	httpSrv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: r,
	}

	// storage backend client
	baseURL, err := cfg.StorageAPIURL()
	if err != nil {
		logger.Fatal("storage config error", zap.Error(err))
	}
	storageClient, err := backend.New(logger, cfg.Storage, baseURL, mCounter)
	if err != nil {
		logger.Fatal("failed to build storage backend client", zap.Error(err))
	}

	// session store
	sessionPath, err := cfg.SessionPath()
	if err != nil {
		logger.Fatal("session config error", zap.Error(err))
	}
	store, err := sessionfile.New(logger, sessionPath)
	if err != nil {
		logger.Fatal("failed to init session store", zap.Error(err))
	}

	return &App{
		logger:   logger,
		cfg:      cfg,
		storage:  storageClient,
		store:    store,
		httpSrv:  httpSrv,
		router:   r,
		mCounter: mCounter,
	}, nil
}

func (a *App) Close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run - The central place to launch and manage our application and
// parallel processes through a single context.
func (a *App) Run(ctx context.Context) error {
	// context with os signals cancel chan
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGUSR1)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.cfg.App.Host+":"+a.cfg.App.Port))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if a.httpSrv != nil {
		if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
			return err
		}
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) InitControllers() {
	// services
	guard := services.NewGuardService(a.logger, a.store, a.storage)
	authService := services.NewAuthService(a.logger, a.storage, a.store, a.mCounter)
	directory := services.NewDirectoryService(a.logger, a.storage, a.mCounter)
	uploader := services.NewUploadCoordinator(a.logger, a.storage, directory, a.mCounter)
	links := services.NewLinkResolver(a.logger, a.storage, a.mCounter)

	// controllers
	rest.NewAuthController(a.router, a.logger, authService, guard)
	rest.NewDashboardController(a.router, a.logger, directory, guard)
	rest.NewFileController(a.router, a.logger, directory, uploader, links, guard)

	// ops
	a.router.GET(rest.RouteHealth, func(c *gin.Context) { c.Status(http.StatusOK) })
	a.router.GET(rest.RouteMetrics, gin.WrapH(promhttp.Handler()))
}

func (a *App) Logger() *zap.Logger { return a.logger }
