package app

import (
	"context"
	"errors"
	"learning_progress_backend/internal/config"
	"learning_progress_backend/internal/controller"
	"learning_progress_backend/internal/graph"
	"learning_progress_backend/internal/middleware"
	"learning_progress_backend/internal/repository"
	"learning_progress_backend/internal/service"
	"learning_progress_backend/pkg/configwatcher"
	"learning_progress_backend/pkg/logger"
	"learning_progress_backend/pkg/monitoring"
	"learning_progress_backend/pkg/security"
	"learning_progress_backend/pkg/tracing"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Config *config.Config
	Router *gin.Engine

	services        *services
	allowList       *security.OriginAllowList
	tracerProvider  *sdktrace.TracerProvider
	mu              sync.Mutex
	configCallbacks []func(*config.Config)
}

type repositories struct {
	module *repository.ModuleRepository
}

type services struct {
	progress *service.ProgressService
	module   *service.ModuleService
}

type controllers struct {
	module   *controller.ModuleController
	progress *controller.ProgressController
	graphql  *controller.GraphQLController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 通知所有回调，配置热更新时由 watcher 调用
func (a *App) ApplyConfig(cfg *config.Config) {
	a.mu.Lock()
	a.Config = cfg
	callbacks := make([]func(*config.Config), len(a.configCallbacks))
	copy(callbacks, a.configCallbacks)
	a.mu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories() *repositories {
	return &repositories{
		module: repository.NewModuleRepository(),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}
	s.progress = service.NewProgressService()
	s.module = service.NewModuleService(repos.module, s.progress)
	s.module.SetResetEnabled(cfg.Server.EnableReset)
	return s
}

func (a *App) initControllers(s *services, repos *repositories) (*controllers, error) {
	schema, err := graph.NewSchema(s.module)
	if err != nil {
		return nil, err
	}

	return &controllers{
		module:   controller.NewModuleController(s.module),
		progress: controller.NewProgressController(s.module),
		graphql:  controller.NewGraphQLController(schema),
		health:   controller.NewHealthController(repos.module),
	}, nil
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(logger.GinLogger())
	router.Use(security.CORS(a.allowList))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}
	router.Use(monitoring.MetricsMiddleware())
}

// NewApp 组装依赖；模块存储只在这里创建一次并注入到各层
func NewApp(cfg *config.Config) (*App, error) {
	gin.SetMode(cfg.Server.Mode)

	app := &App{
		Config:    cfg,
		allowList: security.NewOriginAllowList(cfg.CORS.AllowedOrigins),
	}

	repos := app.initRepositories()
	services := app.initServices(repos, cfg)
	app.services = services
	controllers, err := app.initControllers(services, repos)
	if err != nil {
		return nil, err
	}

	// 监控初始化
	monitoring.Init()
	monitoring.ObserveProgress(services.module.GetProgress(context.Background()))

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			return nil, err
		}
		app.tracerProvider = tp
	}

	router := gin.New()
	app.Router = router
	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	app.RegisterConfigCallback(logger.SetLevel)
	app.RegisterConfigCallback(func(c *config.Config) {
		app.allowList.Set(c.CORS.AllowedOrigins)
		services.module.SetResetEnabled(c.Server.EnableReset)
	})

	return app, nil
}

func (a *App) Run() error {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if a.Config.File != "" {
		go func() {
			if err := configwatcher.WatchConfig(ctx, a.Config.File, a.ApplyConfig); err != nil {
				logger.Log.Error("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running",
			zap.String("port", a.Config.Server.Port),
			zap.String("graphql", "/graphql"),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}
	logger.Log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	logger.Log.Info("Server exiting")
	return nil
}
