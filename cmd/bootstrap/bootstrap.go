package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"turnos-web/config"
	deliveryHttp "turnos-web/internal/delivery/http"
	"turnos-web/internal/delivery/http/handler"
	"turnos-web/internal/delivery/http/middleware"
	domainRepo "turnos-web/internal/domain/repository"
	"turnos-web/internal/infrastructure/cache"
	"turnos-web/internal/repository"
	"turnos-web/internal/service"
	"turnos-web/internal/usecase"
	"turnos-web/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

const brandName = "Turnos"

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	RedisClient *redis.Client
	Server      *http.Server
	Entry       *service.EntryDocument
}

// New creates a new App instance with all dependencies initialized
func New(args []string) (*App, error) {
	flags := config.NewFlagSet("turnos-web")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// Load configuration
	cfg, err := config.LoadConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	log := setupLogger(cfg.App)
	log.Info("Configuration loaded successfully")

	return newApp(cfg, log, afero.NewOsFs())
}

func newApp(cfg *config.Config, log *logrus.Logger, osFs afero.Fs) (*App, error) {
	app := &App{Config: cfg, Log: log}

	// Static assets
	if err := service.CheckAssetRoot(osFs, cfg.Assets.StaticDir); err != nil {
		return nil, err
	}
	assetFs := afero.NewBasePathFs(osFs, cfg.Assets.StaticDir)

	entry, err := service.NewEntryDocument(assetFs, path.Join("/", cfg.Assets.IndexFile), log)
	if err != nil {
		return nil, err
	}
	app.Entry = entry
	log.Infof("Serving single-page app from %s", cfg.Assets.StaticDir)

	// Theme preference store
	var preferenceRepo domainRepo.ThemePreferenceRepository
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis, log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		preferenceRepo = repository.NewRedisThemePreferenceRepository(redisClient, cfg.Theme.PreferenceTTL)
		log.Info("Redis connected successfully")
	} else {
		preferenceRepo = repository.NewMemoryThemePreferenceRepository()
		log.Info("REDIS_HOST not set, theme preferences are kept in memory")
	}

	app.Server = initializeServer(cfg, log, assetFs, entry, preferenceRepo)
	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	if cfg.IsProduction() {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("Unknown LOG_LEVEL %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(
	cfg *config.Config,
	log *logrus.Logger,
	assetFs afero.Fs,
	entry *service.EntryDocument,
	preferenceRepo domainRepo.ThemePreferenceRepository,
) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize usecases
	themePreferenceUsecase := usecase.NewThemePreferenceUsecase(log, preferenceRepo)
	appointmentCardUsecase := usecase.NewAppointmentCardUsecase(log)
	componentUsecase := usecase.NewComponentUsecase(log, brandName, themePreferenceUsecase, nil)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler()
	appointmentHandler := handler.NewAppointmentHandler(appointmentCardUsecase, customValidator)
	themeHandler := handler.NewThemeHandler(themePreferenceUsecase, customValidator)
	componentHandler := handler.NewComponentHandler(componentUsecase, customValidator)
	progressHandler := handler.NewProgressHandler(componentUsecase, log)
	spaHandler := handler.NewSPAHandler(assetFs, entry, log)

	// Initialize middleware
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.HTTP.AllowedOrigins)
	rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitPerMinute)

	// Initialize router
	router := deliveryHttp.NewRouter(
		healthHandler,
		appointmentHandler,
		themeHandler,
		componentHandler,
		progressHandler,
		spaHandler,
		loggingMiddleware,
		corsMiddleware,
		rateLimiter,
	)

	// Create server
	return &http.Server{
		Addr:              net.JoinHostPort("0.0.0.0", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run serves until SIGINT/SIGTERM, then shuts down gracefully
func (app *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.Serve(ctx)
}

// Serve binds the listener and serves until ctx is done
func (app *App) Serve(ctx context.Context) error {
	defer app.Close()

	listener, err := net.Listen("tcp", app.Server.Addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", app.Server.Addr, err)
	}
	app.Log.Infof("Server listening on %s", app.Server.Addr)
	app.Log.Infof("Environment: %s", app.Config.App.Env)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := app.Server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	if app.Config.Assets.Watch {
		watcher, err := service.NewAssetWatcher(app.Config.Assets.StaticDir, app.Entry, app.Log)
		if err != nil {
			app.Log.Warnf("Asset watching disabled: %+v", err)
		} else {
			g.Go(func() error { return watcher.Run(gctx) })
		}
	}

	g.Go(func() error {
		<-gctx.Done()
		app.Log.Info("Shutting down server...")

		// Create shutdown context with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Config.HTTP.ShutdownTimeout)
		defer cancel()

		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			app.Log.Errorf("Server forced to shutdown: %v", err)
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	app.Log.Info("Server shutdown complete")
	return nil
}

// Close closes external connections
func (app *App) Close() {
	if app.RedisClient != nil {
		if err := app.RedisClient.Close(); err != nil {
			app.Log.Warnf("Failed to close Redis client: %v", err)
		}
	}
}
