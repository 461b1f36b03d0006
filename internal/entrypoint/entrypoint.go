package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	log "github.com/sirupsen/logrus"

	"github.com/mrlokans/businesscards/internal/audit"
	"github.com/mrlokans/businesscards/internal/config"
	"github.com/mrlokans/businesscards/internal/database"
	auditrepo "github.com/mrlokans/businesscards/internal/database/audit"
	"github.com/mrlokans/businesscards/internal/database/businesscards"
	http_controllers "github.com/mrlokans/businesscards/internal/http"
	"github.com/mrlokans/businesscards/internal/logging"
	"github.com/mrlokans/businesscards/internal/qrcode"
	"github.com/mrlokans/businesscards/internal/scheduler"
	"github.com/mrlokans/businesscards/internal/services"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// App holds the wired server and the resources it owns.
type App struct {
	Handler   http.Handler
	DB        *database.Database
	Audit     *audit.Service // nil when auditing is disabled
	Scheduler *scheduler.AuditCleanupScheduler
}

// DatabaseOptions maps configuration onto store options.
func DatabaseOptions(cfg *config.Config) database.Options {
	return database.Options{
		Driver: cfg.Database.Driver,
		Path:   cfg.Database.Path,
		DSN:    cfg.Database.DSN,
	}
}

// NewApp opens the store and wires services, controllers and middleware.
func NewApp(cfg *config.Config, version string) (*App, error) {
	db, err := database.NewDatabase(DatabaseOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if cfg.Database.Seed {
		if _, err := db.SeedSampleCards(context.Background()); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to seed sample cards: %w", err)
		}
	}

	app := &App{DB: db}
	store := businesscards.NewRepository(db.DB)

	routerCfg := http_controllers.RouterConfig{
		Database:       db,
		MaxUploadBytes: cfg.Upload.MaxUploadBytes(),
		Version:        version,
	}

	if cfg.Audit.Enabled {
		app.Audit = audit.NewService(auditrepo.NewRepository(db.DB))
		app.Scheduler = scheduler.NewAuditCleanupScheduler(app.Audit, scheduler.AuditCleanupConfig{
			Enabled:       true,
			Schedule:      cfg.Audit.CleanupSchedule,
			RetentionDays: cfg.Audit.RetentionDays,
		})
		routerCfg.Cards = services.NewCardService(store, qrcode.NewReader(), app.Audit)
		routerCfg.Audit = app.Audit
	} else {
		log.Info("Audit log disabled")
		routerCfg.Cards = services.NewCardService(store, qrcode.NewReader(), nil)
	}

	router := http_controllers.NewRouter(routerCfg)
	app.Handler = WrapHandler(router, cfg)

	return app, nil
}

// WrapHandler applies CORS and optional per-IP rate limiting around the router.
func WrapHandler(router http.Handler, cfg *config.Config) http.Handler {
	handler := router

	if cfg.RateLimit.PerMinute > 0 {
		handler = httprate.LimitByIP(cfg.RateLimit.PerMinute, 1*time.Minute)(handler)
	}

	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsOptions := cors.New(cors.Options{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", logging.RequestIDHeader},
			ExposedHeaders: []string{"Content-Disposition", logging.RequestIDHeader},
			MaxAge:         300, // Maximum value not ignored by any of major browsers
		})
		handler = corsOptions.Handler(handler)
	}

	return handler
}

// Close releases resources after the server stopped accepting requests.
func (a *App) Close() {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}
	if a.Audit != nil {
		a.Audit.Wait()
	}
	if err := a.DB.Close(); err != nil {
		log.WithError(err).Error("Error closing database")
	}
}

func Serve(handler http.Handler, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s", err)
		}
	}()

	// kill (no param) default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Infof("Shutdown Server, waiting %v before killing", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server Shutdown")
	}

	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Info("Server exiting")
}

func Run(cfg *config.Config, version string) {
	logging.Setup(cfg.Log.Level, cfg.Log.Format)
	log.Infof("Starting Business Cards v%s", version)

	app, err := NewApp(cfg, version)
	if err != nil {
		log.Fatal(err)
	}

	schedCtx, schedCancel := context.WithCancel(context.Background())
	defer schedCancel()
	if app.Scheduler != nil {
		if err := app.Scheduler.Start(schedCtx); err != nil {
			log.WithError(err).Error("Failed to start audit cleanup scheduler")
		}
	}

	Serve(app.Handler, cfg, func(ctx context.Context) {
		schedCancel()
		app.Close()
	})
}
