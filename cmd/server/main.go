package main

import (
	"context"
	"encoding/json"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v2"
	"github.com/joho/godotenv"

	"superlists/application"
	"superlists/database"
	"superlists/domain/contracts"
	"superlists/infrastructure/config"
	"superlists/infrastructure/repositories"
	"superlists/interfaces/web/handlers"
	webmiddleware "superlists/interfaces/web/middleware"
	"superlists/interfaces/web/presenters"
	templates "superlists/interfaces/web/templates"
	"superlists/logging"
)

func main() {
	// Initialize configuration
	loadEnvironment()
	cfg := config.LoadAppConfigFromEnv()

	// Initialize logging
	logger := initializeLogging(cfg)

	// Initialize database
	db := initializeDatabase(cfg, logger)
	defer db.Close()

	deps := buildDependencies(db, logger)

	router := setupRoutes(deps, cfg)
	startServer(router, cfg.HTTPAddr, logger)
}

// RepositoryBundle holds all repository implementations
type RepositoryBundle struct {
	ListRepo contracts.ListRepository
	ItemRepo contracts.ItemRepository
}

// PresentationLayer groups all presentation components
type PresentationLayer struct {
	ListPresenter *presenters.ListPresenter
	ListHandlers  *handlers.ListHandlers
}

// Dependencies holds all application dependencies organized by layer
type Dependencies struct {
	DB     *database.Database
	Logger *logging.Logger

	Repositories *RepositoryBundle
	ListService  *application.ListService
	Presentation *PresentationLayer
}

func loadEnvironment() {
	if err := godotenv.Load(); err != nil {
		println("No .env file found, using environment variables")
	} else {
		println("Loaded configuration from .env file")
	}
}

func initializeLogging(cfg *config.AppConfig) *logging.Logger {
	logger := logging.NewLogger(cfg.Logging)
	logging.SetDefault(logger)

	logger.Info("Application starting",
		"log_level", cfg.Logging.Level,
		"log_format", cfg.Logging.Format,
		"db_path", cfg.Database.Path,
		"csrf_enabled", cfg.CSRF.Enabled(),
	)

	return logger
}

func initializeDatabase(cfg *config.AppConfig, logger *logging.Logger) *database.Database {
	db, err := database.New(*cfg.Database, logger)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	return db
}

func buildRepositories(db *database.Database) *RepositoryBundle {
	return &RepositoryBundle{
		ListRepo: repositories.NewSqlcListRepository(db),
		ItemRepo: repositories.NewSqlcItemRepository(db),
	}
}

func buildPresentationLayer(listService *application.ListService) *PresentationLayer {
	listPresenter := presenters.NewListPresenter()

	return &PresentationLayer{
		ListPresenter: listPresenter,
		ListHandlers:  handlers.NewListHandlers(listService, listPresenter),
	}
}

// buildDependencies creates all application dependencies
func buildDependencies(db *database.Database, logger *logging.Logger) *Dependencies {
	repos := buildRepositories(db)
	listService := application.NewListService(repos.ListRepo, repos.ItemRepo)

	return &Dependencies{
		DB:           db,
		Logger:       logger,
		Repositories: repos,
		ListService:  listService,
		Presentation: buildPresentationLayer(listService),
	}
}

func setupRoutes(deps *Dependencies, cfg *config.AppConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	setupHTTPLogging(r, deps, cfg)
	r.Use(middleware.Recoverer)

	// Static assets
	mountStaticAssets(r)

	// System endpoints
	setupSystemRoutes(r, deps)

	// Pages
	r.Group(func(r chi.Router) {
		if cfg.CSRF.Enabled() {
			r.Use(webmiddleware.CSRF(cfg.CSRF, deps.Logger.WithComponent("csrf")))
		}
		deps.Presentation.ListHandlers.RegisterRoutes(r)
	})

	return r
}

func setupHTTPLogging(r *chi.Mux, deps *Dependencies, cfg *config.AppConfig) {
	if cfg.HTTPLogPath == "" {
		return
	}

	logFile, err := os.OpenFile(cfg.HTTPLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		deps.Logger.Error("Failed to open HTTP log file", "error", err, "path", cfg.HTTPLogPath)
		return
	}
	// logFile stays open for the server lifetime

	httpLogger := httplog.NewLogger("superlists", httplog.Options{
		Writer:   logFile,
		JSON:     true,
		LogLevel: httplog.LevelByName(cfg.Logging.Level),
		QuietDownRoutes: []string{
			"/health",
		},
		QuietDownPeriod: 10 * time.Second,
	})
	r.Use(httplog.RequestLogger(httpLogger))

	deps.Logger.Info("HTTP request logging enabled", "path", cfg.HTTPLogPath)
}

func mountStaticAssets(r chi.Router) {
	sub, _ := fs.Sub(templates.FS, "assets")
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(sub))))
}

func setupSystemRoutes(r chi.Router, deps *Dependencies) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		stats, err := deps.DB.Health(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		response := map[string]interface{}{
			"status":   "ok",
			"database": stats,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			deps.Logger.WithContext(r.Context()).Error("Failed to encode health response", "error", err)
		}
	})
}

func startServer(router *chi.Mux, addr string, logger *logging.Logger) {
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sig
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(serverCtx, 30*time.Second)
		defer cancel()

		go func() {
			<-shutdownCtx.Done()
			if shutdownCtx.Err() == context.DeadlineExceeded {
				logger.Error("Graceful shutdown timed out, forcing exit")
				os.Exit(1)
			}
		}()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
			os.Exit(1)
		}
		serverStopCtx()
	}()

	logger.Info("Server starting", "address", addr)
	err := server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}

	<-serverCtx.Done()
	logger.Info("Server stopped")
}
