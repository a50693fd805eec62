package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"mealplan-api/internal/config"
	"mealplan-api/internal/handlers"
	"mealplan-api/internal/llm"
	"mealplan-api/internal/middleware"
	"mealplan-api/internal/planner"
	"mealplan-api/internal/repository"
	"mealplan-api/internal/service"
	"mealplan-api/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting meal plan api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"llm_provider", cfg.LLM.Provider,
		"log_level", cfg.LogLevel,
	)

	ctx := context.Background()

	// Initialize the generation backend
	generator, err := newGenerator(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize generation backend", "error", err)
		os.Exit(1)
	}
	if closer, ok := generator.(llm.Closer); ok {
		defer closer.Close()
	}

	// Load the instruction template once at startup
	synth, err := planner.NewSynthesizer(generator, cfg.LLM.PromptPath)
	if err != nil {
		log.Error("failed to initialize synthesizer", "error", err)
		os.Exit(1)
	}

	// Initialize the plan store
	planRepo, err := repository.NewFirestorePlanRepository(ctx, cfg.Firestore)
	if err != nil {
		log.Error("failed to initialize firestore repository", "error", err)
		os.Exit(1)
	}
	defer planRepo.Close()

	log.Info("firestore client initialized",
		"project_id", cfg.Firestore.ProjectID,
		"database_id", cfg.Firestore.DatabaseID,
		"collection", cfg.Firestore.Collection,
	)

	// Initialize services and handlers
	planService := service.NewPlanService(synth, planRepo)
	planHandler := handlers.NewPlanHandler(planService, log)
	healthHandler := handlers.NewHealthHandler(log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// Meal plan routes
	r.Route("/meal-plans", func(r chi.Router) {
		r.Post("/generate", planHandler.Generate)
		r.Get("/{mealPlanID}", planHandler.Read)
		r.Put("/{mealPlanID}", planHandler.Update)
		r.Delete("/{mealPlanID}", planHandler.Delete)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// newGenerator selects the generation backend from configuration.
func newGenerator(ctx context.Context, cfg *config.Config, log *slog.Logger) (llm.Generator, error) {
	switch strings.ToLower(cfg.LLM.Provider) {
	case "openai":
		return llm.NewOpenAIClient(cfg.LLM, log), nil
	case "gemini":
		return llm.NewGeminiClient(ctx, cfg.LLM)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.LLM.Provider)
	}
}
