package main

import (
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"routine-advisor/internal/catalog"
	"routine-advisor/internal/config"
	"routine-advisor/internal/http"
	"routine-advisor/internal/llm"
	"routine-advisor/internal/search"
	"routine-advisor/internal/service"
	"routine-advisor/internal/storage"
	"routine-advisor/web"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize the selections database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Load the embedded product catalog
	products, err := catalog.Load()
	if err != nil {
		log.Fatalf("Failed to load product catalog: %v", err)
	}
	slog.Info("Product catalog loaded", "products", len(products.All()))

	// Create the chat completions client (external service layer)
	providerClient := llm.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel)

	// Pick the search path: the keyed Tavily backend with a keyless
	// DuckDuckGo fallback when a key is configured, otherwise the keyless
	// DuckDuckGo + Wikipedia aggregator.
	duckduckgo := search.NewDuckDuckGo("")
	var gatherer service.ContextGatherer
	if cfg.TavilyAPIKey != "" {
		gatherer = search.NewFallbackSearcher(
			search.NewTavily("", cfg.TavilyAPIKey), duckduckgo, cfg.SearchTimeout)
		slog.Info("Search configured", "mode", "tavily+fallback")
	} else {
		gatherer = search.NewAggregator(cfg.SearchTimeout, duckduckgo, search.NewWikipedia(""))
		slog.Info("Search configured", "mode", "keyless-aggregate")
	}

	chatService := service.NewChatService(providerClient, gatherer)
	routineService := service.NewPassthroughService(providerClient)

	deps := &http.Deps{
		ChatService:    chatService,
		RoutineService: routineService,
		Catalog:        products,
		Selections:     storage.NewSelectionRepo(db),
		DB:             db,
		IndexHTML:      web.IndexHTML,
	}
	router := http.NewRouter(deps)

	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("Provider configuration", "base_url", cfg.OpenAIBaseURL, "model", cfg.OpenAIModel)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
