package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"routine-advisor/internal/catalog"
	"routine-advisor/internal/handlers"
	"routine-advisor/internal/service"
	"routine-advisor/internal/storage"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	// ChatService handles /api/chat with optional search enrichment.
	ChatService service.ChatService
	// RoutineService handles /api/routine as a pure provider passthrough.
	RoutineService service.ChatService
	Catalog        *catalog.Catalog
	Selections     storage.SelectionStore
	DB             handlers.Pinger
	// IndexHTML is the embedded routine builder page served at /.
	IndexHTML string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	chatHandler := handlers.NewChatHandler(deps.ChatService)
	routineHandler := handlers.NewChatHandler(deps.RoutineService)
	productsHandler := handlers.NewProductsHandler(deps.Catalog)
	selectionsHandler := handlers.NewSelectionsHandler(deps.Selections, deps.Catalog)
	renderHandler := handlers.NewRenderHandler()
	healthHandler := handlers.NewHealthHandler(deps.DB)

	// Handlers are registered for all methods so the CORS middleware sees
	// preflight requests and the handlers answer disallowed verbs with
	// their 405 envelope.
	r.Route("/api", func(r chi.Router) {
		// Proxy endpoints carry the strict POST/OPTIONS CORS contract.
		strictCORS := CORS("POST, OPTIONS")
		r.With(strictCORS).Handle("/chat", chatHandler)
		r.With(strictCORS).Handle("/routine", routineHandler)
		r.With(strictCORS).Handle("/render", renderHandler)

		// Browser helper endpoints allow their own verbs.
		helperCORS := CORS("GET, PUT, DELETE, OPTIONS")
		r.With(helperCORS).Handle("/products", productsHandler)
		r.With(helperCORS).Handle("/health", healthHandler)
		r.Route("/selections/{clientID}", func(r chi.Router) {
			r.Use(helperCORS)
			r.Get("/", selectionsHandler.Get)
			r.Put("/", selectionsHandler.Put)
			r.Delete("/", selectionsHandler.Delete)
		})
	})

	// Serve the routine builder page at root
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(deps.IndexHTML))
	})

	return r
}
