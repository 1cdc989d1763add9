package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/littlemoneyschool/tutor/backend/internal/handler/chat"
	"github.com/littlemoneyschool/tutor/backend/internal/handler/tutor"
	tutorModel "github.com/littlemoneyschool/tutor/backend/internal/model/tutor"
	"github.com/littlemoneyschool/tutor/backend/pkg/utils"
)

// Dependencies are the services the HTTP layer needs.
type Dependencies struct {
	Resolver       chat.Resolver
	Profile        tutorModel.Profile
	AIEnabled      bool
	AllowedOrigins []string
}

// NewRouter wires HTTP routes to core services.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	origins := deps.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]any{"status": "ok", "aiEnabled": deps.AIEnabled})
	})

	chatHandler := chat.New(deps.Resolver, originChecker(origins))
	tutorHandler := tutor.New(deps.Profile, deps.AIEnabled)

	r.Route("/api", func(api chi.Router) {
		chatHandler.RegisterRoutes(api)
		tutorHandler.RegisterRoutes(api)
	})

	return r
}

// originChecker applies the CORS allow-list to WebSocket upgrades.
func originChecker(allowed []string) func(*http.Request) bool {
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}
}
