package api

import (
	"log/slog"
	"net/http"

	"github.com/rs/cors"

	"github.com/vsinha/bbqplan/pkg/application/services/planner"
)

// Options configures the HTTP router
type Options struct {
	Planner        *planner.Planner
	Logger         *slog.Logger
	RateLimitRPS   float64
	RateLimitBurst int
	CORSOrigins    []string
}

// Router is the complete HTTP handler for the service
type Router struct {
	handler http.Handler
	limiter *RateLimiter
}

// NewRouter registers every route and wraps them in the middleware chain:
// request id, access log, CORS, then rate limiting.
func NewRouter(opts Options) (*Router, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	h, err := NewHandler(opts.Planner, logger)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/plan", h.Plan)
	mux.HandleFunc("POST /calcular", h.Plan)
	mux.HandleFunc("GET /api/categories", h.Categories)
	mux.HandleFunc("GET /api/schema", h.Schema)
	mux.HandleFunc("GET /healthz", h.Health)

	limiter := NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst)

	c := cors.New(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	})

	var handler http.Handler = limiter.Middleware(mux)
	handler = c.Handler(handler)
	handler = AccessLog(logger)(handler)
	handler = RequestID(handler)

	return &Router{handler: handler, limiter: limiter}, nil
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.handler.ServeHTTP(w, r)
}

// Close stops background work owned by the router
func (rt *Router) Close() {
	rt.limiter.Stop()
}
