package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"assetgen/internal/http/handlers"
	"assetgen/internal/middleware"
)

// RouterOptions tune the middleware stack.
type RouterOptions struct {
	RateLimitPerMin int
}

func NewRouter(app *handlers.App, opts RouterOptions) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, chimw.RealIP, chimw.Recoverer, middleware.Logger(*app.Logger))
	r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute))

	// Health
	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/catalog", func(r chi.Router) {
		r.Get("/", app.ListCatalog)
		r.Get("/groups", app.ListGroups)
		r.Get("/export.zip", app.ExportZip)
	})

	r.Get("/v1/specs/*", app.SpecDocument)
	r.Get("/v1/prompts/*", app.Prompt)
	r.Get("/v1/assets/*", app.Asset)

	r.NotFound(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(stdhttp.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":"not_found","message":"route not found"}}` + "\n"))
	})

	return r
}
