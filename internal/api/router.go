package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/devroster/engine/internal/api/handlers"
	mw "github.com/devroster/engine/internal/api/middleware"
)

type Dependencies struct {
	// HMACSecret, when non-empty, guards the mutating developer routes.
	HMACSecret        []byte
	RateLimitRPS      float64
	RateLimitBurst    int
	DevelopersHandler *handlers.DevelopersHandler
	HealthHandler     *handlers.HealthHandler
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS)
	if dep.RateLimitRPS > 0 {
		r.Use(mw.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst))
	}
	r.Use(chimid.Compress(5))

	hh := dep.HealthHandler
	if hh == nil {
		hh = handlers.NewHealthHandler(nil)
	}
	r.Get("/healthz", hh.Liveness)
	r.Get("/readyz", hh.Readiness)

	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("doc.json")))

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/developers", func(dr chi.Router) {
			dh := dep.DevelopersHandler

			dr.Get("/", dh.List)
			dr.Get("/email/{email}", dh.GetByEmail)
			dr.Get("/{id}", dh.Get)

			dr.Group(func(mut chi.Router) {
				if len(dep.HMACSecret) > 0 {
					mut.Use(mw.Auth(dep.HMACSecret))
				}
				mut.Post("/", dh.Create)
				mut.Put("/", dh.Update)
				mut.Delete("/{id}", dh.Delete)
			})
		})
	})

	return r
}
