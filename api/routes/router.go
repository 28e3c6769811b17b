package routes

import (
	"net/http"

	"github.com/aisolutions-bi/dashboard-backend/api/controllers"
	dashboardctrl "github.com/aisolutions-bi/dashboard-backend/api/controllers/dashboard"
	"github.com/aisolutions-bi/dashboard-backend/api/middleware"
	"github.com/aisolutions-bi/dashboard-backend/internal/dashboard"
	"github.com/aisolutions-bi/dashboard-backend/pkg/config"
	"github.com/aisolutions-bi/dashboard-backend/pkg/logger"
	"github.com/aisolutions-bi/dashboard-backend/pkg/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps carries everything the router wires together.
type Deps struct {
	Logger    *logger.Logger
	Config    *config.Config
	Service   dashboard.Service
	Readiness controllers.ReadinessChecker
	Registry  *prometheus.Registry
	Requests  *metrics.RequestMetrics
}

// New builds the HTTP router. Probes and the metrics endpoint sit outside
// the API middleware chain so they stay cheap and unlogged.
func New(deps Deps) http.Handler {
	health := controllers.NewHealthController(deps.Logger, deps.Readiness)
	panels := dashboardctrl.NewController(deps.Logger, deps.Service)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer(deps.Logger))

	r.Get("/health/live", health.Live)
	r.Get("/health/ready", health.Ready)
	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RequestID(deps.Logger))
		r.Use(middleware.Logging(deps.Logger))
		r.Use(middleware.Metrics(deps.Requests))
		r.Use(middleware.CORS(deps.Config.HTTP.AllowedOrigins))

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/range", panels.Range)
			r.Get("/executive", panels.Executive)
			r.Get("/sales", panels.Sales)
			r.Get("/product", panels.Product)
			r.Post("/query", panels.Query)
		})
	})

	return r
}
