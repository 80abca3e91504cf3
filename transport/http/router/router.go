package router

import (
	"tzconv/config"
	"tzconv/internal/handlers/savedtimezone"
	"tzconv/internal/handlers/timezone"
	"tzconv/shared/metrics"

	"github.com/go-chi/chi/v5"
)

const metricsPath = "/metrics"

type DomainHandlers struct {
	Timezone      timezone.Handler
	SavedTimezone savedtimezone.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	config         *config.Config
	metrics        *metrics.Metrics
}

// SetupRoutes mounts the API under the configured path prefix and the
// Prometheus exposition at the root.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route(r.config.App.PathPrefix, func(routerGroup chi.Router) {
		r.DomainHandlers.Timezone.Router(routerGroup)
		r.DomainHandlers.SavedTimezone.Router(routerGroup)
	})

	router.Handle(metricsPath, r.metrics.Handler())
}

func New(domainHandlers DomainHandlers, config *config.Config, metrics *metrics.Metrics) Router {
	return Router{
		DomainHandlers: domainHandlers,
		config:         config,
		metrics:        metrics,
	}
}
