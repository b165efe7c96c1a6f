package router

import (
	"github.com/go-chi/chi/v5"

	"tzatlas/internal/handlers/schedule"
	"tzatlas/internal/handlers/zone"
)

type DomainHandlers struct {
	Zone     zone.Handler
	Schedule schedule.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Zone.Router(routerGroup)
		r.DomainHandlers.Schedule.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
