package router

import (
	"github.com/go-chi/chi/v5"

	"barberia/internal/handlers/auth"
	"barberia/internal/handlers/barber"
	"barberia/internal/handlers/booking"
	"barberia/internal/handlers/catalogue"
	"barberia/internal/handlers/schedule"
	serviceHandler "barberia/internal/handlers/service"
)

type DomainHandlers struct {
	Auth      auth.Handler
	Barber    barber.Handler
	Service   serviceHandler.Handler
	Schedule  schedule.Handler
	Booking   booking.Handler
	Catalogue catalogue.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Barber.Router(routerGroup)
		r.DomainHandlers.Service.Router(routerGroup)
		r.DomainHandlers.Schedule.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Catalogue.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
