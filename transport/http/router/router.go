package router

import (
	"rentdesk/internal/handlers/auth"
	"rentdesk/internal/handlers/customer"
	"rentdesk/internal/handlers/equipment"
	"rentdesk/internal/handlers/lookup"
	"rentdesk/internal/handlers/page"
	"rentdesk/internal/handlers/rental"
	"rentdesk/internal/handlers/vehicle"
	"rentdesk/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth      auth.Handler
	Page      page.Handler
	Customer  customer.Handler
	Equipment equipment.Handler
	Rental    rental.Handler
	Vehicle   vehicle.Handler
	Lookup    lookup.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	Auth           middleware.Auth
}

// SetupRoutes mounts every domain handler behind the session gate. Routes that do not
// need a session are listed as skipped in the permission file.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Group(func(routerGroup chi.Router) {
		routerGroup.Use(r.App.RateLimit())
		routerGroup.Use(r.Auth.Auth)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Page.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Equipment.Router(routerGroup)
		r.DomainHandlers.Rental.Router(routerGroup)
		r.DomainHandlers.Vehicle.Router(routerGroup)
		r.DomainHandlers.Lookup.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, auth middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		Auth:           auth,
	}
}
