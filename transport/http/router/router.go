package router

import (
	"lagovibes/internal/handlers/auth"
	"lagovibes/internal/handlers/availability"
	"lagovibes/internal/handlers/blockeddate"
	"lagovibes/internal/handlers/extraservice"
	"lagovibes/internal/handlers/owner"
	"lagovibes/internal/handlers/property"
	"lagovibes/internal/handlers/reservation"
	"lagovibes/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	User         user.Handler
	Property     property.Handler
	Owner        owner.Handler
	Reservation  reservation.Handler
	BlockedDate  blockeddate.Handler
	ExtraService extraservice.Handler
	Availability availability.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Property.Router(routerGroup)
		r.DomainHandlers.Owner.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.BlockedDate.Router(routerGroup)
		r.DomainHandlers.ExtraService.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
