package router

import (
	"furever/internal/handlers/auth"
	"furever/internal/handlers/availability"
	"furever/internal/handlers/booking"
	"furever/internal/handlers/payment"
	"furever/internal/handlers/servicepackage"
	"furever/internal/handlers/user"
	"furever/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth           auth.Handler
	User           user.Handler
	Booking        booking.Handler
	Payment        payment.Handler
	ServicePackage servicepackage.Handler
	Availability   availability.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthMiddleware middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthMiddleware.APIKey)
		routerGroup.Use(r.AuthMiddleware.Auth)
		routerGroup.Use(r.AuthMiddleware.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.ServicePackage.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authMiddleware middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthMiddleware: authMiddleware,
	}
}
