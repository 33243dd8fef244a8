package router

import (
	"bloom/internal/handlers/admin"
	"bloom/internal/handlers/booking"
	"bloom/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "bloom/docs" // swagger docs
)

type DomainHandlers struct {
	Booking booking.Handler
	Admin   admin.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	Auth           middleware.Auth
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.App.RequestID, r.App.Tracing)

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Group(func(routerGroup chi.Router) {
		routerGroup.Use(r.App.RateLimit())

		r.DomainHandlers.Booking.Exec(routerGroup)

		routerGroup.Route("/v1", func(v1 chi.Router) {
			r.DomainHandlers.Booking.Router(v1)

			v1.Group(func(operator chi.Router) {
				operator.Use(r.Auth.APIKey)

				r.DomainHandlers.Admin.Router(operator)
			})
		})
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, auth middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		Auth:           auth,
	}
}
