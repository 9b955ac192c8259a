package router

import (
	"github.com/go-chi/chi/v5"

	"hostal/internal/handlers/auth"
	"hostal/internal/handlers/business"
	"hostal/internal/handlers/housekeeping"
	"hostal/internal/handlers/payment"
	"hostal/internal/handlers/qraccess"
	"hostal/internal/handlers/reservation"
	"hostal/internal/handlers/room"
	"hostal/internal/handlers/staff"
	"hostal/internal/handlers/subscription"
	"hostal/internal/handlers/taxdoc"
	"hostal/internal/handlers/user"
)

type DomainHandlers struct {
	Auth         auth.Handler
	User         user.Handler
	Business     business.Handler
	Room         room.Handler
	Staff        staff.Handler
	Reservation  reservation.Handler
	Housekeeping housekeeping.Handler
	Subscription subscription.Handler
	Payment      payment.Handler
	TaxDocument  taxdoc.Handler
	QRAccess     qraccess.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Business.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Staff.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Housekeeping.Router(routerGroup)
		r.DomainHandlers.Subscription.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.TaxDocument.Router(routerGroup)
		r.DomainHandlers.QRAccess.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
