package api

import (
	"github.com/Domenick1991/skyfare/internal/service/auth"
	"github.com/Domenick1991/skyfare/internal/service/checkout"
	"github.com/Domenick1991/skyfare/internal/service/fleet"
	"github.com/Domenick1991/skyfare/internal/service/flights"
	"github.com/gin-gonic/gin"
)

// NewRouter wires all handlers. Flights are public; checkout and ticket
// history need a session; fleet management additionally needs the admin role.
func NewRouter(
	authSvc auth.AuthUseCase,
	flightSvc flights.FlightUseCase,
	checkoutSvc checkout.CheckoutUseCase,
	fleetSvc fleet.FleetUseCase,
	cookieTTLSeconds int,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	authHandler := NewAuthHandler(authSvc, cookieTTLSeconds)
	flightHandler := NewFlightHandler(flightSvc)
	checkoutHandler := NewCheckoutHandler(checkoutSvc)
	fleetHandler := NewFleetHandler(fleetSvc)

	authHandler.Register(router.Group("/auth"))
	flightHandler.Register(router.Group("/flights"))

	authed := router.Group("/", AuthRequired(authSvc))
	checkoutHandler.Register(authed.Group("/checkout"))
	checkoutHandler.RegisterTickets(authed.Group("/tickets"))

	admin := authed.Group("/admin", AdminRequired())
	fleetHandler.Register(admin)

	return router
}
