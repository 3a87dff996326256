package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/bankgo/mspayment/api/handler"
)

type Handlers struct {
	Payment *apiHandler.PaymentHandler
	Health  *apiHandler.HealthHandler
}

// New wires the payment API. The paths are a published contract and must not
// change. authMiddleware may be nil, in which case the API is open.
func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	protect := func(h fasthttp.RequestHandler) fasthttp.RequestHandler {
		if authMiddleware == nil {
			return h
		}
		return authMiddleware(h)
	}

	r.GET("/health", handlers.Health.Check)

	r.GET("/api/payment", protect(handlers.Payment.List))
	r.GET("/api/payment/{id}", protect(handlers.Payment.Get))
	r.POST("/api/payment/{type}", protect(handlers.Payment.Create))
	r.PUT("/api/payment/{id}", protect(handlers.Payment.Update))
	r.DELETE("/api/payment/{id}", protect(handlers.Payment.Delete))
	r.GET("/api/payment/clientPayments/{idClient}", protect(handlers.Payment.ListByClient))
	r.GET("/api/payment/balance/{idClient}", protect(handlers.Payment.Balance))

	return r
}
