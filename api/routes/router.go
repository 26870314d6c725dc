package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trailmarket/checkout-backend/api/controllers"
	"github.com/trailmarket/checkout-backend/api/middleware"
	checkoutsvc "github.com/trailmarket/checkout-backend/internal/checkout"
	"github.com/trailmarket/checkout-backend/internal/products"
	"github.com/trailmarket/checkout-backend/internal/vendorfees"
	"github.com/trailmarket/checkout-backend/pkg/config"
	"github.com/trailmarket/checkout-backend/pkg/db"
	"github.com/trailmarket/checkout-backend/pkg/logger"
	"github.com/trailmarket/checkout-backend/pkg/metrics"
	"github.com/trailmarket/checkout-backend/pkg/redis"
)

// NewRouter declares every route statically. redisClient may be nil; the
// checkout idempotency cache is skipped when it is.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	metricsHandler http.Handler,
	checkoutService checkoutsvc.Service,
	productsService products.Service,
	vendorFeesService vendorfees.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS),
	)

	var redisP redis.Pinger
	if redisClient != nil {
		redisP = redisClient
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		checkoutHandler := controllers.Checkout(checkoutService, logg)
		if redisClient != nil {
			r.With(middleware.Idempotency(redisClient, cfg.Checkout.IdempotencyTTL, logg)).
				Post("/checkout", checkoutHandler)
		} else {
			r.Post("/checkout", checkoutHandler)
		}

		r.Get("/products", controllers.ListProducts(productsService, logg))

		r.Route("/vendors/{vendorID}", func(r chi.Router) {
			r.Get("/products", controllers.ListVendorProducts(productsService, logg))
			r.Get("/fees", controllers.GetVendorFees(vendorFeesService, logg))
		})
	})

	return r
}
