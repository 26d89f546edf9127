package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gamehubph/gamehub-backend/api/controllers"
	"github.com/gamehubph/gamehub-backend/api/middleware"
	"github.com/gamehubph/gamehub-backend/internal/accounts"
	"github.com/gamehubph/gamehub-backend/internal/cart"
	"github.com/gamehubph/gamehub-backend/internal/catalog"
	checkoutsvc "github.com/gamehubph/gamehub-backend/internal/checkout"
	"github.com/gamehubph/gamehub-backend/pkg/config"
	"github.com/gamehubph/gamehub-backend/pkg/logger"
	"github.com/gamehubph/gamehub-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	registry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	accountStore *accounts.Store,
	supplier *catalog.Supplier,
	cartStore *cart.Store,
	checkoutService checkoutsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	if registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", controllers.AuthRegister(accountStore, logg))
		r.Post("/login", controllers.AuthLogin(accountStore, cfg.JWT, logg))
		r.Post("/logout", controllers.AuthLogout(accountStore, logg))
		r.With(middleware.Auth(cfg.JWT, accountStore, logg)).Get("/me", controllers.AuthMe(accountStore, logg))
	})

	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", controllers.ListProducts(supplier, logg))
		r.Get("/{productId}", controllers.GetProduct(supplier, logg))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, accountStore, logg))

		r.Route("/api/v1/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(cartStore, logg))
			r.Delete("/", controllers.CartClear(cartStore, logg))
			r.Post("/items", controllers.CartAddItem(cartStore, supplier, logg))
			r.Patch("/items/{productId}", controllers.CartUpdateItem(cartStore, logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(cartStore, logg))
			r.Post("/promo", controllers.CartApplyPromo(cartStore, logg))
		})

		r.Post("/api/v1/checkout", controllers.Checkout(checkoutService, logg))
	})

	return r
}
