package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shopwave/shopwave-backend/api/controllers"
	"github.com/shopwave/shopwave-backend/api/middleware"
	"github.com/shopwave/shopwave-backend/internal/cart"
	"github.com/shopwave/shopwave-backend/internal/catalog"
	checkoutsvc "github.com/shopwave/shopwave-backend/internal/checkout"
	"github.com/shopwave/shopwave-backend/internal/notifier"
	"github.com/shopwave/shopwave-backend/internal/orders"
	"github.com/shopwave/shopwave-backend/internal/profile"
	"github.com/shopwave/shopwave-backend/internal/settings"
	"github.com/shopwave/shopwave-backend/pkg/config"
	"github.com/shopwave/shopwave-backend/pkg/kv"
	"github.com/shopwave/shopwave-backend/pkg/logger"
	"github.com/shopwave/shopwave-backend/pkg/metrics"
	pkgredis "github.com/shopwave/shopwave-backend/pkg/redis"
)

type Dependencies struct {
	Config    *config.Config
	Logger    *logger.Logger
	Store     *kv.Store
	Redis     pkgredis.IdempotencyStore
	Registry  *prometheus.Registry
	HTTPStats *metrics.HTTPMetrics

	Catalog  *catalog.Service
	Cart     *cart.Service
	Checkout *checkoutsvc.Service
	Profile  *profile.Service
	Settings *settings.Service
	Orders   *orders.Service
	Feed     *notifier.Feed
}

func NewRouter(deps Dependencies) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
		middleware.Metrics(deps.HTTPStats),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.Store))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Idempotency(deps.Redis, logg))

		r.Get("/categories", controllers.CategoryList(deps.Catalog))
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(deps.Catalog, logg))
			r.Get("/{productId}", controllers.ProductDetail(deps.Catalog, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(deps.Cart))
			r.Delete("/", controllers.CartClear(deps.Cart, logg))
			r.Post("/items", controllers.CartAddItem(deps.Cart, deps.Catalog, logg))
			r.Put("/items/{productId}", controllers.CartUpdateItem(deps.Cart, logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(deps.Cart, logg))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/", controllers.CheckoutState(deps.Checkout, logg))
			r.Put("/shipping", controllers.CheckoutSelectTier(deps.Checkout, logg))
			r.Post("/details", controllers.CheckoutSubmitDetails(deps.Checkout, logg))
			r.Post("/place-order", controllers.CheckoutPlaceOrder(deps.Checkout, logg))
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", controllers.ProfileFetch(deps.Profile))
			r.Put("/", controllers.ProfileUpdate(deps.Profile, logg))
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/theme", controllers.ThemeFetch(deps.Settings))
			r.Put("/theme", controllers.ThemeUpdate(deps.Settings, logg))
		})

		r.Get("/orders", controllers.OrderList(deps.Orders))
		r.Get("/notifications", controllers.NotificationList(deps.Feed))
	})

	return r
}
