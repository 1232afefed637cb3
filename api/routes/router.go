package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pradom/storefront/api/controllers"
	basketcontrollers "github.com/pradom/storefront/api/controllers/basket"
	catalogcontrollers "github.com/pradom/storefront/api/controllers/catalog"
	sessioncontrollers "github.com/pradom/storefront/api/controllers/session"
	"github.com/pradom/storefront/api/middleware"
	"github.com/pradom/storefront/api/responses"
	"github.com/pradom/storefront/internal/storefront"
	"github.com/pradom/storefront/pkg/config"
	pkgerrors "github.com/pradom/storefront/pkg/errors"
	"github.com/pradom/storefront/pkg/logger"
	"github.com/pradom/storefront/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisPinger redis.Pinger,
	catalog catalogcontrollers.Reader,
	storefrontService storefront.Service,
	requestObserver middleware.RequestObserver,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg, requestObserver),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeMethodNotAllowed, "method not allowed"))
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, redisPinger, logg))
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/categories", catalogcontrollers.Categories(catalog))
		r.Get("/products", catalogcontrollers.ProductList(catalog, logg))
		r.Get("/products/{productId}", catalogcontrollers.ProductDetail(catalog, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(middleware.SessionOptions{
				CookieName: cfg.Session.CookieName,
				TTL:        cfg.Session.TTL,
				Secure:     cfg.App.IsProd(),
			}, logg))

			r.Route("/session", func(r chi.Router) {
				r.Get("/", sessioncontrollers.SessionFetch(storefrontService, logg))
				r.Delete("/", sessioncontrollers.SessionReset(storefrontService, logg))
				r.Get("/products", sessioncontrollers.SessionProducts(storefrontService, logg))
				r.Put("/filters", sessioncontrollers.SessionSetFilters(storefrontService, logg))
				r.Put("/basket/open", sessioncontrollers.SessionSetBasketOpen(storefrontService, logg))
				r.Put("/menu/open", sessioncontrollers.SessionSetMenuOpen(storefrontService, logg))
			})

			r.Route("/basket", func(r chi.Router) {
				r.Get("/", basketcontrollers.BasketFetch(storefrontService, logg))
				r.Post("/items", basketcontrollers.BasketAddItem(storefrontService, logg))
				r.Patch("/items", basketcontrollers.BasketUpdateQuantity(storefrontService, logg))
				r.Delete("/items", basketcontrollers.BasketRemoveItem(storefrontService, logg))
				r.Put("/delivery-method", basketcontrollers.BasketSetDeliveryMethod(storefrontService, logg))
			})
		})
	})

	return r
}
