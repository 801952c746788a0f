package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/api/controllers"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/api/middleware"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/auth"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/cart"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/catalog"
	checkoutsvc "github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/checkout"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/cms"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/hero"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/reviews"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/wishlist"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/auth/session"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/config"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/enums"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/logger"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/metrics"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/redis"
)

type sessionManager interface {
	session.AccessSessionChecker
	Rotate(context.Context, string, string) (string, string, error)
	Revoke(context.Context, string) error
}

// Deps carries everything the router needs. All services are required; the
// metrics registry is optional and skips the /metrics endpoint when nil.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       db.Pinger
	Redis    *redis.Client
	Sessions sessionManager

	Auth     auth.Service
	Catalog  catalog.Service
	CMS      cms.Service
	Hero     hero.Service
	Cart     cart.Service
	Wishlist wishlist.Service
	Reviews  reviews.Service
	Checkout checkoutsvc.Service

	HTTPMetrics     *metrics.HTTPMetrics
	MetricsRegistry *prometheus.Registry
}

func NewRouter(d Deps) http.Handler {
	cfg := d.Config
	logg := d.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
		middleware.Metrics(d.HTTPMetrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, d.DB, d.Redis))
	})

	if d.MetricsRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.MetricsRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, d.Redis, logg)).Post("/login", controllers.AuthLogin(d.Auth, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, d.Redis, logg)).Post("/register", controllers.AuthRegister(d.Auth, logg))
		r.Post("/logout", controllers.AuthLogout(d.Sessions, cfg.JWT, logg))
		r.Post("/refresh", controllers.AuthRefresh(d.Sessions, cfg.JWT, logg))
	})

	// Storefront surface. No auth, guest carts keyed by header token.
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(d.Catalog, logg))
			r.Get("/{slug}", controllers.GetProductBySlug(d.Catalog, logg))
			r.Get("/{productID}/reviews", controllers.ListProductReviews(d.Reviews, logg))
		})
		r.Get("/search", controllers.SearchProducts(d.Catalog, logg))
		r.Get("/filter-meta", controllers.FilterMeta(d.Catalog, logg))
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", controllers.ListCategories(d.Catalog, logg))
			r.Get("/home", controllers.HomeCategories(d.Catalog, logg))
		})
		r.Get("/hero/carousel", controllers.HeroCarousel(d.Hero, logg))
		r.Get("/pages/{key}", controllers.GetPage(d.CMS, logg))
		r.Route("/legal", func(r chi.Router) {
			r.Get("/", controllers.ListLegalPages(d.CMS, logg))
			r.Get("/{slug}", controllers.GetLegalPage(d.CMS, logg))
		})
		r.Route("/guest/cart", func(r chi.Router) {
			r.Get("/", controllers.GetGuestCart(d.Cart, logg))
			r.Put("/items", controllers.SetGuestCartItem(d.Cart, logg))
			r.Delete("/items/{productID}", controllers.RemoveGuestCartItem(d.Cart, logg))
		})
		r.Post("/guest/checkout", controllers.GuestCheckout(d.Checkout, logg))
	})

	// Signed-in surface.
	r.Route("/api/v1/me", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, d.Sessions, logg))
		r.Use(middleware.Idempotency(d.Redis, logg))

		r.Get("/ping", controllers.PrivatePing())

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(d.Cart, logg))
			r.Put("/items", controllers.SetCartItem(d.Cart, logg))
			r.Delete("/items/{productID}", controllers.RemoveCartItem(d.Cart, logg))
			r.Delete("/", controllers.ClearCart(d.Cart, logg))
			r.Post("/merge", controllers.MergeGuestCart(d.Cart, logg))
		})
		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", controllers.GetWishlist(d.Wishlist, logg))
			r.Get("/{productID}", controllers.ContainsWishlistItem(d.Wishlist, logg))
			r.Put("/{productID}", controllers.AddWishlistItem(d.Wishlist, logg))
			r.Delete("/{productID}", controllers.RemoveWishlistItem(d.Wishlist, logg))
		})
		r.Post("/reviews", controllers.SubmitReview(d.Reviews, logg))
		r.Post("/checkout", controllers.Checkout(d.Checkout, logg))
	})

	r.Route("/api/admin/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, d.Redis, logg)).Post("/login", controllers.AdminAuthLogin(d.Auth, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, d.Sessions, logg))
		r.Use(middleware.RequireRole(string(enums.UserRoleAdmin), logg))
		r.Use(middleware.Idempotency(d.Redis, logg))

		r.Get("/ping", controllers.AdminPing())

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.AdminListProducts(d.Catalog, logg))
			r.Post("/", controllers.AdminCreateProduct(d.Catalog, logg))
			r.Get("/{id}", controllers.AdminGetProduct(d.Catalog, logg))
			r.Patch("/{id}", controllers.AdminUpdateProduct(d.Catalog, logg))
			r.Delete("/{id}", controllers.AdminDeleteProduct(d.Catalog, logg))
		})
		r.Route("/categories", func(r chi.Router) {
			r.Post("/", controllers.AdminCreateCategory(d.Catalog, logg))
			r.Patch("/{id}", controllers.AdminUpdateCategory(d.Catalog, logg))
			r.Delete("/{id}", controllers.AdminDeleteCategory(d.Catalog, logg))
		})
		r.Route("/hero", func(r chi.Router) {
			r.Route("/banners", func(r chi.Router) {
				r.Get("/", controllers.AdminListHeroBanners(d.Hero, logg))
				r.Post("/", controllers.AdminCreateHeroBanner(d.Hero, logg))
				r.Post("/reorder", controllers.AdminReorderHeroBanners(d.Hero, logg))
				r.Get("/{id}", controllers.AdminGetHeroBanner(d.Hero, logg))
				r.Patch("/{id}", controllers.AdminUpdateHeroBanner(d.Hero, logg))
				r.Delete("/{id}", controllers.AdminDeleteHeroBanner(d.Hero, logg))
			})
			r.Route("/settings", func(r chi.Router) {
				r.Get("/", controllers.AdminGetHeroSettings(d.Hero, logg))
				r.Patch("/", controllers.AdminUpdateHeroSettings(d.Hero, logg))
			})
		})
		r.Route("/pages", func(r chi.Router) {
			r.Get("/", controllers.AdminListPageKeys(d.CMS, logg))
			r.Get("/{key}", controllers.GetPage(d.CMS, logg))
			r.Put("/{key}", controllers.AdminUpdatePage(d.CMS, logg))
			r.Patch("/{key}/field", controllers.AdminSetPageField(d.CMS, logg))
		})
		r.Route("/legal", func(r chi.Router) {
			r.Post("/", controllers.AdminCreateLegalPage(d.CMS, logg))
			r.Patch("/{id}", controllers.AdminUpdateLegalPage(d.CMS, logg))
			r.Delete("/{id}", controllers.AdminDeleteLegalPage(d.CMS, logg))
		})
		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", controllers.AdminListReviews(d.Reviews, logg))
			r.Post("/{id}/approve", controllers.AdminApproveReview(d.Reviews, logg))
			r.Post("/{id}/reject", controllers.AdminRejectReview(d.Reviews, logg))
		})
	})

	return r
}
