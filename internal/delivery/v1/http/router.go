package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/momozvault/go-backend/docs" // generated swagger docs
	"github.com/momozvault/go-backend/internal/usecase"
	"github.com/momozvault/go-backend/pkg/logger"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

// UseCases bundles everything the route tree depends on.
type UseCases struct {
	Catalog usecase.CatalogUC
	Cart    usecase.CartUC
	Order   usecase.OrderUC
	Payment usecase.PaymentUC
	Review  usecase.ReviewUC
	Auth    usecase.AuthUC
}

func (r *Router) Init(uc UseCases, webhookSecret string) {
	r.router.Use(middleware.Recoverer)
	r.router.Use(middleware.RequestID)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerProductRoutes(v1, NewProductHandler(uc.Catalog, r.logger))
		registerCartRoutes(v1, NewCartHandler(uc.Cart, r.logger))
		registerOrderRoutes(v1, NewOrderHandler(uc.Order, r.logger), NewPaymentHandler(uc.Payment, webhookSecret, r.logger))
		registerReviewRoutes(v1, NewReviewHandler(uc.Review, r.logger))
		registerAdminRoutes(v1, NewAdminHandler(uc.Auth, uc.Catalog, uc.Order, uc.Review, r.logger), uc.Auth, r.logger)
	})
}

func registerProductRoutes(router chi.Router, h *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Get("/{id}", h.getProduct)
	})
	router.Get("/categories", h.listCategories)
}

func registerCartRoutes(router chi.Router, h *CartHandler) {
	router.Route("/cart", func(c chi.Router) {
		c.Get("/", h.getCart)
		c.Delete("/", h.clearCart)
		c.Post("/items", h.addToCart)
		c.Put("/items/{productID}", h.updateQuantity)
		c.Delete("/items/{productID}", h.removeFromCart)
		c.Get("/currency", h.getCurrency)
		c.Put("/currency", h.setCurrency)
	})
}

func registerOrderRoutes(router chi.Router, oh *OrderHandler, ph *PaymentHandler) {
	router.Route("/orders", func(o chi.Router) {
		o.Post("/", oh.checkout)
		o.Get("/", oh.trackOrders)
		o.Get("/{id}", oh.getOrder)
		o.Post("/{id}/pay", ph.initializePayment)
	})
	router.Route("/payments", func(p chi.Router) {
		p.Post("/webhook", ph.webhook)
		p.Get("/verify", ph.verifyPayment)
	})
}

func registerReviewRoutes(router chi.Router, h *ReviewHandler) {
	router.Route("/reviews", func(rv chi.Router) {
		rv.Post("/", h.submitReview)
		rv.Get("/", h.listReviews)
	})
}

func registerAdminRoutes(router chi.Router, h *AdminHandler, authUC usecase.AuthUC, logger logger.Logger) {
	router.Route("/admin", func(ad chi.Router) {
		ad.Post("/login", h.login)

		ad.Group(func(protected chi.Router) {
			protected.Use(AdminOnly(authUC, logger))

			protected.Post("/products", h.createProduct)
			protected.Put("/products/{id}", h.updateProduct)
			protected.Delete("/products/{id}", h.deleteProduct)

			protected.Get("/orders", h.listOrders)
			protected.Patch("/orders/{id}/status", h.changeOrderStatus)

			protected.Get("/reviews", h.listAllReviews)
			protected.Get("/analytics/sales", h.salesSummary)
		})
	})
}
