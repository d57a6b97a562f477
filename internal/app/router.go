package router

import (
	"net/http"

	"github.com/Renal37/farm-to-home/internal/logger"
	"github.com/Renal37/farm-to-home/internal/metrics"
	"github.com/Renal37/farm-to-home/internal/middlewares"
	"github.com/Renal37/farm-to-home/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Config struct {
	// Endpoint адрес и порт, на которых сервер будет слушать входящие запросы.
	Endpoint string
	// OperatorKey ключ для служебных маршрутов /api/internal.
	OperatorKey string
}

type Router struct {
	config   Config
	services middlewares.Services
}

// New создает новый экземпляр Router с заданными зависимостями.
func New(
	config Config,
	authService models.AuthService,
	jwtService models.JWTService,
	orderService models.OrderService,
	milestoneService models.MilestoneService,
	statsService models.StatsService,
) *Router {
	return &Router{
		config: config,
		services: middlewares.Services{
			Auth:      authService,
			JWT:       jwtService,
			Order:     orderService,
			Milestone: milestoneService,
			Stats:     statsService,
		},
	}
}

// Handler возвращает настроенный роутер.
func (router *Router) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer,
		metrics.Middleware,
		logger.RequestLogger,
		middlewares.ServiceInjectorMiddleware(router.services),
	)

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		// Публичная статистика заказов.
		r.Get("/stats", GetStats)

		r.Route("/user", func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware().WithExcludedPaths(
				"/api/user/register",
				"/api/user/login",
			).Middleware)

			r.With(middlewares.JSONMiddleware[models.UnknownUser]).Post("/register", Register)
			r.With(middlewares.JSONMiddleware[models.UnknownUser]).Post("/login", Login)

			r.With(middlewares.JSONMiddleware[models.NewOrder]).Post("/orders", CreateOrder)
			r.Get("/orders", GetOrders)
			r.Post("/orders/{orderID}/cancel", CancelOrder)

			r.Get("/milestones", GetMilestones)
			r.Get("/coupons", GetCoupons)
		})

		// Служебные маршруты для оператора магазина и процессов оплаты/доставки.
		r.Route("/internal", func(r chi.Router) {
			r.Use(middlewares.OperatorMiddleware(router.config.OperatorKey))

			r.With(middlewares.JSONMiddleware[models.NewMilestone]).Post("/milestones", CreateMilestone)
			r.With(middlewares.JSONMiddleware[models.OrderStatusUpdate]).Patch("/orders/{orderID}/status", UpdateOrderStatus)
		})
	})

	return r
}

// Run запускает HTTP сервер на заданном endpoint и начинает принимать запросы.
func (router *Router) Run() error {
	return http.ListenAndServe(router.config.Endpoint, router.Handler())
}
