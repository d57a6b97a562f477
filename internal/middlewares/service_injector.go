package middlewares

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Renal37/farm-to-home/internal/models"
)

type key int

const (
	AuthServiceKey key = iota
	JwtServiceKey
	OrderServiceKey
	MilestoneServiceKey
	StatsServiceKey
)

// Services набор сервисов, доступных обработчикам через контекст запроса.
type Services struct {
	Auth      models.AuthService
	JWT       models.JWTService
	Order     models.OrderService
	Milestone models.MilestoneService
	Stats     models.StatsService
}

func ServiceInjectorMiddleware(services Services) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), AuthServiceKey, services.Auth)
			ctx = context.WithValue(ctx, JwtServiceKey, services.JWT)
			ctx = context.WithValue(ctx, OrderServiceKey, services.Order)
			ctx = context.WithValue(ctx, MilestoneServiceKey, services.Milestone)
			ctx = context.WithValue(ctx, StatsServiceKey, services.Stats)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetServiceFromContext достает сервис из контекста. Если сервиса нет,
// отвечает 500 и возвращает nil.
func GetServiceFromContext[Service interface{}](w http.ResponseWriter, r *http.Request, serviceKey key) *Service {
	foundService, ok := r.Context().Value(serviceKey).(Service)

	if !ok {
		http.Error(w, fmt.Sprintf("Service wasn't found in context by key %v", serviceKey), http.StatusInternalServerError)
		return nil
	}

	return &foundService
}
