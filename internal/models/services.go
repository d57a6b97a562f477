package models

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

//go:generate mockgen -destination=mocks/mock_auth.go . AuthService
type AuthService interface {
	Register(ctx context.Context, user UnknownUser) error

	Login(ctx context.Context, user UnknownUser) error

	GetUser(ctx context.Context, login string) (*User, error)
}

//go:generate mockgen -destination=mocks/mock_jwt.go . JWTService
type JWTService interface {
	GenerateJWT(subject string) (string, error)

	ValidateToken(token string) (*jwt.Token, error)
}

//go:generate mockgen -destination=mocks/mock_order.go . OrderService
type OrderService interface {
	CreateOrder(ctx context.Context, userID string, totalAmount float64) (Order, error)

	GetOrders(ctx context.Context, userID string) ([]Order, error)

	UpdateOrderStatus(ctx context.Context, orderID string, payment *PaymentStatus, delivery *DeliveryStatus) (Order, error)

	CancelOrder(ctx context.Context, orderID, userID string) error
}

//go:generate mockgen -destination=mocks/mock_milestone.go . MilestoneService
type MilestoneService interface {
	ListMilestones(ctx context.Context) ([]Milestone, error)

	CreateMilestone(ctx context.Context, milestone NewMilestone) (Milestone, error)

	GetUserMilestones(ctx context.Context, userID string) ([]Coupon, error)
}

//go:generate mockgen -destination=mocks/mock_stats.go . StatsService
type StatsService interface {
	GetOrderStats(ctx context.Context) (OrderStats, error)
}
