package models

import (
	"github.com/Renal37/farm-to-home/internal/utils"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// IsValid сообщает, входит ли статус оплаты в допустимый набор.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}

type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliveryShipped   DeliveryStatus = "shipped"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryCancelled DeliveryStatus = "cancelled"
)

// IsValid сообщает, входит ли статус доставки в допустимый набор.
func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryPending, DeliveryShipped, DeliveryDelivered, DeliveryCancelled:
		return true
	}
	return false
}

type Order struct {
	ID             string            `json:"id"`
	TotalAmount    float64           `json:"total_amount"`
	PaymentStatus  PaymentStatus     `json:"payment_status"`
	DeliveryStatus DeliveryStatus    `json:"delivery_status"`
	CreatedAt      utils.RFC3339Date `json:"created_at"`
}

// IsCompleted сообщает, засчитывается ли заказ в прогресс вех:
// заказ оплачен и доставлен.
func IsCompleted(payment PaymentStatus, delivery DeliveryStatus) bool {
	return payment == PaymentCompleted && delivery == DeliveryDelivered
}

// CanBeCancelled сообщает, можно ли отменить заказ в текущем состоянии.
func CanBeCancelled(payment PaymentStatus, delivery DeliveryStatus) bool {
	return payment == PaymentPending && delivery == DeliveryPending
}

type NewOrder struct {
	TotalAmount *float64 `json:"total_amount"`
}

type OrderStatusUpdate struct {
	PaymentStatus  *PaymentStatus  `json:"payment_status"`
	DeliveryStatus *DeliveryStatus `json:"delivery_status"`
}

// OrderCompleted публикуется, когда обновление существующего заказа
// оставляет его оплаченным и доставленным.
type OrderCompleted struct {
	OrderID string
	UserID  string
}

type OrderStats struct {
	TotalOrders     int `json:"total_orders"`
	DeliveredOrders int `json:"delivered_orders"`
	PendingOrders   int `json:"pending_orders"`
}
