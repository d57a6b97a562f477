package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Renal37/farm-to-home/internal/database"
	"github.com/Renal37/farm-to-home/internal/logger"
	"github.com/Renal37/farm-to-home/internal/models"
	"github.com/Renal37/farm-to-home/internal/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxOrderAmount верхняя граница суммы для колонки NUMERIC(10, 2)
const maxOrderAmount = 1e8

// Определяем ошибки, связанные с заказами
var (
	ErrInvalidAmount          = errors.New("сумма заказа должна быть положительной")
	ErrInvalidStatus          = errors.New("недопустимый статус заказа")
	ErrNothingToUpdate        = errors.New("не указан ни один статус для обновления")
	ErrOrderNotFound          = errors.New("заказ не найден")
	ErrOrderCannotBeCancelled = errors.New("заказ уже нельзя отменить")
)

// OrderService представляет сервис для работы с заказами
type OrderService struct {
	storage   OrderStorage        // Хранилище данных для работы с заказами
	publisher orderEventPublisher // Получатель событий о завершении заказов
	newID     func() string
	listeners []func(ctx context.Context)
}

// Интерфейс хранилища для работы с заказами
//
//go:generate mockgen -destination=mocks/mock_order_storage.go -package=mock_services . OrderStorage
type OrderStorage interface {
	Transact(ctx context.Context, fn func(ctx context.Context) error) error
	CreateOrder(ctx context.Context, order *database.OrderDB) error
	FindOrderForUpdate(ctx context.Context, orderID string) (*database.OrderDB, error)
	FindUserOrders(ctx context.Context, userID string) ([]database.OrderDB, error)
	UpdateOrderStatus(ctx context.Context, orderID string, payment database.PaymentStatusDB, delivery database.DeliveryStatusDB) error
}

type orderEventPublisher interface {
	Publish(ctx context.Context, event models.OrderCompleted) error
}

// NewOrderService создает новый экземпляр OrderService
func NewOrderService(storage OrderStorage, publisher orderEventPublisher) *OrderService {
	return &OrderService{
		storage:   storage,
		publisher: publisher,
		newID:     uuid.NewString,
	}
}

// OnChange регистрирует listener, который вызывается после каждого
// зафиксированного создания, обновления или отмены заказа.
// Регистрация выполняется до начала обработки запросов.
func (o *OrderService) OnChange(listener func(ctx context.Context)) {
	o.listeners = append(o.listeners, listener)
}

func (o *OrderService) notifyChanged(ctx context.Context) {
	for _, listener := range o.listeners {
		listener(ctx)
	}
}

// CreateOrder создает новый заказ в статусах pending/pending.
// Создание заказа никогда не приводит к выдаче вех.
func (o *OrderService) CreateOrder(ctx context.Context, userID string, totalAmount float64) (models.Order, error) {
	// Проверяется уже округленная до копеек сумма, именно она попадает в NUMERIC(10, 2)
	amount := math.Round(totalAmount*100) / 100
	if math.IsNaN(amount) || amount <= 0 || amount >= maxOrderAmount {
		return models.Order{}, ErrInvalidAmount
	}

	order := &database.OrderDB{
		ID:             o.newID(),
		UserID:         userID,
		TotalAmount:    amount,
		PaymentStatus:  database.PaymentStatusDB{PaymentStatus: models.PaymentPending},
		DeliveryStatus: database.DeliveryStatusDB{DeliveryStatus: models.DeliveryPending},
	}

	if err := o.storage.CreateOrder(ctx, order); err != nil {
		return models.Order{}, fmt.Errorf("не удалось создать заказ: %w", err)
	}

	logger.Log.Info("created order",
		zap.String("orderID", order.ID),
		zap.String("userID", userID),
		zap.Float64("amount", order.TotalAmount),
	)
	o.notifyChanged(ctx)

	return toOrderModel(*order), nil
}

// GetOrders возвращает список заказов пользователя в порядке создания
func (o *OrderService) GetOrders(ctx context.Context, userID string) ([]models.Order, error) {
	orders, err := o.storage.FindUserOrders(ctx, userID)
	if err != nil {
		return []models.Order{}, err
	}

	result := make([]models.Order, len(orders))
	for i, order := range orders {
		result[i] = toOrderModel(order)
	}

	return result, nil
}

// UpdateOrderStatus обновляет статусы оплаты и/или доставки существующего заказа.
// Если после записи заказ оплачен и доставлен, в той же транзакции публикуется
// OrderCompleted; ошибка обработчика откатывает и само обновление.
func (o *OrderService) UpdateOrderStatus(
	ctx context.Context,
	orderID string,
	payment *models.PaymentStatus,
	delivery *models.DeliveryStatus,
) (models.Order, error) {
	if payment == nil && delivery == nil {
		return models.Order{}, ErrNothingToUpdate
	}
	if payment != nil && !payment.IsValid() {
		return models.Order{}, fmt.Errorf("%w: оплата %q", ErrInvalidStatus, *payment)
	}
	if delivery != nil && !delivery.IsValid() {
		return models.Order{}, fmt.Errorf("%w: доставка %q", ErrInvalidStatus, *delivery)
	}

	var result models.Order
	var completed bool

	err := o.storage.Transact(ctx, func(ctx context.Context) error {
		order, err := o.storage.FindOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}

		if payment != nil {
			order.PaymentStatus = database.PaymentStatusDB{PaymentStatus: *payment}
		}
		if delivery != nil {
			order.DeliveryStatus = database.DeliveryStatusDB{DeliveryStatus: *delivery}
		}

		if err := o.storage.UpdateOrderStatus(ctx, order.ID, order.PaymentStatus, order.DeliveryStatus); err != nil {
			return err
		}

		completed = order.IsCompleted()
		if completed {
			if err := o.publisher.Publish(ctx, models.OrderCompleted{OrderID: order.ID, UserID: order.UserID}); err != nil {
				return err
			}
		}

		result = toOrderModel(*order)
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	logger.Log.Info("updated order status",
		zap.String("orderID", result.ID),
		zap.String("payment", string(result.PaymentStatus)),
		zap.String("delivery", string(result.DeliveryStatus)),
		zap.Bool("completed", completed),
	)
	o.notifyChanged(ctx)

	return result, nil
}

// CancelOrder отменяет доставку заказа, пока он не оплачен и не отправлен.
// Чужой заказ считается ненайденным.
func (o *OrderService) CancelOrder(ctx context.Context, orderID, userID string) error {
	err := o.storage.Transact(ctx, func(ctx context.Context) error {
		order, err := o.storage.FindOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil || order.UserID != userID {
			return ErrOrderNotFound
		}

		if !models.CanBeCancelled(order.PaymentStatus.PaymentStatus, order.DeliveryStatus.DeliveryStatus) {
			return ErrOrderCannotBeCancelled
		}

		return o.storage.UpdateOrderStatus(ctx, order.ID, order.PaymentStatus,
			database.DeliveryStatusDB{DeliveryStatus: models.DeliveryCancelled})
	})
	if err != nil {
		return err
	}

	logger.Log.Info("cancelled order", zap.String("orderID", orderID), zap.String("userID", userID))
	o.notifyChanged(ctx)
	return nil
}

func toOrderModel(order database.OrderDB) models.Order {
	return models.Order{
		ID:             order.ID,
		TotalAmount:    order.TotalAmount,
		PaymentStatus:  order.PaymentStatus.PaymentStatus,
		DeliveryStatus: order.DeliveryStatus.DeliveryStatus,
		CreatedAt:      utils.RFC3339Date{Time: order.CreatedAt},
	}
}
