package services

import (
	"context"
	"sync"

	"github.com/Renal37/farm-to-home/internal/models"
)

// OrderCompletedHandler обрабатывает событие завершения заказа.
type OrderCompletedHandler func(ctx context.Context, event models.OrderCompleted) error

// EventBus синхронно доставляет события подписчикам внутри процесса.
type EventBus struct {
	mu       sync.RWMutex
	handlers []OrderCompletedHandler
}

func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe добавляет обработчик события OrderCompleted.
func (b *EventBus) Subscribe(handler OrderCompletedHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers = append(b.handlers, handler)
}

// Publish вызывает обработчики в порядке подписки и возвращает первую ошибку.
// После ошибки оставшиеся обработчики не вызываются.
func (b *EventBus) Publish(ctx context.Context, event models.OrderCompleted) error {
	b.mu.RLock()
	handlers := make([]OrderCompletedHandler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			return err
		}
	}

	return nil
}
