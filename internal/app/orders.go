package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Renal37/farm-to-home/internal/middlewares"
	"github.com/Renal37/farm-to-home/internal/models"
	"github.com/Renal37/farm-to-home/internal/services"
	"github.com/go-chi/chi/v5"
)

// CreateOrder обрабатывает HTTP-запрос на создание нового заказа текущего пользователя.
func CreateOrder(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.NewOrder](w, r)

	if data.TotalAmount == nil {
		http.Error(w, "В запросе отсутствует сумма заказа", http.StatusBadRequest)
		return
	}

	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)
	user := middlewares.GetUserFromContext(w, r)
	if orderService == nil || user == nil {
		return
	}

	order, err := (*orderService).CreateOrder(r.Context(), user.ID, *data.TotalAmount)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			http.Error(w, "Сумма заказа некорректна", http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, fmt.Sprintf("Произошла ошибка при создании заказа: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusCreated, order)
}

// GetOrders обрабатывает HTTP-запрос на получение списка заказов пользователя.
func GetOrders(w http.ResponseWriter, r *http.Request) {
	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)
	user := middlewares.GetUserFromContext(w, r)
	if orderService == nil || user == nil {
		return
	}

	orders, err := (*orderService).GetOrders(r.Context(), user.ID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Произошла ошибка при получении заказов: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	// Если у пользователя нет заказов, возвращаем статус "Нет контента".
	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, orders)
}

// CancelOrder отменяет неоплаченный и неотправленный заказ пользователя.
func CancelOrder(w http.ResponseWriter, r *http.Request) {
	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)
	user := middlewares.GetUserFromContext(w, r)
	if orderService == nil || user == nil {
		return
	}

	err := (*orderService).CancelOrder(r.Context(), chi.URLParam(r, "orderID"), user.ID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			http.Error(w, "Заказ не найден", http.StatusNotFound)
			return
		}

		if errors.Is(err, services.ErrOrderCannotBeCancelled) {
			http.Error(w, "Заказ уже нельзя отменить", http.StatusConflict)
			return
		}

		http.Error(w, fmt.Sprintf("Произошла ошибка при отмене заказа: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// UpdateOrderStatus обновляет статусы оплаты и доставки заказа.
// Перевод заказа в оплаченный и доставленный выдает покупателю новые вехи.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.OrderStatusUpdate](w, r)

	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)
	if orderService == nil {
		return
	}

	order, err := (*orderService).UpdateOrderStatus(r.Context(), chi.URLParam(r, "orderID"), data.PaymentStatus, data.DeliveryStatus)
	if err != nil {
		if errors.Is(err, services.ErrNothingToUpdate) || errors.Is(err, services.ErrInvalidStatus) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if errors.Is(err, services.ErrOrderNotFound) {
			http.Error(w, "Заказ не найден", http.StatusNotFound)
			return
		}

		http.Error(w, fmt.Sprintf("Произошла ошибка при обновлении заказа: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, order)
}
