package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/Renal37/farm-to-home/internal/database"
	"github.com/Renal37/farm-to-home/internal/models"
	mock_services "github.com/Renal37/farm-to-home/internal/services/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	events []models.OrderCompleted
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event models.OrderCompleted) error {
	p.events = append(p.events, event)
	return p.err
}

func transactInline(storage *mock_services.MockOrderStorage) {
	storage.EXPECT().Transact(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	)
}

func storedOrder(payment models.PaymentStatus, delivery models.DeliveryStatus) *database.OrderDB {
	return &database.OrderDB{
		ID:             "order",
		UserID:         "user",
		TotalAmount:    250,
		PaymentStatus:  database.PaymentStatusDB{PaymentStatus: payment},
		DeliveryStatus: database.DeliveryStatusDB{DeliveryStatus: delivery},
	}
}

func TestCreateOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mock_services.NewMockOrderStorage(ctrl)
	publisher := &recordingPublisher{}
	service := NewOrderService(storage, publisher)
	service.newID = func() string { return "order" }

	t.Run("Должен отклонить некорректную сумму", func(t *testing.T) {
		for _, amount := range []float64{0, -1, math.NaN(), math.Inf(1), 1e8, 0.004, 99999999.999} {
			_, err := service.CreateOrder(context.Background(), "user", amount)
			assert.ErrorIs(t, err, ErrInvalidAmount)
		}
	})

	t.Run("Должен создать заказ в статусах ожидания", func(t *testing.T) {
		storage.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, order *database.OrderDB) error {
				assert.Equal(t, "user", order.UserID)
				assert.Equal(t, 12.35, order.TotalAmount)
				return nil
			},
		)

		order, err := service.CreateOrder(context.Background(), "user", 12.3456)
		require.NoError(t, err)

		assert.Equal(t, "order", order.ID)
		assert.Equal(t, models.PaymentPending, order.PaymentStatus)
		assert.Equal(t, models.DeliveryPending, order.DeliveryStatus)
		assert.Empty(t, publisher.events)
	})

	t.Run("Должен вернуть ошибку хранилища", func(t *testing.T) {
		storage.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(database.ErrDuplicateOrder)

		_, err := service.CreateOrder(context.Background(), "user", 10)
		assert.ErrorIs(t, err, database.ErrDuplicateOrder)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	errHandler := errors.New("обработчик упал")

	testCases := []struct {
		testName       string
		payment        *models.PaymentStatus
		delivery       *models.DeliveryStatus
		prepare        func(storage *mock_services.MockOrderStorage)
		publishErr     error
		expectedEvents int
		expected       models.Order
		err            error
	}{
		{
			testName: "Должен вернуть ошибку, если статусы не переданы",
			err:      ErrNothingToUpdate,
		},
		{
			testName: "Должен отклонить неизвестный статус оплаты",
			payment:  ptr(models.PaymentStatus("refunded")),
			err:      ErrInvalidStatus,
		},
		{
			testName: "Должен отклонить неизвестный статус доставки",
			delivery: ptr(models.DeliveryStatus("lost")),
			err:      ErrInvalidStatus,
		},
		{
			testName: "Должен вернуть ошибку для несуществующего заказа",
			payment:  ptr(models.PaymentCompleted),
			prepare: func(storage *mock_services.MockOrderStorage) {
				transactInline(storage)
				storage.EXPECT().FindOrderForUpdate(gomock.Any(), "order").Return(nil, nil)
			},
			err: ErrOrderNotFound,
		},
		{
			testName: "Не должен публиковать событие для неполного заказа",
			payment:  ptr(models.PaymentCompleted),
			prepare: func(storage *mock_services.MockOrderStorage) {
				transactInline(storage)
				storage.EXPECT().FindOrderForUpdate(gomock.Any(), "order").
					Return(storedOrder(models.PaymentPending, models.DeliveryShipped), nil)
				storage.EXPECT().UpdateOrderStatus(gomock.Any(), "order",
					database.PaymentStatusDB{PaymentStatus: models.PaymentCompleted},
					database.DeliveryStatusDB{DeliveryStatus: models.DeliveryShipped},
				).Return(nil)
			},
			expected: models.Order{
				ID:             "order",
				TotalAmount:    250,
				PaymentStatus:  models.PaymentCompleted,
				DeliveryStatus: models.DeliveryShipped,
			},
		},
		{
			testName: "Должен опубликовать событие для оплаченного и доставленного заказа",
			delivery: ptr(models.DeliveryDelivered),
			prepare: func(storage *mock_services.MockOrderStorage) {
				transactInline(storage)
				storage.EXPECT().FindOrderForUpdate(gomock.Any(), "order").
					Return(storedOrder(models.PaymentCompleted, models.DeliveryShipped), nil)
				storage.EXPECT().UpdateOrderStatus(gomock.Any(), "order", gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedEvents: 1,
			expected: models.Order{
				ID:             "order",
				TotalAmount:    250,
				PaymentStatus:  models.PaymentCompleted,
				DeliveryStatus: models.DeliveryDelivered,
			},
		},
		{
			testName: "Должен повторно опубликовать событие для уже завершенного заказа",
			payment:  ptr(models.PaymentCompleted),
			prepare: func(storage *mock_services.MockOrderStorage) {
				transactInline(storage)
				storage.EXPECT().FindOrderForUpdate(gomock.Any(), "order").
					Return(storedOrder(models.PaymentCompleted, models.DeliveryDelivered), nil)
				storage.EXPECT().UpdateOrderStatus(gomock.Any(), "order", gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedEvents: 1,
			expected: models.Order{
				ID:             "order",
				TotalAmount:    250,
				PaymentStatus:  models.PaymentCompleted,
				DeliveryStatus: models.DeliveryDelivered,
			},
		},
		{
			testName: "Должен вернуть ошибку обработчика события",
			payment:  ptr(models.PaymentCompleted),
			delivery: ptr(models.DeliveryDelivered),
			prepare: func(storage *mock_services.MockOrderStorage) {
				transactInline(storage)
				storage.EXPECT().FindOrderForUpdate(gomock.Any(), "order").
					Return(storedOrder(models.PaymentPending, models.DeliveryPending), nil)
				storage.EXPECT().UpdateOrderStatus(gomock.Any(), "order", gomock.Any(), gomock.Any()).Return(nil)
			},
			publishErr:     errHandler,
			expectedEvents: 1,
			err:            errHandler,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storage := mock_services.NewMockOrderStorage(ctrl)
			if tc.prepare != nil {
				tc.prepare(storage)
			}

			publisher := &recordingPublisher{err: tc.publishErr}
			order, err := NewOrderService(storage, publisher).UpdateOrderStatus(context.Background(), "order", tc.payment, tc.delivery)

			assert.Len(t, publisher.events, tc.expectedEvents)
			for _, event := range publisher.events {
				assert.Equal(t, models.OrderCompleted{OrderID: "order", UserID: "user"}, event)
			}

			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, order)
		})
	}
}

func TestCancelOrder(t *testing.T) {
	testCases := []struct {
		testName string
		stored   *database.OrderDB
		userID   string
		cancel   bool
		err      error
	}{
		{
			testName: "Должен вернуть ошибку для несуществующего заказа",
			userID:   "user",
			err:      ErrOrderNotFound,
		},
		{
			testName: "Должен скрыть чужой заказ",
			stored:   storedOrder(models.PaymentPending, models.DeliveryPending),
			userID:   "stranger",
			err:      ErrOrderNotFound,
		},
		{
			testName: "Не должен отменять оплаченный заказ",
			stored:   storedOrder(models.PaymentCompleted, models.DeliveryPending),
			userID:   "user",
			err:      ErrOrderCannotBeCancelled,
		},
		{
			testName: "Не должен отменять отправленный заказ",
			stored:   storedOrder(models.PaymentPending, models.DeliveryShipped),
			userID:   "user",
			err:      ErrOrderCannotBeCancelled,
		},
		{
			testName: "Должен отменить новый заказ",
			stored:   storedOrder(models.PaymentPending, models.DeliveryPending),
			userID:   "user",
			cancel:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storage := mock_services.NewMockOrderStorage(ctrl)
			transactInline(storage)
			storage.EXPECT().FindOrderForUpdate(gomock.Any(), "order").Return(tc.stored, nil)
			if tc.cancel {
				storage.EXPECT().UpdateOrderStatus(gomock.Any(), "order",
					database.PaymentStatusDB{PaymentStatus: models.PaymentPending},
					database.DeliveryStatusDB{DeliveryStatus: models.DeliveryCancelled},
				).Return(nil)
			}

			err := NewOrderService(storage, &recordingPublisher{}).CancelOrder(context.Background(), "order", tc.userID)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGetOrders(t *testing.T) {
	storage, orders, _ := newShop()
	ctx := context.Background()

	empty, err := orders.GetOrders(ctx, "user")
	require.NoError(t, err)
	assert.Empty(t, empty)

	created, err := orders.CreateOrder(ctx, "user", 30)
	require.NoError(t, err)
	_, err = orders.CreateOrder(ctx, "other", 40)
	require.NoError(t, err)

	list, err := orders.GetOrders(ctx, "user")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Len(t, storage.orders, 2)
}

func TestOrderChangesNotifyListeners(t *testing.T) {
	storage, orders, _ := newShop(1)
	ctx := context.Background()

	var changes int
	orders.OnChange(func(ctx context.Context) {
		// Слушатель вызывается вне транзакции
		assert.Nil(t, ctx.Value(memoryTxKey{}))
		changes++
	})

	first, err := orders.CreateOrder(ctx, "user", 30)
	require.NoError(t, err)
	assert.Equal(t, 1, changes)

	_, err = orders.UpdateOrderStatus(ctx, first.ID, ptr(models.PaymentCompleted), ptr(models.DeliveryDelivered))
	require.NoError(t, err)
	assert.Equal(t, 2, changes)
	assert.Equal(t, []int{1}, storage.levelsOf("user"))

	second, err := orders.CreateOrder(ctx, "user", 40)
	require.NoError(t, err)
	require.NoError(t, orders.CancelOrder(ctx, second.ID, "user"))
	assert.Equal(t, 4, changes)

	_, err = orders.CreateOrder(ctx, "user", 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	_, err = orders.UpdateOrderStatus(ctx, "missing", ptr(models.PaymentCompleted), nil)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.ErrorIs(t, orders.CancelOrder(ctx, first.ID, "user"), ErrOrderCannotBeCancelled)
	assert.Equal(t, 4, changes)
}

func TestOrderChangeNotSentOnRollback(t *testing.T) {
	storage := newMemoryStorage(1)
	bus := NewEventBus()
	bus.Subscribe(func(context.Context, models.OrderCompleted) error {
		return errors.New("обработчик упал")
	})
	orders := NewOrderService(storage, bus)

	ctx := context.Background()
	order, err := orders.CreateOrder(ctx, "user", 10)
	require.NoError(t, err)

	var changes int
	orders.OnChange(func(context.Context) { changes++ })

	_, err = orders.UpdateOrderStatus(ctx, order.ID, ptr(models.PaymentCompleted), ptr(models.DeliveryDelivered))
	require.Error(t, err)

	assert.Zero(t, changes)
	assert.Equal(t, models.PaymentPending, storage.orders[order.ID].PaymentStatus.PaymentStatus)
}
