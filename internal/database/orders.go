package database

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/Renal37/farm-to-home/internal/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Определение пользовательских ошибок
var (
	ErrDuplicateOrder = errors.New("заказ уже существует") // Ошибка дублирования заказа
)

// SQL-запросы для работы с заказами
const (
	InsertOrderQuery = `
		INSERT INTO
			orders (id, user_id, total_amount, payment_status, delivery_status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING
			created_at
	`
	SelectOrderForUpdateQuery = `
		SELECT
			id::text,
			user_id::text,
			total_amount,
			payment_status,
			delivery_status,
			created_at
		FROM
			orders
		WHERE
			id = $1
		FOR UPDATE
	`
	SelectUserOrdersQuery = `
		SELECT
			id::text,
			user_id::text,
			total_amount,
			payment_status,
			delivery_status,
			created_at
		FROM
			orders
		WHERE
			user_id = $1
		ORDER BY
			created_at
	`
	UpdateOrderStatusQuery = `
		UPDATE
			orders
		SET
			payment_status = $2,
			delivery_status = $3
		WHERE
			id = $1
	`
	CountCompletedOrdersQuery = `
		SELECT
			COUNT(*)
		FROM
			orders
		WHERE
			user_id = $1
			AND payment_status = 'completed'
			AND delivery_status = 'delivered'
	`
	SelectOrderStatsQuery = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE delivery_status = 'delivered'),
			COUNT(*) FILTER (WHERE delivery_status = 'pending')
		FROM
			orders
	`
)

// Структура для хранения информации о заказе
type OrderDB struct {
	ID             string           // Идентификатор заказа
	UserID         string           // Идентификатор покупателя
	TotalAmount    float64          // Сумма заказа
	PaymentStatus  PaymentStatusDB  // Статус оплаты
	DeliveryStatus DeliveryStatusDB // Статус доставки
	CreatedAt      time.Time        // Дата и время создания
}

// IsCompleted сообщает, засчитывается ли заказ в прогресс вех.
func (o OrderDB) IsCompleted() bool {
	return models.IsCompleted(o.PaymentStatus.PaymentStatus, o.DeliveryStatus.DeliveryStatus)
}

// Статус оплаты с возможностью преобразования в/из базы данных
type PaymentStatusDB struct {
	models.PaymentStatus
}

func (s *PaymentStatusDB) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		return fmt.Errorf("статус оплаты должен быть строкой, а не %T", value)
	}

	*s = PaymentStatusDB{models.PaymentStatus(strVal)}
	return nil
}

func (s PaymentStatusDB) Value() (driver.Value, error) {
	return string(s.PaymentStatus), nil
}

// Статус доставки с возможностью преобразования в/из базы данных
type DeliveryStatusDB struct {
	models.DeliveryStatus
}

func (s *DeliveryStatusDB) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		return fmt.Errorf("статус доставки должен быть строкой, а не %T", value)
	}

	*s = DeliveryStatusDB{models.DeliveryStatus(strVal)}
	return nil
}

func (s DeliveryStatusDB) Value() (driver.Value, error) {
	return string(s.DeliveryStatus), nil
}

// Создание нового заказа. Время создания проставляется базой данных.
func (d *Database) CreateOrder(ctx context.Context, order *OrderDB) error {
	err := d.executor(ctx).QueryRow(ctx, InsertOrderQuery,
		order.ID, order.UserID, order.TotalAmount, order.PaymentStatus, order.DeliveryStatus,
	).Scan(&order.CreatedAt)
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateOrder
		}
		return fmt.Errorf("ошибка создания заказа: %w", err)
	}

	return nil
}

// Поиск заказа по его ID с блокировкой строки до конца транзакции
func (d *Database) FindOrderForUpdate(ctx context.Context, orderID string) (*OrderDB, error) {
	order := &OrderDB{}

	err := d.executor(ctx).QueryRow(ctx, SelectOrderForUpdateQuery, orderID).Scan(
		&order.ID, &order.UserID, &order.TotalAmount, &order.PaymentStatus, &order.DeliveryStatus, &order.CreatedAt,
	)
	if err != nil {
		// Если заказ не найден, возвращаем nil без ошибки
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		var e *pgconn.PgError
		// Некорректный UUID считаем отсутствующим заказом
		if errors.As(err, &e) && e.Code == pgerrcode.InvalidTextRepresentation {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка поиска заказа: %w", err)
	}

	return order, nil
}

// Поиск всех заказов пользователя
func (d *Database) FindUserOrders(ctx context.Context, userID string) ([]OrderDB, error) {
	var result []OrderDB

	rows, err := d.executor(ctx).Query(ctx, SelectUserOrdersQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска заказов: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderDB
		if err := rows.Scan(&item.ID, &item.UserID, &item.TotalAmount, &item.PaymentStatus, &item.DeliveryStatus, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("ошибка обработки строки с заказом: %w", err)
		}
		result = append(result, item)
	}

	// Проверка на ошибки при итерации по строкам
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации по строкам: %w", err)
	}

	return result, nil
}

// Обновление статусов оплаты и доставки заказа
func (d *Database) UpdateOrderStatus(ctx context.Context, orderID string, payment PaymentStatusDB, delivery DeliveryStatusDB) error {
	_, err := d.executor(ctx).Exec(ctx, UpdateOrderStatusQuery, orderID, payment, delivery)
	if err != nil {
		return fmt.Errorf("ошибка обновления статуса заказа: %w", err)
	}
	return nil
}

// Подсчет оплаченных и доставленных заказов пользователя
func (d *Database) CountCompletedOrders(ctx context.Context, userID string) (int, error) {
	var count int

	if err := d.executor(ctx).QueryRow(ctx, CountCompletedOrdersQuery, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("ошибка подсчета завершенных заказов: %w", err)
	}

	return count, nil
}

// Сводная статистика по всем заказам
func (d *Database) CountOrderStats(ctx context.Context) (models.OrderStats, error) {
	var stats models.OrderStats

	err := d.executor(ctx).QueryRow(ctx, SelectOrderStatsQuery).
		Scan(&stats.TotalOrders, &stats.DeliveredOrders, &stats.PendingOrders)
	if err != nil {
		return models.OrderStats{}, fmt.Errorf("ошибка подсчета статистики заказов: %w", err)
	}

	return stats, nil
}
