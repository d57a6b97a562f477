package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrDuplicateMilestone     = errors.New("веха с таким уровнем уже существует")
	ErrDuplicateCouponCode    = errors.New("код купона уже существует")
	ErrDuplicateUserMilestone = errors.New("веха уже получена пользователем")
	ErrMissingReference       = errors.New("пользователь или веха не существует")
)

const (
	couponCodeConstraint    = "user_milestones_coupon_code_key"
	userMilestoneConstraint = "user_milestones_user_milestone_key"
)

const (
	InsertMilestoneQuery = `
		INSERT INTO
			milestones (level, discount_percentage, description, icon)
		VALUES ($1, $2, $3, $4)
		RETURNING
			id
	`
	SelectMilestonesQuery = `
		SELECT
			id,
			level,
			discount_percentage,
			description,
			icon
		FROM
			milestones
		ORDER BY
			level
	`
	SelectMilestonesAtOrBelowQuery = `
		SELECT
			id,
			level,
			discount_percentage,
			description,
			icon
		FROM
			milestones
		WHERE
			level <= $1
		ORDER BY
			level
	`
	SelectAchievedMilestoneIDsQuery = `
		SELECT
			milestone_id
		FROM
			user_milestones
		WHERE
			user_id = $1
	`
	InsertUserMilestoneQuery = `
		INSERT INTO
			user_milestones (user_id, milestone_id, achieved_at, coupon_code, is_used, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING
			id
	`
	SelectUserMilestonesQuery = `
		SELECT
			um.id,
			um.user_id::text,
			um.achieved_at,
			um.coupon_code,
			um.is_used,
			um.expires_at,
			m.id,
			m.level,
			m.discount_percentage,
			m.description,
			m.icon
		FROM
			user_milestones um
			JOIN milestones m ON m.id = um.milestone_id
		WHERE
			um.user_id = $1
		ORDER BY
			um.achieved_at, m.level
	`
)

// MilestoneDB запись каталога вех
type MilestoneDB struct {
	ID                 int64
	Level              int    // Количество завершенных заказов для получения вехи
	DiscountPercentage int    // Скидка по купону, в процентах
	Description        string // Описание для отображения
	Icon               string // CSS-класс иконки
}

// UserMilestoneDB достижение пользователем вехи вместе с купоном
type UserMilestoneDB struct {
	ID          int64
	UserID      string
	MilestoneID int64
	AchievedAt  time.Time
	CouponCode  string
	IsUsed      bool
	ExpiresAt   time.Time
}

// UserMilestoneWithMilestoneDB достижение вместе с данными вехи
type UserMilestoneWithMilestoneDB struct {
	UserMilestoneDB
	Milestone MilestoneDB
}

// CreateMilestone добавляет веху в каталог и проставляет ей идентификатор
func (d *Database) CreateMilestone(ctx context.Context, milestone *MilestoneDB) error {
	err := d.executor(ctx).QueryRow(ctx, InsertMilestoneQuery,
		milestone.Level, milestone.DiscountPercentage, milestone.Description, milestone.Icon,
	).Scan(&milestone.ID)
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateMilestone
		}
		return fmt.Errorf("ошибка создания вехи: %w", err)
	}

	return nil
}

// FindMilestones возвращает весь каталог вех по возрастанию уровня
func (d *Database) FindMilestones(ctx context.Context) ([]MilestoneDB, error) {
	return d.queryMilestones(ctx, SelectMilestonesQuery)
}

// FindMilestonesAtOrBelow возвращает вехи с уровнем не выше level
func (d *Database) FindMilestonesAtOrBelow(ctx context.Context, level int) ([]MilestoneDB, error) {
	return d.queryMilestones(ctx, SelectMilestonesAtOrBelowQuery, level)
}

func (d *Database) queryMilestones(ctx context.Context, query string, args ...interface{}) ([]MilestoneDB, error) {
	var result []MilestoneDB

	rows, err := d.executor(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("не удалось выполнить запрос вех: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item MilestoneDB
		if err := rows.Scan(&item.ID, &item.Level, &item.DiscountPercentage, &item.Description, &item.Icon); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании строки вехи: %w", err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка после чтения строк вех: %w", err)
	}

	return result, nil
}

// FindAchievedMilestoneIDs возвращает множество идентификаторов вех, уже полученных пользователем
func (d *Database) FindAchievedMilestoneIDs(ctx context.Context, userID string) (map[int64]struct{}, error) {
	result := make(map[int64]struct{})

	rows, err := d.executor(ctx).Query(ctx, SelectAchievedMilestoneIDsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("не удалось выполнить запрос полученных вех: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании полученной вехи: %w", err)
		}
		result[id] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка после чтения полученных вех: %w", err)
	}

	return result, nil
}

// CreateUserMilestone сохраняет достижение вехи пользователем
func (d *Database) CreateUserMilestone(ctx context.Context, record *UserMilestoneDB) error {
	err := d.executor(ctx).QueryRow(ctx, InsertUserMilestoneQuery,
		record.UserID, record.MilestoneID, record.AchievedAt, record.CouponCode, record.IsUsed, record.ExpiresAt,
	).Scan(&record.ID)
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) {
			switch {
			case e.Code == pgerrcode.UniqueViolation && e.ConstraintName == couponCodeConstraint:
				return ErrDuplicateCouponCode
			case e.Code == pgerrcode.UniqueViolation && e.ConstraintName == userMilestoneConstraint:
				return ErrDuplicateUserMilestone
			case e.Code == pgerrcode.ForeignKeyViolation:
				return ErrMissingReference
			}
		}
		return fmt.Errorf("ошибка создания достижения: %w", err)
	}

	return nil
}

// FindUserMilestones возвращает достижения пользователя вместе с данными вех
func (d *Database) FindUserMilestones(ctx context.Context, userID string) ([]UserMilestoneWithMilestoneDB, error) {
	var result []UserMilestoneWithMilestoneDB

	rows, err := d.executor(ctx).Query(ctx, SelectUserMilestonesQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("не удалось выполнить запрос достижений: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item UserMilestoneWithMilestoneDB
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.AchievedAt, &item.CouponCode, &item.IsUsed, &item.ExpiresAt,
			&item.Milestone.ID, &item.Milestone.Level, &item.Milestone.DiscountPercentage,
			&item.Milestone.Description, &item.Milestone.Icon,
		); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании строки достижения: %w", err)
		}
		item.MilestoneID = item.Milestone.ID
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка после чтения строк достижений: %w", err)
	}

	return result, nil
}
