package services

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/Renal37/farm-to-home/internal/database"
	"github.com/Renal37/farm-to-home/internal/logger"
	"github.com/Renal37/farm-to-home/internal/metrics"
	"github.com/Renal37/farm-to-home/internal/models"
	"github.com/Renal37/farm-to-home/internal/utils"
	"go.uber.org/zap"
)

// CouponValidity срок действия купона, выданного за веху.
const CouponValidity = 90 * 24 * time.Hour

const (
	// maxMilestoneLevel держит код купона MILE<level>_XXXXXXXX в пределах 20 символов
	maxMilestoneLevel    = 9999999
	maxDescriptionLength = 200
	maxIconLength        = 50
)

var (
	ErrInvalidMilestone   = errors.New("некорректные параметры вехи")
	ErrDuplicateMilestone = errors.New("веха с таким уровнем уже существует")
)

// MilestoneService выдает пользователям вехи лояльности и купоны к ним.
type MilestoneService struct {
	storage      MilestoneStorage
	now          func() time.Time
	generateCode func(level int) string
}

//go:generate mockgen -destination=mocks/mock_milestone_storage.go -package=mock_services . MilestoneStorage
type MilestoneStorage interface {
	Transact(ctx context.Context, fn func(ctx context.Context) error) error
	AfterCommit(ctx context.Context, action func(ctx context.Context))
	LockUser(ctx context.Context, userID string) error
	CountCompletedOrders(ctx context.Context, userID string) (int, error)
	FindMilestonesAtOrBelow(ctx context.Context, level int) ([]database.MilestoneDB, error)
	FindAchievedMilestoneIDs(ctx context.Context, userID string) (map[int64]struct{}, error)
	CreateUserMilestone(ctx context.Context, record *database.UserMilestoneDB) error
	CreateMilestone(ctx context.Context, milestone *database.MilestoneDB) error
	FindMilestones(ctx context.Context) ([]database.MilestoneDB, error)
	FindUserMilestones(ctx context.Context, userID string) ([]database.UserMilestoneWithMilestoneDB, error)
}

func NewMilestoneService(storage MilestoneStorage) *MilestoneService {
	return &MilestoneService{
		storage:      storage,
		now:          time.Now,
		generateCode: GenerateCouponCode,
	}
}

// HandleOrderCompleted выдает пользователю все вехи, на которые он получил право,
// но которых у него еще нет. Выдача атомарна: при ошибке не сохраняется ни одна веха.
// Метрики и лог выдачи пишутся только после фиксации внешней транзакции.
func (m *MilestoneService) HandleOrderCompleted(ctx context.Context, event models.OrderCompleted) error {
	var issued []issuedMilestone

	err := m.storage.Transact(ctx, func(ctx context.Context) error {
		var err error
		issued, err = m.award(ctx, event.UserID)
		return err
	})
	if err != nil {
		return fmt.Errorf("не удалось выдать вехи по заказу %s: %w", event.OrderID, err)
	}

	if len(issued) > 0 {
		m.storage.AfterCommit(ctx, func(context.Context) {
			reportIssued(event, issued)
		})
	}

	return nil
}

func reportIssued(event models.OrderCompleted, issued []issuedMilestone) {
	for _, item := range issued {
		metrics.RecordMilestoneIssued(item.level)
		logger.Log.Info("issued milestone coupon",
			zap.String("orderID", event.OrderID),
			zap.String("userID", event.UserID),
			zap.Int("level", item.level),
			zap.String("couponCode", item.record.CouponCode),
		)
	}
}

type issuedMilestone struct {
	level  int
	record *database.UserMilestoneDB
}

func (m *MilestoneService) award(ctx context.Context, userID string) ([]issuedMilestone, error) {
	// Параллельные завершения заказов одного пользователя выполняются по очереди
	if err := m.storage.LockUser(ctx, userID); err != nil {
		return nil, err
	}

	count, err := m.storage.CountCompletedOrders(ctx, userID)
	if err != nil {
		return nil, err
	}

	if count == 0 {
		return nil, nil
	}

	eligible, err := m.storage.FindMilestonesAtOrBelow(ctx, count)
	if err != nil {
		return nil, err
	}

	if len(eligible) == 0 {
		return nil, nil
	}

	achieved, err := m.storage.FindAchievedMilestoneIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Точность timestamptz в PostgreSQL микросекунды
	now := m.now().UTC().Truncate(time.Microsecond)

	var issued []issuedMilestone
	for _, milestone := range eligible {
		if _, ok := achieved[milestone.ID]; ok {
			continue
		}

		record := &database.UserMilestoneDB{
			UserID:      userID,
			MilestoneID: milestone.ID,
			AchievedAt:  now,
			CouponCode:  m.generateCode(milestone.Level),
			IsUsed:      false,
			ExpiresAt:   now.Add(CouponValidity),
		}

		if err := m.storage.CreateUserMilestone(ctx, record); err != nil {
			return nil, fmt.Errorf("веха уровня %d: %w", milestone.Level, err)
		}

		issued = append(issued, issuedMilestone{level: milestone.Level, record: record})
	}

	return issued, nil
}

// ListMilestones возвращает каталог вех по возрастанию уровня
func (m *MilestoneService) ListMilestones(ctx context.Context) ([]models.Milestone, error) {
	milestones, err := m.storage.FindMilestones(ctx)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить каталог вех: %w", err)
	}

	result := make([]models.Milestone, len(milestones))
	for i, milestone := range milestones {
		result[i] = toMilestoneModel(milestone)
	}

	return result, nil
}

// CreateMilestone проверяет и добавляет веху в каталог
func (m *MilestoneService) CreateMilestone(ctx context.Context, data models.NewMilestone) (models.Milestone, error) {
	milestone, err := validateMilestone(data)
	if err != nil {
		return models.Milestone{}, err
	}

	if err := m.storage.CreateMilestone(ctx, &milestone); err != nil {
		if errors.Is(err, database.ErrDuplicateMilestone) {
			return models.Milestone{}, ErrDuplicateMilestone
		}
		return models.Milestone{}, fmt.Errorf("не удалось создать веху: %w", err)
	}

	logger.Log.Info("created milestone",
		zap.Int64("milestoneID", milestone.ID),
		zap.Int("level", milestone.Level),
		zap.Int("discount", milestone.DiscountPercentage),
	)

	return toMilestoneModel(milestone), nil
}

// GetUserMilestones возвращает купоны пользователя в порядке получения
func (m *MilestoneService) GetUserMilestones(ctx context.Context, userID string) ([]models.Coupon, error) {
	records, err := m.storage.FindUserMilestones(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить вехи пользователя: %w", err)
	}

	if len(records) == 0 {
		return []models.Coupon{}, nil
	}

	now := m.now()
	result := make([]models.Coupon, len(records))
	for i, record := range records {
		result[i] = models.Coupon{
			Code:               record.CouponCode,
			Level:              record.Milestone.Level,
			DiscountPercentage: record.Milestone.DiscountPercentage,
			Description:        record.Milestone.Description,
			Icon:               record.Milestone.Icon,
			IsUsed:             record.IsUsed,
			Expired:            !now.Before(record.ExpiresAt),
			AchievedAt:         utils.RFC3339Date{Time: record.AchievedAt},
			ExpiresAt:          utils.RFC3339Date{Time: record.ExpiresAt},
		}
	}

	return result, nil
}

func validateMilestone(data models.NewMilestone) (database.MilestoneDB, error) {
	if data.Level == nil || *data.Level <= 0 {
		return database.MilestoneDB{}, fmt.Errorf("%w: уровень должен быть положительным", ErrInvalidMilestone)
	}
	if *data.Level > maxMilestoneLevel {
		return database.MilestoneDB{}, fmt.Errorf("%w: уровень не может быть больше %d", ErrInvalidMilestone, maxMilestoneLevel)
	}
	if data.DiscountPercentage == nil || *data.DiscountPercentage < 1 || *data.DiscountPercentage > 100 {
		return database.MilestoneDB{}, fmt.Errorf("%w: скидка должна быть от 1 до 100 процентов", ErrInvalidMilestone)
	}
	if data.Description == nil || *data.Description == "" {
		return database.MilestoneDB{}, fmt.Errorf("%w: описание не может быть пустым", ErrInvalidMilestone)
	}
	if utf8.RuneCountInString(*data.Description) > maxDescriptionLength {
		return database.MilestoneDB{}, fmt.Errorf("%w: описание длиннее %d символов", ErrInvalidMilestone, maxDescriptionLength)
	}

	icon := models.DefaultMilestoneIcon
	if data.Icon != nil && *data.Icon != "" {
		icon = *data.Icon
	}
	if utf8.RuneCountInString(icon) > maxIconLength {
		return database.MilestoneDB{}, fmt.Errorf("%w: иконка длиннее %d символов", ErrInvalidMilestone, maxIconLength)
	}

	return database.MilestoneDB{
		Level:              *data.Level,
		DiscountPercentage: *data.DiscountPercentage,
		Description:        *data.Description,
		Icon:               icon,
	}, nil
}

func toMilestoneModel(milestone database.MilestoneDB) models.Milestone {
	return models.Milestone{
		ID:                 milestone.ID,
		Level:              milestone.Level,
		DiscountPercentage: milestone.DiscountPercentage,
		Description:        milestone.Description,
		Icon:               milestone.Icon,
	}
}
