package services

import (
	"context"
	"sort"

	"github.com/Renal37/farm-to-home/internal/database"
)

type memoryTxKey struct{}

// memoryStorage хранилище в памяти с откатом транзакций и ограничениями
// уникальности как в схеме базы данных.
type memoryStorage struct {
	orders         map[string]*database.OrderDB
	milestones     []database.MilestoneDB
	userMilestones []database.UserMilestoneDB
	nextID         int64

	countCalls  int
	afterCommit []func(ctx context.Context)
}

func newMemoryStorage(levels ...int) *memoryStorage {
	s := &memoryStorage{orders: make(map[string]*database.OrderDB)}
	for _, level := range levels {
		s.nextID++
		s.milestones = append(s.milestones, database.MilestoneDB{
			ID:                 s.nextID,
			Level:              level,
			DiscountPercentage: level,
			Description:        "milestone",
			Icon:               "fa-trophy",
		})
	}
	return s
}

func (s *memoryStorage) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(memoryTxKey{}) != nil {
		return fn(ctx)
	}

	orders := make(map[string]database.OrderDB, len(s.orders))
	for id, order := range s.orders {
		orders[id] = *order
	}
	userMilestones := append([]database.UserMilestoneDB(nil), s.userMilestones...)

	if err := fn(context.WithValue(ctx, memoryTxKey{}, true)); err != nil {
		s.orders = make(map[string]*database.OrderDB, len(orders))
		for id, order := range orders {
			order := order
			s.orders[id] = &order
		}
		s.userMilestones = userMilestones
		s.afterCommit = nil
		return err
	}

	actions := s.afterCommit
	s.afterCommit = nil
	for _, action := range actions {
		action(ctx)
	}

	return nil
}

func (s *memoryStorage) AfterCommit(ctx context.Context, action func(ctx context.Context)) {
	if ctx.Value(memoryTxKey{}) != nil {
		s.afterCommit = append(s.afterCommit, action)
		return
	}
	action(ctx)
}

func (s *memoryStorage) CreateOrder(_ context.Context, order *database.OrderDB) error {
	if _, ok := s.orders[order.ID]; ok {
		return database.ErrDuplicateOrder
	}
	stored := *order
	s.orders[order.ID] = &stored
	return nil
}

func (s *memoryStorage) FindOrderForUpdate(_ context.Context, orderID string) (*database.OrderDB, error) {
	order, ok := s.orders[orderID]
	if !ok {
		return nil, nil
	}
	found := *order
	return &found, nil
}

func (s *memoryStorage) FindUserOrders(_ context.Context, userID string) ([]database.OrderDB, error) {
	var result []database.OrderDB
	for _, order := range s.orders {
		if order.UserID == userID {
			result = append(result, *order)
		}
	}
	return result, nil
}

func (s *memoryStorage) UpdateOrderStatus(_ context.Context, orderID string, payment database.PaymentStatusDB, delivery database.DeliveryStatusDB) error {
	if order, ok := s.orders[orderID]; ok {
		order.PaymentStatus = payment
		order.DeliveryStatus = delivery
	}
	return nil
}

func (s *memoryStorage) LockUser(context.Context, string) error {
	return nil
}

func (s *memoryStorage) CountCompletedOrders(_ context.Context, userID string) (int, error) {
	s.countCalls++

	var count int
	for _, order := range s.orders {
		if order.UserID == userID && order.IsCompleted() {
			count++
		}
	}
	return count, nil
}

func (s *memoryStorage) FindMilestonesAtOrBelow(_ context.Context, level int) ([]database.MilestoneDB, error) {
	var result []database.MilestoneDB
	for _, milestone := range s.milestones {
		if milestone.Level <= level {
			result = append(result, milestone)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Level < result[j].Level })
	return result, nil
}

func (s *memoryStorage) FindAchievedMilestoneIDs(_ context.Context, userID string) (map[int64]struct{}, error) {
	result := make(map[int64]struct{})
	for _, record := range s.userMilestones {
		if record.UserID == userID {
			result[record.MilestoneID] = struct{}{}
		}
	}
	return result, nil
}

func (s *memoryStorage) CreateUserMilestone(_ context.Context, record *database.UserMilestoneDB) error {
	for _, existing := range s.userMilestones {
		if existing.CouponCode == record.CouponCode {
			return database.ErrDuplicateCouponCode
		}
		if existing.UserID == record.UserID && existing.MilestoneID == record.MilestoneID {
			return database.ErrDuplicateUserMilestone
		}
	}

	s.nextID++
	record.ID = s.nextID
	s.userMilestones = append(s.userMilestones, *record)
	return nil
}

func (s *memoryStorage) CreateMilestone(_ context.Context, milestone *database.MilestoneDB) error {
	for _, existing := range s.milestones {
		if existing.Level == milestone.Level {
			return database.ErrDuplicateMilestone
		}
	}
	s.nextID++
	milestone.ID = s.nextID
	s.milestones = append(s.milestones, *milestone)
	return nil
}

func (s *memoryStorage) FindMilestones(ctx context.Context) ([]database.MilestoneDB, error) {
	return s.FindMilestonesAtOrBelow(ctx, int(^uint(0)>>1))
}

func (s *memoryStorage) FindUserMilestones(_ context.Context, userID string) ([]database.UserMilestoneWithMilestoneDB, error) {
	var result []database.UserMilestoneWithMilestoneDB
	for _, record := range s.userMilestones {
		if record.UserID != userID {
			continue
		}
		for _, milestone := range s.milestones {
			if milestone.ID == record.MilestoneID {
				result = append(result, database.UserMilestoneWithMilestoneDB{UserMilestoneDB: record, Milestone: milestone})
			}
		}
	}
	return result, nil
}

// levelsOf возвращает уровни вех, полученных пользователем, по возрастанию
func (s *memoryStorage) levelsOf(userID string) []int {
	var levels []int
	for _, record := range s.userMilestones {
		if record.UserID != userID {
			continue
		}
		for _, milestone := range s.milestones {
			if milestone.ID == record.MilestoneID {
				levels = append(levels, milestone.Level)
			}
		}
	}
	sort.Ints(levels)
	return levels
}
