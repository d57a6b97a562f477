package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Renal37/farm-to-home/internal/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserMilestone(t *testing.T) {
	errConn := errors.New("соединение разорвано")

	testCases := []struct {
		testName string
		dbErr    error
		id       int64
		err      error
	}{
		{
			testName: "Должен сохранить достижение и вернуть его ID",
			id:       42,
		},
		{
			testName: "Должен распознать повтор кода купона",
			dbErr:    &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "user_milestones_coupon_code_key"},
			err:      ErrDuplicateCouponCode,
		},
		{
			testName: "Должен распознать повторную выдачу вехи",
			dbErr:    &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "user_milestones_user_milestone_key"},
			err:      ErrDuplicateUserMilestone,
		},
		{
			testName: "Должен распознать несуществующего пользователя или веху",
			dbErr:    &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "user_milestones_user_id_fkey"},
			err:      ErrMissingReference,
		},
		{
			testName: "Должен вернуть прочие ошибки как есть",
			dbErr:    errConn,
			err:      errConn,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			db, mock := newMockDatabase(t)

			now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
			record := &UserMilestoneDB{
				UserID:      "user",
				MilestoneID: 5,
				AchievedAt:  now,
				CouponCode:  "MILE5_0A1B2C3D",
				ExpiresAt:   now.AddDate(0, 0, 90),
			}

			expectation := mock.ExpectQuery(InsertUserMilestoneQuery).
				WithArgs("user", int64(5), pgxmock.AnyArg(), "MILE5_0A1B2C3D", false, pgxmock.AnyArg())
			if tc.dbErr != nil {
				expectation.WillReturnError(tc.dbErr)
			} else {
				expectation.WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(tc.id))
			}

			err := db.CreateUserMilestone(context.Background(), record)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.id, record.ID)
		})
	}
}

func TestCreateUserMilestoneOtherUniqueViolation(t *testing.T) {
	db, mock := newMockDatabase(t)

	mock.ExpectQuery(InsertUserMilestoneQuery).
		WithArgs("user", int64(1), pgxmock.AnyArg(), "MILE1_00000000", false, pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "user_milestones_pkey"})

	err := db.CreateUserMilestone(context.Background(), &UserMilestoneDB{UserID: "user", MilestoneID: 1, CouponCode: "MILE1_00000000"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateCouponCode)
	assert.NotErrorIs(t, err, ErrDuplicateUserMilestone)
}

func TestFindMilestonesAtOrBelow(t *testing.T) {
	db, mock := newMockDatabase(t)

	mock.ExpectQuery(SelectMilestonesAtOrBelowQuery).WithArgs(5).WillReturnRows(
		pgxmock.NewRows([]string{"id", "level", "discount_percentage", "description", "icon"}).
			AddRow(int64(1), 1, 5, "Первый заказ", "fa-star").
			AddRow(int64(2), 5, 10, "Пятый заказ", "fa-trophy"),
	)

	milestones, err := db.FindMilestonesAtOrBelow(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, []MilestoneDB{
		{ID: 1, Level: 1, DiscountPercentage: 5, Description: "Первый заказ", Icon: "fa-star"},
		{ID: 2, Level: 5, DiscountPercentage: 10, Description: "Пятый заказ", Icon: "fa-trophy"},
	}, milestones)
}

func TestFindAchievedMilestoneIDs(t *testing.T) {
	db, mock := newMockDatabase(t)

	mock.ExpectQuery(SelectAchievedMilestoneIDsQuery).WithArgs("user").WillReturnRows(
		pgxmock.NewRows([]string{"milestone_id"}).AddRow(int64(1)).AddRow(int64(3)),
	)

	ids, err := db.FindAchievedMilestoneIDs(context.Background(), "user")
	require.NoError(t, err)

	assert.Equal(t, map[int64]struct{}{1: {}, 3: {}}, ids)
}

func TestCountCompletedOrders(t *testing.T) {
	t.Run("Должен вернуть количество", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		mock.ExpectQuery(CountCompletedOrdersQuery).WithArgs("user").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

		count, err := db.CountCompletedOrders(context.Background(), "user")
		require.NoError(t, err)
		assert.Equal(t, 7, count)
	})

	t.Run("Должен вернуть ошибку запроса", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		errConn := errors.New("соединение разорвано")
		mock.ExpectQuery(CountCompletedOrdersQuery).WithArgs("user").WillReturnError(errConn)

		_, err := db.CountCompletedOrders(context.Background(), "user")
		assert.ErrorIs(t, err, errConn)
	})
}

func TestFindOrderForUpdateMissing(t *testing.T) {
	testCases := []struct {
		testName string
		dbErr    error
	}{
		{testName: "Должен вернуть nil, если заказа нет", dbErr: pgx.ErrNoRows},
		{testName: "Должен считать некорректный UUID отсутствующим заказом", dbErr: &pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation}},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			db, mock := newMockDatabase(t)
			mock.ExpectQuery(SelectOrderForUpdateQuery).WithArgs("order").WillReturnError(tc.dbErr)

			order, err := db.FindOrderForUpdate(context.Background(), "order")
			require.NoError(t, err)
			assert.Nil(t, order)
		})
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	db, mock := newMockDatabase(t)

	mock.ExpectExec(InsertUserQuery).WithArgs("user", "hash").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err := db.CreateUser(context.Background(), UserDB{User: models.User{Login: "user", Hash: "hash"}})
	assert.ErrorIs(t, err, ErrDuplicateUser)
}
