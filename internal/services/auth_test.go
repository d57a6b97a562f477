package services

import (
	"context"
	"strings"
	"testing"

	"github.com/Renal37/farm-to-home/internal/database"
	"github.com/Renal37/farm-to-home/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryUsers map[string]database.UserDB

func (m memoryUsers) CreateUser(_ context.Context, user database.UserDB) error {
	if _, ok := m[user.Login]; ok {
		return database.ErrDuplicateUser
	}
	user.ID = "id-" + user.Login
	m[user.Login] = user
	return nil
}

func (m memoryUsers) FindUser(_ context.Context, login string) (*database.UserDB, error) {
	user, ok := m[login]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func TestAuthService(t *testing.T) {
	ctx := context.Background()
	service := NewAuthService(memoryUsers{})

	credentials := models.UnknownUser{Login: ptr("user"), Password: ptr("123")}

	require.NoError(t, service.Register(ctx, credentials))
	assert.ErrorIs(t, service.Register(ctx, credentials), ErrUserIsAlreadyRegistered)

	assert.NoError(t, service.Login(ctx, credentials))
	assert.ErrorIs(t, service.Login(ctx, models.UnknownUser{Login: ptr("user"), Password: ptr("321")}), ErrPasswordIsIncorrect)
	assert.ErrorIs(t, service.Login(ctx, models.UnknownUser{Login: ptr("ghost"), Password: ptr("123")}), ErrUserIsNotExist)

	user, err := service.GetUser(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, "id-user", user.ID)
	assert.NotEqual(t, "123", user.Hash)

	_, err = service.GetUser(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserIsNotExist)
}

func TestAuthServiceValidation(t *testing.T) {
	service := NewAuthService(memoryUsers{})

	testCases := []struct {
		testName string
		user     models.UnknownUser
	}{
		{testName: "Пустой логин", user: models.UnknownUser{Login: ptr(""), Password: ptr("123")}},
		{testName: "Пустой пароль", user: models.UnknownUser{Login: ptr("user"), Password: ptr("")}},
		{testName: "Длинный логин", user: models.UnknownUser{Login: ptr(strings.Repeat("u", 256)), Password: ptr("123")}},
		{testName: "Длинный пароль", user: models.UnknownUser{Login: ptr("user"), Password: ptr(strings.Repeat("p", 73))}},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.ErrorIs(t, service.Register(context.Background(), tc.user), ErrInvalidUserData)
			assert.ErrorIs(t, service.Login(context.Background(), tc.user), ErrInvalidUserData)
		})
	}
}
