package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService(t *testing.T) {
	service := NewJWTService("secret", time.Hour)

	t.Run("Должен выпустить и проверить токен", func(t *testing.T) {
		tokenString, err := service.GenerateJWT("user")
		require.NoError(t, err)

		token, err := service.ValidateToken(tokenString)
		require.NoError(t, err)

		subject, err := token.Claims.GetSubject()
		require.NoError(t, err)
		assert.Equal(t, "user", subject)
	})

	t.Run("Должен отклонить токен с чужой подписью", func(t *testing.T) {
		tokenString, err := NewJWTService("other", time.Hour).GenerateJWT("user")
		require.NoError(t, err)

		_, err = service.ValidateToken(tokenString)
		assert.Error(t, err)
	})

	t.Run("Должен отклонить истекший токен", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "user",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		})
		tokenString, err := token.SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = service.ValidateToken(tokenString)
		assert.ErrorIs(t, err, ErrTokenIsExpired)
	})

	t.Run("Должен отклонить другой алгоритм подписи", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{Subject: "user"})
		tokenString, err := token.SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = service.ValidateToken(tokenString)
		assert.Error(t, err)
	})
}
