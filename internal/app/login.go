package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Renal37/farm-to-home/internal/middlewares"
	"github.com/Renal37/farm-to-home/internal/models"
	"github.com/Renal37/farm-to-home/internal/services"
)

// IsUnknownUserDataValid проверяет наличие логина и пароля в запросе.
func IsUnknownUserDataValid(data models.UnknownUser) bool {
	return data.Login != nil && data.Password != nil
}

// Register регистрирует покупателя и сразу возвращает JWT токен.
func Register(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.UnknownUser](w, r)

	authService := middlewares.GetServiceFromContext[models.AuthService](w, r, middlewares.AuthServiceKey)
	jwtService := middlewares.GetServiceFromContext[models.JWTService](w, r, middlewares.JwtServiceKey)
	if authService == nil || jwtService == nil {
		return
	}

	if ok := IsUnknownUserDataValid(data); !ok {
		http.Error(w, "Запрос не содержит логин или пароль", http.StatusBadRequest)
		return
	}

	if err := (*authService).Register(r.Context(), data); err != nil {
		if errors.Is(err, services.ErrUserIsAlreadyRegistered) {
			http.Error(w, "Пользователь уже зарегистрирован", http.StatusConflict)
			return
		}

		if errors.Is(err, services.ErrInvalidUserData) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, fmt.Sprintf("Произошла ошибка при регистрации: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	writeToken(w, *jwtService, *data.Login)
}

// Login обрабатывает запрос на вход пользователя и возвращает JWT токен при успешной авторизации.
func Login(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.UnknownUser](w, r)

	authService := middlewares.GetServiceFromContext[models.AuthService](w, r, middlewares.AuthServiceKey)
	jwtService := middlewares.GetServiceFromContext[models.JWTService](w, r, middlewares.JwtServiceKey)
	if authService == nil || jwtService == nil {
		return
	}

	if ok := IsUnknownUserDataValid(data); !ok {
		http.Error(w, "Запрос не содержит логин или пароль", http.StatusBadRequest)
		return
	}

	if err := (*authService).Login(r.Context(), data); err != nil {
		if errors.Is(err, services.ErrUserIsNotExist) {
			http.Error(w, fmt.Sprintf("Пользователь с логином %s не существует", *data.Login), http.StatusUnauthorized)
			return
		}

		if errors.Is(err, services.ErrPasswordIsIncorrect) {
			http.Error(w, "Неверный пароль", http.StatusUnauthorized)
			return
		}

		if errors.Is(err, services.ErrInvalidUserData) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, fmt.Sprintf("Произошла ошибка при входе: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	writeToken(w, *jwtService, *data.Login)
}

func writeToken(w http.ResponseWriter, jwtService models.JWTService, login string) {
	token, err := jwtService.GenerateJWT(login)
	if err != nil {
		http.Error(w, fmt.Sprintf("Ошибка при генерации JWT токена: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token))
	w.WriteHeader(http.StatusOK)
}
