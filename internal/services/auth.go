package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Renal37/farm-to-home/internal/database"
	"github.com/Renal37/farm-to-home/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Определение пользовательских ошибок
var (
	ErrUserIsAlreadyRegistered = errors.New("пользователь уже зарегистрирован")
	ErrUserIsNotExist          = errors.New("пользователь не существует")
	ErrPasswordIsIncorrect     = errors.New("пароль неверен")
	ErrInvalidUserData         = errors.New("некорректные данные пользователя")
)

const (
	maxLoginLength    = 255
	maxPasswordLength = 72
)

// AuthService представляет сервис для аутентификации и управления покупателями
type AuthService struct {
	storage AuthStorage
}

// AuthStorage определяет интерфейс для взаимодействия с хранилищем данных пользователей
type AuthStorage interface {
	CreateUser(ctx context.Context, user database.UserDB) error           // Создание нового пользователя
	FindUser(ctx context.Context, login string) (*database.UserDB, error) // Поиск пользователя по логину
}

// NewAuthService создает новый экземпляр AuthService с заданным хранилищем
func NewAuthService(storage AuthStorage) *AuthService {
	return &AuthService{storage: storage}
}

// Register регистрирует нового пользователя
func (auth *AuthService) Register(ctx context.Context, user models.UnknownUser) error {
	// Проверка валидности входных данных
	if err := validateUser(user); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка при хэшировании пароля: %w", err)
	}

	// Создание пользователя в хранилище
	err = auth.storage.CreateUser(ctx, database.UserDB{
		User: models.User{
			Login: *user.Login,
			Hash:  string(hashedPassword),
		},
	})
	if err != nil {
		if errors.Is(err, database.ErrDuplicateUser) {
			return ErrUserIsAlreadyRegistered
		}
		return fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return nil
}

// Login выполняет аутентификацию пользователя
func (auth *AuthService) Login(ctx context.Context, user models.UnknownUser) error {
	// Проверка валидности входных данных
	if err := validateUser(user); err != nil {
		return err
	}

	// Поиск пользователя по логину
	u, err := auth.storage.FindUser(ctx, *user.Login)
	if err != nil {
		return fmt.Errorf("ошибка при поиске пользователя: %w", err)
	}

	if u == nil {
		return ErrUserIsNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(*user.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordIsIncorrect
		}
		return fmt.Errorf("ошибка при сравнении паролей: %w", err)
	}

	return nil
}

// GetUser возвращает информацию о пользователе по логину
func (auth *AuthService) GetUser(ctx context.Context, login string) (*models.User, error) {
	// Поиск пользователя по логину
	user, err := auth.storage.FindUser(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске пользователя: %w", err)
	}

	if user == nil {
		return nil, ErrUserIsNotExist
	}

	return &user.User, nil
}

// validateUser проверяет валидность входных данных пользователя
func validateUser(user models.UnknownUser) error {
	if user.Login == nil || *user.Login == "" {
		return fmt.Errorf("%w: логин не может быть пустым", ErrInvalidUserData)
	}
	if len(*user.Login) > maxLoginLength {
		return fmt.Errorf("%w: логин длиннее %d символов", ErrInvalidUserData, maxLoginLength)
	}
	if user.Password == nil || *user.Password == "" {
		return fmt.Errorf("%w: пароль не может быть пустым", ErrInvalidUserData)
	}
	// bcrypt не принимает пароли длиннее 72 байт
	if len(*user.Password) > maxPasswordLength {
		return fmt.Errorf("%w: пароль длиннее %d байт", ErrInvalidUserData, maxPasswordLength)
	}
	return nil
}
