package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Freeeeeet/drivingschool_bot/internal/model"
	"go.uber.org/zap"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrTrainerNotFound = errors.New("trainer not found")
)

// UserRepository хранилище пользователей
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	GetTrainers(ctx context.Context) ([]*model.User, error)
}

type UserService struct {
	userRepo UserRepository
	logger   *zap.Logger
}

func NewUserService(userRepo UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// RegisterUser регистрирует или обновляет пользователя
func (s *UserService) RegisterUser(ctx context.Context, telegramID int64, username, firstName, lastName, languageCode string) (*model.User, error) {
	// Проверяем существует ли пользователь
	existingUser, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	// Если пользователь уже существует, обновляем данные
	if existingUser != nil {
		existingUser.Username = username
		existingUser.FirstName = firstName
		existingUser.LastName = lastName
		existingUser.LanguageCode = languageCode

		if err := s.userRepo.Update(ctx, existingUser); err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}

		s.logger.Info("User updated",
			zap.Int64("telegram_id", telegramID),
			zap.String("username", username),
		)

		return existingUser, nil
	}

	user := &model.User{
		TelegramID:   telegramID,
		Username:     username,
		FirstName:    firstName,
		LastName:     lastName,
		LanguageCode: languageCode,
		Role:         model.RoleStudent, // По умолчанию ученик
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("New user registered",
		zap.Int64("user_id", user.ID),
		zap.Int64("telegram_id", telegramID),
		zap.String("username", username),
	)

	return user, nil
}

// GetByTelegramID получает пользователя по Telegram ID
func (s *UserService) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	return s.userRepo.GetByTelegramID(ctx, telegramID)
}

// GetByID получает пользователя по ID
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListTrainers получает список инструкторов
func (s *UserService) ListTrainers(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.GetTrainers(ctx)
}

// MakeTrainer делает пользователя инструктором
func (s *UserService) MakeTrainer(ctx context.Context, telegramID int64) (*model.User, error) {
	user, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if user == nil {
		return nil, ErrUserNotFound
	}

	user.Role = model.RoleTrainer
	user.TrainerID = nil

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.logger.Info("User became trainer",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
	)

	return user, nil
}

// AssignTrainer закрепляет ученика за инструктором
func (s *UserService) AssignTrainer(ctx context.Context, studentTelegramID, trainerID int64) (*model.User, error) {
	student, err := s.userRepo.GetByTelegramID(ctx, studentTelegramID)
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}

	if student == nil {
		return nil, ErrUserNotFound
	}

	trainer, err := s.userRepo.GetByID(ctx, trainerID)
	if err != nil {
		return nil, fmt.Errorf("get trainer: %w", err)
	}

	if trainer == nil || !trainer.IsTrainer() {
		return nil, ErrTrainerNotFound
	}

	student.TrainerID = &trainer.ID

	if err := s.userRepo.Update(ctx, student); err != nil {
		return nil, fmt.Errorf("update student: %w", err)
	}

	s.logger.Info("Trainer assigned",
		zap.Int64("student_id", student.ID),
		zap.Int64("trainer_id", trainer.ID),
	)

	return student, nil
}
