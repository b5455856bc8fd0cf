package handlers

import (
	"context"
	"time"

	"github.com/Freeeeeet/drivingschool_bot/internal/model"
	"github.com/Freeeeeet/drivingschool_bot/internal/scheduling"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// UserService операции с пользователями, нужные обработчикам
type UserService interface {
	RegisterUser(ctx context.Context, telegramID int64, username, firstName, lastName, languageCode string) (*model.User, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	ListTrainers(ctx context.Context) ([]*model.User, error)
	MakeTrainer(ctx context.Context, telegramID int64) (*model.User, error)
	AssignTrainer(ctx context.Context, studentTelegramID, trainerID int64) (*model.User, error)
}

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	userService UserService
	store       *scheduling.Store
	validate    *validator.Validate
	location    *time.Location
	logger      *zap.Logger
}

// NewHandlers создаёт новый обработчик команд.
// location - часовой пояс, в котором ученики и инструкторы вводят время.
func NewHandlers(
	userService UserService,
	store *scheduling.Store,
	location *time.Location,
	logger *zap.Logger,
) *Handlers {
	if location == nil {
		location = time.Local
	}
	return &Handlers{
		userService: userService,
		store:       store,
		validate:    validator.New(),
		location:    location,
		logger:      logger,
	}
}

// replyFunc обрабатывает команду уже зарегистрированного пользователя и возвращает текст ответа
type replyFunc func(ctx context.Context, user *model.User, args []string) string
