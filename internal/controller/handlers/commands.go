package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Freeeeeet/drivingschool_bot/internal/model"
	"github.com/Freeeeeet/drivingschool_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const helpText = "📚 Справка по командам:\n\n" +
	"Для учеников:\n" +
	"/start - Начать работу с ботом\n" +
	"/trainers - Список инструкторов\n" +
	"/settrainer <id> - Выбрать инструктора\n" +
	"/slots - Свободные окна инструктора\n" +
	"/book <начало> <конец> - Записаться на занятие\n" +
	"/mybookings - Мои записи\n" +
	"/reject <id> - Отменить запись\n\n" +
	"Для инструкторов:\n" +
	"/becometrainer - Стать инструктором\n" +
	"/addslot <начало> <конец> - Добавить окно\n" +
	"/editslot <id> <начало> <конец> - Изменить окно\n" +
	"/removeslot <id> - Удалить окно\n" +
	"/book <id ученика> <начало> <конец> - Записать ученика\n" +
	"/studentbookings <id ученика> - Записи ученика\n" +
	"/pending - Заявки с кнопками подтверждения\n" +
	"/approve <id> - Подтвердить запись\n" +
	"/reject <id> - Отклонить запись\n" +
	"/editbooking <id> <id ученика> <начало> <конец> - Изменить запись\n\n" +
	"Время вводится в формате 2024-03-01T09:00"

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	user := update.Message.From

	// Регистрируем пользователя
	registeredUser, err := h.userService.RegisterUser(
		ctx,
		user.ID,
		user.Username,
		user.FirstName,
		user.LastName,
		user.LanguageCode,
	)
	if err != nil {
		h.logger.Error("Failed to register user", zap.Error(err))
		h.sendMessage(ctx, b, update.Message.Chat.ID, "❌ Произошла ошибка при регистрации. Попробуйте позже.")
		return
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, startText(registeredUser))
}

func startText(user *model.User) string {
	role := "ученик"
	if user.IsTrainer() {
		role = "инструктор"
	}

	return fmt.Sprintf(
		"👋 Привет, %s!\n\n"+
			"Добро пожаловать в бот автошколы - здесь можно записаться на вождение к инструктору.\n\n"+
			"Ваш id: %d\n"+
			"Роль: %s\n\n"+
			"/help - Справка по командам",
		user.FirstName,
		user.ID,
		role,
	)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText)
}

// BecomeTrainer обрабатывает /becometrainer
func (h *Handlers) BecomeTrainer(ctx context.Context, user *model.User, _ []string) string {
	if user.IsTrainer() {
		return "✅ Вы уже инструктор."
	}

	if _, err := h.userService.MakeTrainer(ctx, user.TelegramID); err != nil {
		h.logger.Error("Failed to make trainer", zap.Int64("user_id", user.ID), zap.Error(err))
		return textInternalError
	}

	return "🎉 Теперь вы инструктор!\n\n" +
		"Добавьте свободные окна: /addslot <начало> <конец>"
}

// ListTrainers обрабатывает /trainers
func (h *Handlers) ListTrainers(ctx context.Context, user *model.User, _ []string) string {
	trainers, err := h.userService.ListTrainers(ctx)
	if err != nil {
		h.logger.Error("Failed to list trainers", zap.Error(err))
		return textInternalError
	}

	if len(trainers) == 0 {
		return "😔 Пока нет ни одного инструктора."
	}

	var sb strings.Builder
	sb.WriteString("🚗 Инструкторы:\n")
	for _, t := range trainers {
		marker := ""
		if user.TrainerID != nil && *user.TrainerID == t.ID {
			marker = " ⭐"
		}
		sb.WriteString(fmt.Sprintf("\n%d - %s %s%s", t.ID, t.FirstName, t.LastName, marker))
	}
	sb.WriteString("\n\nВыбрать инструктора: /settrainer <id>")
	return sb.String()
}

// SetTrainer обрабатывает /settrainer <id>
func (h *Handlers) SetTrainer(ctx context.Context, user *model.User, args []string) string {
	if len(args) != 1 {
		return usageSetTrainer
	}

	trainerID, err := parseUserID(args[0])
	if err != nil {
		return usageSetTrainer
	}

	if user.IsTrainer() {
		return "❌ Инструктор не может выбрать себе инструктора."
	}

	if _, err := h.userService.AssignTrainer(ctx, user.TelegramID, trainerID); err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			return textNoTrainer
		}
		h.logger.Error("Failed to assign trainer",
			zap.Int64("user_id", user.ID),
			zap.Int64("trainer_id", trainerID),
			zap.Error(err),
		)
		return textInternalError
	}

	return fmt.Sprintf("✅ Инструктор %d закреплён за вами.\n\nСвободные окна: /slots", trainerID)
}
