package handlers

import (
	"context"
	"strings"

	"github.com/Freeeeeet/drivingschool_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Command оборачивает replyFunc: проверяет пользователя и готовность расписания, отправляет ответ
func (h *Handlers) Command(fn replyFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		user, ok := h.requireUser(ctx, b, update)
		if !ok {
			return
		}

		chatID := update.Message.Chat.ID

		if !h.store.IsLoaded() {
			h.sendMessage(ctx, b, chatID, textStoreLoading)
			return
		}

		h.sendMessage(ctx, b, chatID, fn(ctx, user, commandArgs(update.Message.Text)))
	}
}

// UserCommand как Command, но без ожидания загрузки расписания
func (h *Handlers) UserCommand(fn replyFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		user, ok := h.requireUser(ctx, b, update)
		if !ok {
			return
		}
		h.sendMessage(ctx, b, update.Message.Chat.ID, fn(ctx, user, commandArgs(update.Message.Text)))
	}
}

// requireUser проверяет что пользователь существует
// Возвращает user и true если OK, nil и false если нет
func (h *Handlers) requireUser(ctx context.Context, b *bot.Bot, update *models.Update) (*model.User, bool) {
	if update.Message == nil || update.Message.From == nil {
		return nil, false
	}

	telegramID := update.Message.From.ID
	user, err := h.userService.GetByTelegramID(ctx, telegramID)

	if err != nil {
		h.logger.Error("Failed to get user", zap.Int64("telegram_id", telegramID), zap.Error(err))
		h.sendMessage(ctx, b, update.Message.Chat.ID, textInternalError)
		return nil, false
	}

	if user == nil {
		h.sendMessage(ctx, b, update.Message.Chat.ID, textUserNotFound)
		return nil, false
	}

	return user, true
}

// sendMessage отправляет сообщение и логирует если не удалось
func (h *Handlers) sendMessage(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}

// commandArgs возвращает аргументы команды без самой команды
func commandArgs(text string) []string {
	fields := strings.Fields(text)
	if len(fields) <= 1 {
		return nil
	}
	return fields[1:]
}
