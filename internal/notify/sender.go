package notify

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Sender доставляет одно уведомление
type Sender interface {
	Send(ctx context.Context, title, body string) error
}

// messageSender часть API бота, нужная для отправки сообщений
type messageSender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// TelegramSender отправляет уведомления сообщением в заданный чат
type TelegramSender struct {
	bot    messageSender
	chatID int64
}

func NewTelegramSender(b messageSender, chatID int64) *TelegramSender {
	return &TelegramSender{bot: b, chatID: chatID}
}

func (s *TelegramSender) Send(ctx context.Context, title, body string) error {
	_, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: s.chatID,
		Text:   fmt.Sprintf("🔔 %s\n\n%s", title, body),
	})
	if err != nil {
		return fmt.Errorf("send telegram notification: %w", err)
	}
	return nil
}

// LogSender только пишет уведомление в лог, когда чат для уведомлений не настроен
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, title, body string) error {
	s.logger.Info("Notification",
		zap.String("title", title),
		zap.String("body", body),
	)
	return nil
}
