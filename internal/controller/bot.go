package controller

import (
	"context"

	"github.com/Freeeeeet/drivingschool_bot/internal/controller/callbacks"
	"github.com/Freeeeeet/drivingschool_bot/internal/controller/handlers"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	cmdHandlers *handlers.Handlers,
	callbackHandler *callbacks.Handler,
	logger *zap.Logger,
) *BotController {
	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	h := c.handlers

	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, h.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, h.HandleHelp)

	// Профиль, расписание не нужно
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/becometrainer", bot.MatchTypeExact, h.UserCommand(h.BecomeTrainer))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/trainers", bot.MatchTypeExact, h.UserCommand(h.ListTrainers))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/settrainer", bot.MatchTypePrefix, h.UserCommand(h.SetTrainer))

	// Окна инструктора
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/addslot", bot.MatchTypePrefix, h.Command(h.AddSlot))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/slots", bot.MatchTypePrefix, h.Command(h.ListSlots))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/editslot", bot.MatchTypePrefix, h.Command(h.EditSlot))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/removeslot", bot.MatchTypePrefix, h.Command(h.RemoveSlot))

	// Записи
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/book", bot.MatchTypePrefix, h.Command(h.Book))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/mybookings", bot.MatchTypeExact, h.Command(h.MyBookings))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/studentbookings", bot.MatchTypePrefix, h.Command(h.StudentBookings))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/approve", bot.MatchTypePrefix, h.Command(h.Approve))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/reject", bot.MatchTypePrefix, h.Command(h.Reject))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/editbooking", bot.MatchTypePrefix, h.Command(h.EditBooking))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/pending", bot.MatchTypeExact, h.HandlePending)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	// Устанавливаем меню команд
	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Начать работу с ботом"},
		{Command: "help", Description: "❓ Справка по командам"},
		{Command: "trainers", Description: "🚗 Список инструкторов"},
		{Command: "slots", Description: "📅 Свободные окна"},
		{Command: "book", Description: "✍️ Записаться на занятие"},
		{Command: "mybookings", Description: "📋 Мои записи"},
		{Command: "becometrainer", Description: "🎓 Стать инструктором"},
		{Command: "addslot", Description: "➕ Добавить окно (инструктор)"},
		{Command: "pending", Description: "📨 Новые заявки (инструктор)"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота, блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
