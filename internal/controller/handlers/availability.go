package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/Freeeeeet/drivingschool_bot/internal/model"
	"go.uber.org/zap"
)

// AddSlot обрабатывает /addslot <начало> <конец>
func (h *Handlers) AddSlot(ctx context.Context, user *model.User, args []string) string {
	if !user.IsTrainer() {
		return textTrainerOnly
	}
	if len(args) != 2 {
		return usageAddSlot
	}

	start, end, err := h.parseInterval(args[0], args[1])
	if err != nil {
		return h.argsError(err, usageAddSlot)
	}

	slot, err := h.store.AddAvailability(ctx, user.Actor(), start, end)
	if err != nil {
		return errorText(err)
	}

	return "✅ Окно добавлено\n\n" + h.FormatSlot(slot)
}

// ListSlots обрабатывает /slots [id инструктора]
func (h *Handlers) ListSlots(_ context.Context, user *model.User, args []string) string {
	actor := user.Actor()

	if len(args) == 0 {
		if !user.IsTrainer() && user.TrainerID == nil {
			return textNoTrainer
		}
		return h.formatSlots("📅 Свободные окна:", h.store.MyTrainerAvailability(actor))
	}

	trainerID, err := parseUserID(args[0])
	if err != nil {
		return "Использование: /slots [id инструктора]"
	}

	slots := h.store.AvailabilityForTrainer(actor, fmt.Sprint(trainerID))
	return h.formatSlots(fmt.Sprintf("📅 Свободные окна инструктора %d:", trainerID), slots)
}

// EditSlot обрабатывает /editslot <id> <начало> <конец>
func (h *Handlers) EditSlot(ctx context.Context, user *model.User, args []string) string {
	if !user.IsTrainer() {
		return textTrainerOnly
	}
	if len(args) != 3 {
		return usageEditSlot
	}

	start, end, err := h.parseInterval(args[1], args[2])
	if err != nil {
		return h.argsError(err, usageEditSlot)
	}

	slot, err := h.store.UpdateAvailabilitySlot(ctx, user.Actor(), args[0], start, end)
	if err != nil {
		return errorText(err)
	}

	return "✅ Окно изменено\n\n" + h.FormatSlot(slot)
}

// RemoveSlot обрабатывает /removeslot <id>
func (h *Handlers) RemoveSlot(ctx context.Context, user *model.User, args []string) string {
	if !user.IsTrainer() {
		return textTrainerOnly
	}
	if len(args) != 1 {
		return usageRemoveSlot
	}

	if err := h.store.RemoveAvailability(ctx, user.Actor(), args[0]); err != nil {
		return errorText(err)
	}

	return "🗑 Окно удалено."
}

// argsError выбирает ответ на ошибку разбора аргументов
func (h *Handlers) argsError(err error, usage string) string {
	switch {
	case errors.Is(err, errBadArgs):
		return usage
	case errors.Is(err, model.ErrInvalidInterval):
		return textBadInterval
	default:
		h.logger.Error("Failed to parse arguments", zap.Error(err))
		return textInternalError
	}
}
