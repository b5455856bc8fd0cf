package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Freeeeeet/drivingschool_bot/internal/model"
	"github.com/go-playground/validator/v10"
)

var errBadArgs = errors.New("bad arguments")

// intervalInput интервал из аргументов команды. Проверка end > start выполняется здесь, до вызова планировщика.
type intervalInput struct {
	Start time.Time `validate:"required"`
	End   time.Time `validate:"required,gtfield=Start"`
}

// parseInterval разбирает пару аргументов <начало> <конец>
func (h *Handlers) parseInterval(startArg, endArg string) (time.Time, time.Time, error) {
	start, err := h.parseTime(startArg)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := h.parseTime(endArg)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	input := intervalInput{Start: start, End: end}
	if err := h.validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return time.Time{}, time.Time{}, model.ErrInvalidInterval
		}
		return time.Time{}, time.Time{}, fmt.Errorf("validate interval: %w", err)
	}

	return start, end, nil
}

// parseTime принимает RFC 3339 или 2006-01-02T15:04 в часовом поясе бота
func (h *Handlers) parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(inputTimeLayout, s, h.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: time %q", errBadArgs, s)
	}
	return t, nil
}

// parseUserID разбирает числовой идентификатор пользователя
func parseUserID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id %q", errBadArgs, s)
	}
	return id, nil
}
