package scheduling

import "errors"

var (
	// ErrNotAuthenticated нет авторизованного пользователя
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrForbidden операция доступна только инструкторам
	ErrForbidden = errors.New("only trainers can perform this action")
	// ErrTrainerNotFound у ученика нет закреплённого инструктора
	ErrTrainerNotFound = errors.New("trainer not found")
	// ErrInvalidStatus статус не поддерживается переходом
	ErrInvalidStatus = errors.New("invalid booking status")

	ErrSlotNotFound    = errors.New("availability slot not found")
	ErrBookingNotFound = errors.New("booking not found")
)

// IsAuthorizationError проверяет что ошибка связана с ролью пользователя
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrForbidden) || errors.Is(err, ErrNotAuthenticated)
}
