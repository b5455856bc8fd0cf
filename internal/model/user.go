package model

import (
	"strconv"
	"time"
)

type User struct {
	ID           int64     `json:"id"`
	TelegramID   int64     `json:"telegram_id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	LanguageCode string    `json:"language_code"`
	Role         Role      `json:"role"`
	TrainerID    *int64    `json:"trainer_id"` // указатель - у ученика может не быть инструктора
	CreatedAt    time.Time `json:"created_at"`
}

// IsTrainer checks if user is a trainer
func (u *User) IsTrainer() bool {
	return u.Role == RoleTrainer
}

// ActorID возвращает идентификатор пользователя в формате планировщика
func (u *User) ActorID() string {
	return strconv.FormatInt(u.ID, 10)
}

// Actor собирает read-only контекст пользователя для планировщика
func (u *User) Actor() *Actor {
	actor := &Actor{
		ID:   u.ActorID(),
		Role: u.Role,
	}
	if u.TrainerID != nil {
		actor.TrainerID = strconv.FormatInt(*u.TrainerID, 10)
	}
	return actor
}
