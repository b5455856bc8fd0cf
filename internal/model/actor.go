package model

// Role роль пользователя
type Role string

const (
	RoleTrainer Role = "trainer" // Инструктор
	RoleStudent Role = "student" // Ученик
)

// Actor текущий авторизованный пользователь, выполняющий операцию.
// Планировщик только читает его и никогда не изменяет.
type Actor struct {
	ID        string
	Role      Role
	TrainerID string // для учеников - закреплённый инструктор
}

// IsTrainer проверяет является ли пользователь инструктором
func (a *Actor) IsTrainer() bool {
	return a != nil && a.Role == RoleTrainer
}

// IsStudent проверяет является ли пользователь учеником
func (a *Actor) IsStudent() bool {
	return a != nil && a.Role == RoleStudent
}
