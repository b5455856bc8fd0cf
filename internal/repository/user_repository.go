package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Freeeeeet/drivingschool_bot/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, telegram_id, username, first_name, last_name, language_code, role, trainer_id, created_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create создаёт нового пользователя
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (telegram_id, username, first_name, last_name, language_code, role, trainer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		user.TelegramID,
		user.Username,
		user.FirstName,
		user.LastName,
		user.LanguageCode,
		user.Role,
		user.TrainerID,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// GetByTelegramID получает пользователя по Telegram ID
func (r *UserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE telegram_id = $1`

	user, err := scanUser(r.pool.QueryRow(ctx, query, telegramID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Пользователь не найден
		}
		return nil, fmt.Errorf("get user by telegram id: %w", err)
	}

	return user, nil
}

// GetByID получает пользователя по ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

// Update обновляет данные пользователя
func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	query := `
		UPDATE users
		SET username = $1, first_name = $2, last_name = $3, language_code = $4, role = $5, trainer_id = $6
		WHERE id = $7
	`

	result, err := r.pool.Exec(
		ctx, query,
		user.Username,
		user.FirstName,
		user.LastName,
		user.LanguageCode,
		user.Role,
		user.TrainerID,
		user.ID,
	)

	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found")
	}

	return nil
}

// GetTrainers получает список инструкторов
func (r *UserRepository) GetTrainers(ctx context.Context) ([]*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY first_name, last_name`

	rows, err := r.pool.Query(ctx, query, model.RoleTrainer)
	if err != nil {
		return nil, fmt.Errorf("get trainers: %w", err)
	}
	defer rows.Close()

	var trainers []*model.User
	for rows.Next() {
		trainer, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan trainer: %w", err)
		}
		trainers = append(trainers, trainer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trainers: %w", err)
	}

	return trainers, nil
}

func scanUser(row pgx.Row) (*model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID,
		&user.TelegramID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.LanguageCode,
		&user.Role,
		&user.TrainerID,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
