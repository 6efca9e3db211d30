package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shenikar/cityfix_backend/internal/models"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// GetUser возвращает профиль по uid провайдера аутентификации
func (r *UserRepository) GetUser(ctx context.Context, uid string) (*models.User, error) {
	query := `
		SELECT uid, email, name, role, created_at, updated_at
		FROM users
		WHERE uid = $1;
	`
	user := &models.User{}
	err := r.db.QueryRow(ctx, query, uid).Scan(
		&user.UID,
		&user.Email,
		&user.Name,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", uid, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// CreateUser создает профиль, если его еще нет. Существующая запись (и ее роль) не меняется,
// а в user возвращается то, что лежит в базе.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		WITH inserted AS (
			INSERT INTO users (uid, email, name, role)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (uid) DO NOTHING
			RETURNING uid, email, name, role, created_at, updated_at
		)
		SELECT uid, email, name, role, created_at, updated_at FROM inserted
		UNION ALL
		SELECT uid, email, name, role, created_at, updated_at FROM users WHERE uid = $1
		LIMIT 1;
	`
	err := r.db.QueryRow(ctx, query, user.UID, user.Email, user.Name, user.Role).Scan(
		&user.UID,
		&user.Email,
		&user.Name,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// UpdateUser меняет изменяемые поля профиля. Роль через этот метод не меняется.
func (r *UserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users SET
			email = $1,
			name = $2,
			updated_at = NOW()
		WHERE uid = $3
		RETURNING updated_at;
	`
	err := r.db.QueryRow(ctx, query, user.Email, user.Name, user.UID).Scan(&user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("user %s: %w", user.UID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (r *UserRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
