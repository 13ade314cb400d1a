package repository

import (
	"context"
	"database/sql"
	"time"

	"kotoba/backend/internal/model"
)

//go:generate mockgen -source=user_repository.go -destination=mock/user_repository_mock.go -package=mock

type UserRepository interface {
	// Get returns nil when the user does not exist.
	Get(ctx context.Context, id string) (*model.User, error)
	// Save creates the user or replaces its email and password hash.
	Save(ctx context.Context, user model.User) error
}

type userRepository struct {
	db dbtx
}

func NewUserRepository(db dbtx) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Get(ctx context.Context, id string) (*model.User, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE id = ?`,
		id,
	)

	var u model.User
	var createdAt string
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u.CreatedAt, _ = parseTime(createdAt)
	return &u, nil
}

func (r *userRepository) Save(ctx context.Context, user model.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO users (id, email, password_hash, created_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   email = excluded.email,
		   password_hash = excluded.password_hash`,
		user.ID, user.Email, user.PasswordHash, formatTime(user.CreatedAt),
	)
	return err
}
