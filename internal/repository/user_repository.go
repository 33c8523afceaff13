package repository

import (
	"context"
	"errors"
	"fmt"

	"tokoonline/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// userRepository implements the UserRepository interface using PostgreSQL.
type userRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewUserRepository creates a new PostgreSQL-backed user repository.
func NewUserRepository(pool *pgxpool.Pool, logger zerolog.Logger) UserRepository {
	return &userRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "user").Logger(),
	}
}

// Create inserts a new user and returns its generated id.
func (r *userRepository) Create(ctx context.Context, user *model.User) (int64, error) {
	query := `
		INSERT INTO users (name, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.Role, user.CreatedAt,
	).Scan(&id)
	if err != nil {
		r.logger.Error().Err(err).Str("email", user.Email).Msg("failed to insert user")
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}

	r.logger.Debug().Int64("user_id", id).Msg("user created")
	return id, nil
}

// GetByEmail retrieves a user by email. Returns nil when no user exists.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, created_at
		FROM users
		WHERE email = $1
	`

	var u model.User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("email", email).Msg("failed to query user by email")
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}

	return &u, nil
}

// GetAll retrieves all users. The password hash column is not selected.
func (r *userRepository) GetAll(ctx context.Context) ([]model.User, error) {
	query := `
		SELECT id, name, email, role, created_at
		FROM users
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query users")
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan user row")
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating user rows")
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// GetByID retrieves a single user by id. Returns nil when no user exists.
func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `
		SELECT id, name, email, role, created_at
		FROM users
		WHERE id = $1
	`

	var u model.User
	err := r.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("user_id", id).Msg("user not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("user_id", id).Msg("failed to query user")
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &u, nil
}

// Update overwrites a user's name, email and role.
func (r *userRepository) Update(ctx context.Context, id int64, name, email, role string) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, role = $3
		WHERE id = $4
	`

	_, err := r.pool.Exec(ctx, query, name, email, role, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("user_id", id).Msg("failed to update user")
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// Delete removes a user row.
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("user_id", id).Msg("failed to delete user")
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
