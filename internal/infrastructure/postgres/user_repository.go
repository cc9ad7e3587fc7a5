package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sarvcafe/cafepos-api/internal/domain"
	"github.com/sarvcafe/cafepos-api/internal/domain/entity"
	"github.com/sarvcafe/cafepos-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, name, phone, password_hash, role, subscription_tier, active, has_online_menu, cafe_image_url, instagram_url, created_at, updated_at`

// UserRepo implements the UserRepository port on PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository builds the persistence adapter for cafe accounts.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persists a new account. A phone already in use maps to ErrDuplicate.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Name, user.Phone, user.PasswordHash, user.Role, user.SubscriptionTier,
		user.Active, user.HasOnlineMenu, user.CafeImageURL, user.InstagramURL,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID loads an account by ID; nil when absent.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := r.scanOne(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// GetByPhone loads an account by its normalized phone; nil when absent.
func (r *UserRepo) GetByPhone(phone string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE phone = $1`
	u, err := r.scanOne(r.pool.QueryRow(context.Background(), query, phone))
	if err != nil {
		return nil, fmt.Errorf("get user by phone: %w", err)
	}
	return u, nil
}

// Update persists account changes.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET name = $2, phone = $3, password_hash = $4, role = $5, subscription_tier = $6,
			active = $7, has_online_menu = $8, cafe_image_url = $9, instagram_url = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Name, user.Phone, user.PasswordHash, user.Role, user.SubscriptionTier,
		user.Active, user.HasOnlineMenu, user.CafeImageURL, user.InstagramURL, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List returns all accounts, newest first. Used by the admin console.
func (r *UserRepo) List() ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Phone, &u.PasswordHash, &u.Role, &u.SubscriptionTier,
			&u.Active, &u.HasOnlineMenu, &u.CafeImageURL, &u.InstagramURL, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

func (r *UserRepo) scanOne(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Name, &u.Phone, &u.PasswordHash, &u.Role, &u.SubscriptionTier,
		&u.Active, &u.HasOnlineMenu, &u.CafeImageURL, &u.InstagramURL, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
