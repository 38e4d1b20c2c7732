package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/banjomaryam17/socialmediaAPP/internal/model"
)

// userRepository implements UserRepository using sqlx
type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user. Uniqueness is enforced by the constraint on
// username rather than a check-then-insert, so two concurrent signups with
// the same name cannot both succeed.
func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	query := `
		INSERT INTO users (username, password, first_name, last_name, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		u.Username,
		u.Password,
		u.FirstName,
		u.LastName,
		u.AvatarURL,
	)

	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return model.ErrUsernameExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by their ID
func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `
		SELECT id, username, password, first_name, last_name, avatar_url, created_at
		FROM users
		WHERE id = $1
	`

	var u model.User
	err := r.db.GetContext(ctx, &u, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &u, nil
}

// GetByUsername retrieves a user by their username. The match is exact:
// usernames are case-sensitive-unique.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `
		SELECT id, username, password, first_name, last_name, avatar_url, created_at
		FROM users
		WHERE username = $1
	`

	var u model.User
	err := r.db.GetContext(ctx, &u, query, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return &u, nil
}

// ListAll returns the user directory for a viewer. Each count is an
// independent scalar subquery against the live rows, so the tallies cannot
// cross-multiply and cannot drift from the edge tables.
func (r *userRepository) ListAll(ctx context.Context, viewerID int64) ([]model.UserStats, error) {
	query := `
		SELECT u.id, u.username, u.avatar_url,
		       (SELECT COUNT(*) FROM followers f WHERE f.following_id = u.id)  AS follower_count,
		       (SELECT COUNT(*) FROM followers f WHERE f.follower_id = u.id)   AS following_count,
		       (SELECT COUNT(*) FROM posts p WHERE p.user_id = u.id)           AS post_count,
		       EXISTS(SELECT 1 FROM followers f
		              WHERE f.follower_id = $1 AND f.following_id = u.id)      AS is_following
		FROM users u
		WHERE u.id <> $1
		ORDER BY u.username ASC
	`

	users := []model.UserStats{}
	if err := r.db.SelectContext(ctx, &users, query, viewerID); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// Search matches usernames by case-insensitive substring, excluding the
// viewer, each row flagged with the viewer's follow state.
func (r *userRepository) Search(ctx context.Context, viewerID int64, query string, limit int) ([]model.SearchResult, error) {
	searchQuery := `
		SELECT u.id, u.username, u.avatar_url,
		       EXISTS(SELECT 1 FROM followers f
		              WHERE f.follower_id = $1 AND f.following_id = u.id) AS is_following
		FROM users u
		WHERE u.username ILIKE $2 AND u.id <> $1
		ORDER BY u.username ASC
		LIMIT $3
	`

	users := []model.SearchResult{}
	err := r.db.SelectContext(ctx, &users, searchQuery, viewerID, "%"+query+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	return users, nil
}
