package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("not found")

const userColumns = `id, username, email, password_hash, role, profile_image, created_at`

const (
	insertUserQuery = `
		INSERT INTO users (username, email, password_hash, role, profile_image)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns

	getUserByIDQuery = `
		SELECT ` + userColumns + `
		FROM users WHERE id = $1`

	getUserByEmailQuery = `
		SELECT ` + userColumns + `
		FROM users WHERE email = $1`

	listUsersQuery = `
		SELECT ` + userColumns + `
		FROM users ORDER BY created_at DESC`

	usernameOrEmailExistsQuery = `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE username = $1 OR email = $2
		)`

	usernameTakenByOtherQuery = `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE username = $1 AND id <> $2
		)`

	updateUserQuery = `
		UPDATE users
		SET username      = COALESCE(NULLIF($2, ''), username),
		    password_hash = COALESCE(NULLIF($3, ''), password_hash),
		    profile_image = COALESCE(NULLIF($4, ''), profile_image)
		WHERE id = $1
		RETURNING ` + userColumns

	deleteUserQuery = `DELETE FROM users WHERE id = $1`
)

// User is the persisted credential record.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         string
	ProfileImage *string
	CreatedAt    time.Time
}

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, username, email, passwordHash, role string, profileImage *string) (User, error) {
	return r.scanUser(r.pool.QueryRow(ctx, insertUserQuery, username, email, passwordHash, role, profileImage))
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	return r.scanUser(r.pool.QueryRow(ctx, getUserByIDQuery, id))
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (User, error) {
	return r.scanUser(r.pool.QueryRow(ctx, getUserByEmailQuery, email))
}

func (r *Repository) List(ctx context.Context) ([]User, error) {
	rows, err := r.pool.Query(ctx, listUsersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		var user User
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.PasswordHash,
			&user.Role,
			&user.ProfileImage,
			&user.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// UsernameOrEmailExists reports whether either value is already taken,
// matched case-sensitively.
func (r *Repository) UsernameOrEmailExists(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, usernameOrEmailExistsQuery, username, email).Scan(&exists)
	return exists, err
}

// UsernameTakenByOther reports whether another user already holds the username.
func (r *Repository) UsernameTakenByOther(ctx context.Context, username string, selfID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, usernameTakenByOtherQuery, username, selfID).Scan(&exists)
	return exists, err
}

// Update overwrites the provided fields; empty strings leave the stored value
// untouched.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, username, passwordHash, profileImage string) (User, error) {
	return r.scanUser(r.pool.QueryRow(ctx, updateUserQuery, id, username, passwordHash, profileImage))
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, deleteUserQuery, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) scanUser(row pgx.Row) (User, error) {
	var user User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.ProfileImage,
		&user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrNotFound
	}
	return user, err
}
