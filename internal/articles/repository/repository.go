// Package repository provides PostgreSQL persistence for articles.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when no article matches the lookup.
var ErrNotFound = errors.New("article not found")

const articleColumns = `id, title, text, photo, created_by, created_at, updated_at`

const (
	insertArticleQuery = `
		INSERT INTO articles (title, text, photo, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + articleColumns

	getArticleByIDQuery = `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE id = $1`

	// The creator reference is expanded for the detail endpoint only.
	getArticleWithCreatorQuery = `
		SELECT a.id, a.title, a.text, a.photo, a.created_by, a.created_at, a.updated_at,
			u.username
		FROM articles a
		JOIN users u ON u.id = a.created_by
		WHERE a.id = $1`

	listArticlesQuery = `
		SELECT ` + articleColumns + `
		FROM articles
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	countArticlesQuery = `SELECT COUNT(*) FROM articles`

	// created_by is immutable; an empty photo keeps the stored one.
	updateArticleQuery = `
		UPDATE articles
		SET title = $1, text = $2,
			photo = COALESCE(NULLIF($3, ''), photo),
			updated_at = now()
		WHERE id = $4
		RETURNING ` + articleColumns

	deleteArticleQuery = `DELETE FROM articles WHERE id = $1`
)

type Article struct {
	ID        uuid.UUID
	Title     string
	Text      string
	Photo     string
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, title, text, photo string, createdBy uuid.UUID) (Article, error) {
	row := r.pool.QueryRow(ctx, insertArticleQuery, title, text, photo, createdBy)
	return scanArticle(row)
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Article, error) {
	row := r.pool.QueryRow(ctx, getArticleByIDQuery, id)
	return scanArticle(row)
}

// GetWithCreator returns the article plus the creator's username.
func (r *Repository) GetWithCreator(ctx context.Context, id uuid.UUID) (Article, string, error) {
	var (
		a        Article
		username string
	)
	err := r.pool.QueryRow(ctx, getArticleWithCreatorQuery, id).Scan(
		&a.ID, &a.Title, &a.Text, &a.Photo, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
		&username,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Article{}, "", ErrNotFound
		}
		return Article{}, "", err
	}
	return a, username, nil
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]Article, error) {
	rows, err := r.pool.Query(ctx, listArticlesQuery, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, countArticlesQuery).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, title, text, photo string) (Article, error) {
	row := r.pool.QueryRow(ctx, updateArticleQuery, title, text, photo, id)
	return scanArticle(row)
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, deleteArticleQuery, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanArticle(row pgx.Row) (Article, error) {
	var a Article
	err := row.Scan(&a.ID, &a.Title, &a.Text, &a.Photo, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Article{}, ErrNotFound
		}
		return Article{}, err
	}
	return a, nil
}
