package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"bookstore-api/internal/domains/author"
	"bookstore-api/internal/infrastructure/database"
	"bookstore-api/internal/shared"
	"bookstore-api/pkg/cache"
)

const (
	authorCacheKeyPrefix = "author:"
	cacheTTL             = 15 * time.Minute

	pgForeignKeyViolation = "23503"
)

type postgresRepository struct {
	db    database.Querier
	cache cache.Cache // nil disables caching
}

// NewPostgresRepository creates the author repository. cache may be nil.
func NewPostgresRepository(db database.Querier, c cache.Cache) author.Repository {
	return &postgresRepository{db: db, cache: c}
}

func cacheKey(id int64) string {
	return fmt.Sprintf("%s%d", authorCacheKeyPrefix, id)
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]author.Author, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, first_name, last_name, bio FROM authors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	authors := []author.Author{}
	index := map[int64]int{}
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Bio); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		a.Books = []author.BookSummary{}
		index[a.ID] = len(authors)
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	bookRows, err := r.db.Query(ctx,
		`SELECT id, title, year, author_id FROM books ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query books for authors: %w", err)
	}
	defer bookRows.Close()

	for bookRows.Next() {
		var b author.BookSummary
		var authorID int64
		if err := bookRows.Scan(&b.ID, &b.Title, &b.Year, &authorID); err != nil {
			return nil, fmt.Errorf("failed to scan book summary: %w", err)
		}
		if i, ok := index[authorID]; ok {
			authors[i].Books = append(authors[i].Books, b)
		}
	}
	if err := bookRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book summaries: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*author.Author, error) {
	if r.cache != nil {
		var a author.Author
		if found, err := r.cache.Get(ctx, cacheKey(id), &a); err == nil && found {
			return &a, nil
		}
	}

	var a author.Author
	err := r.db.QueryRow(ctx,
		`SELECT id, first_name, last_name, bio FROM authors WHERE id = $1`, id,
	).Scan(&a.ID, &a.FirstName, &a.LastName, &a.Bio)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	a.Books = []author.BookSummary{}
	bookRows, err := r.db.Query(ctx,
		`SELECT id, title, year FROM books WHERE author_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query author books: %w", err)
	}
	defer bookRows.Close()

	for bookRows.Next() {
		var b author.BookSummary
		if err := bookRows.Scan(&b.ID, &b.Title, &b.Year); err != nil {
			return nil, fmt.Errorf("failed to scan book summary: %w", err)
		}
		a.Books = append(a.Books, b)
	}
	if err := bookRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book summaries: %w", err)
	}

	if r.cache != nil {
		_ = r.cache.Set(ctx, cacheKey(id), &a, cacheTTL)
	}

	return &a, nil
}

func (r *postgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM authors WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) shared.WriteResult {
	err := r.db.QueryRow(ctx,
		`INSERT INTO authors (first_name, last_name, bio)
         VALUES ($1, $2, $3)
         RETURNING id`,
		a.FirstName, a.LastName, a.Bio,
	).Scan(&a.ID)
	if err != nil {
		return shared.WriteFailed(fmt.Errorf("failed to create author: %w", err))
	}
	return shared.WriteOK(1)
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) shared.WriteResult {
	tag, err := r.db.Exec(ctx,
		`UPDATE authors
         SET first_name = $1, last_name = $2, bio = $3
         WHERE id = $4`,
		a.FirstName, a.LastName, a.Bio, a.ID,
	)
	if err != nil {
		return shared.WriteFailed(fmt.Errorf("failed to update author: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return shared.WriteFailed(author.ErrAuthorNotFound)
	}

	r.invalidate(ctx, a.ID)
	return shared.WriteOK(tag.RowsAffected())
}

func (r *postgresRepository) Delete(ctx context.Context, a *author.Author) shared.WriteResult {
	tag, err := r.db.Exec(ctx, `DELETE FROM authors WHERE id = $1`, a.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return shared.WriteFailed(author.ErrAuthorHasBooks)
		}
		return shared.WriteFailed(fmt.Errorf("failed to delete author: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return shared.WriteFailed(author.ErrAuthorNotFound)
	}

	r.invalidate(ctx, a.ID)
	return shared.WriteOK(tag.RowsAffected())
}

func (r *postgresRepository) invalidate(ctx context.Context, id int64) {
	if r.cache != nil {
		_ = r.cache.Delete(ctx, cacheKey(id))
	}
}
