package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"bookstore-api/internal/domains/book"
	"bookstore-api/internal/infrastructure/database"
	"bookstore-api/internal/shared"
	"bookstore-api/pkg/cache"
)

const (
	bookCacheKeyPrefix = "book:"
	cacheTTL           = 15 * time.Minute

	pgForeignKeyViolation = "23503"
)

type postgresRepository struct {
	db    database.Querier
	cache cache.Cache // nil disables caching
}

// NewPostgresRepository creates the book repository. cache may be nil.
func NewPostgresRepository(db database.Querier, c cache.Cache) book.Repository {
	return &postgresRepository{db: db, cache: c}
}

func cacheKey(id int64) string {
	return fmt.Sprintf("%s%d", bookCacheKeyPrefix, id)
}

const selectColumns = `
    SELECT b.id, b.title, b.year, b.isbn, b.summary, b.image, b.price, b.author_id,
           a.id, a.first_name, a.last_name
    FROM books b
    JOIN authors a ON a.id = b.author_id`

func scanBook(row pgx.Row) (*book.Book, error) {
	var b book.Book
	var a book.AuthorSummary
	err := row.Scan(
		&b.ID, &b.Title, &b.Year, &b.ISBN, &b.Summary, &b.Image, &b.Price, &b.AuthorID,
		&a.ID, &a.FirstName, &a.LastName,
	)
	if err != nil {
		return nil, err
	}
	b.Author = &a
	return &b, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]book.Book, error) {
	rows, err := r.db.Query(ctx, selectColumns+` ORDER BY b.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := []book.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}
	return books, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*book.Book, error) {
	if r.cache != nil {
		var b book.Book
		if found, err := r.cache.Get(ctx, cacheKey(id), &b); err == nil && found {
			return &b, nil
		}
	}

	b, err := scanBook(r.db.QueryRow(ctx, selectColumns+` WHERE b.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	if r.cache != nil {
		_ = r.cache.Set(ctx, cacheKey(id), b, cacheTTL)
	}
	return b, nil
}

func (r *postgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check book existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) shared.WriteResult {
	err := r.db.QueryRow(ctx,
		`INSERT INTO books (title, year, isbn, summary, image, price, author_id)
         VALUES ($1, $2, $3, $4, $5, $6, $7)
         RETURNING id`,
		b.Title, b.Year, b.ISBN, b.Summary, b.Image, b.Price, b.AuthorID,
	).Scan(&b.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return shared.WriteFailed(book.ErrAuthorMissing)
		}
		return shared.WriteFailed(fmt.Errorf("failed to create book: %w", err))
	}
	return shared.WriteOK(1)
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) shared.WriteResult {
	tag, err := r.db.Exec(ctx,
		`UPDATE books
         SET title = $1, year = $2, isbn = $3, summary = $4, image = $5, price = $6, author_id = $7
         WHERE id = $8`,
		b.Title, b.Year, b.ISBN, b.Summary, b.Image, b.Price, b.AuthorID, b.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return shared.WriteFailed(book.ErrAuthorMissing)
		}
		return shared.WriteFailed(fmt.Errorf("failed to update book: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return shared.WriteFailed(book.ErrBookNotFound)
	}

	r.invalidate(ctx, b.ID)
	return shared.WriteOK(tag.RowsAffected())
}

func (r *postgresRepository) Delete(ctx context.Context, b *book.Book) shared.WriteResult {
	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, b.ID)
	if err != nil {
		return shared.WriteFailed(fmt.Errorf("failed to delete book: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return shared.WriteFailed(book.ErrBookNotFound)
	}

	r.invalidate(ctx, b.ID)
	return shared.WriteOK(tag.RowsAffected())
}

func (r *postgresRepository) invalidate(ctx context.Context, id int64) {
	if r.cache != nil {
		_ = r.cache.Delete(ctx, cacheKey(id))
	}
}
