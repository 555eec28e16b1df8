package loanrepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"bookcatalog/model"
)

const bookCols = `id, title, author, category, description, is_borrowed, borrower, borrowed_at, returned_at`

// Repo holds the two borrow-state transitions. Each one is a single
// conditional UPDATE: the state precondition sits in the WHERE clause,
// so two concurrent calls against the same id can never both match a
// row. When no row matches (missing id or wrong state) the query
// returns zero rows and Scan surfaces pgx.ErrNoRows; never pre-check
// the state with a separate SELECT.
type Repo interface {
	Borrow(ctx context.Context, id int64, borrower string) (*model.Book, error)
	Return(ctx context.Context, id int64) (*model.Book, error)
}

type repo struct{ pool *pgxpool.Pool }

func New(pool *pgxpool.Pool) Repo { return &repo{pool} }

func (r *repo) Borrow(ctx context.Context, id int64, borrower string) (*model.Book, error) {
	const q = `
UPDATE books
SET is_borrowed = TRUE,
    borrower    = $2,
    borrowed_at = NOW(),
    returned_at = NULL
WHERE id = $1
  AND is_borrowed = FALSE
RETURNING ` + bookCols
	var b model.Book
	if err := scanBook(r.pool.QueryRow(ctx, q, id, borrower), &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repo) Return(ctx context.Context, id int64) (*model.Book, error) {
	const q = `
UPDATE books
SET is_borrowed = FALSE,
    borrower    = '',
    returned_at = NOW()
WHERE id = $1
  AND is_borrowed = TRUE
RETURNING ` + bookCols
	var b model.Book
	if err := scanBook(r.pool.QueryRow(ctx, q, id), &b); err != nil {
		return nil, err
	}
	return &b, nil
}

type rowScanner interface{ Scan(dest ...any) error }

func scanBook(row rowScanner, b *model.Book) error {
	return row.Scan(
		&b.ID, &b.Title, &b.Author, &b.Category, &b.Description,
		&b.IsBorrowed, &b.Borrower, &b.BorrowedAt, &b.ReturnedAt,
	)
}
