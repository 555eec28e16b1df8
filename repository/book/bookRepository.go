package bookrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookcatalog/model"
)

const bookCols = `id, title, author, category, description, is_borrowed, borrower, borrowed_at, returned_at`

// Fields carries a partial update; nil means "leave unchanged".
type Fields struct {
	Title       *string
	Author      *string
	Category    *string
	Description *string
}

type Repo interface {
	List(ctx context.Context, query string) ([]model.Book, error)
	Create(ctx context.Context, title, author, category, description string) (*model.Book, error)
	Update(ctx context.Context, id int64, f Fields) (*model.Book, error)
	Delete(ctx context.Context, id int64) error
}

type repo struct{ pool *pgxpool.Pool }

func New(pool *pgxpool.Pool) Repo { return &repo{pool} }

func (r *repo) List(ctx context.Context, query string) ([]model.Book, error) {
	const q = `
SELECT ` + bookCols + `
FROM books
WHERE $1 = ''
   OR title ILIKE '%' || $1 || '%'
   OR author ILIKE '%' || $1 || '%'
   OR category ILIKE '%' || $1 || '%'
ORDER BY id ASC`
	rows, err := r.pool.Query(ctx, q, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Book{}
	for rows.Next() {
		var b model.Book
		if err := scanBook(rows, &b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *repo) Create(ctx context.Context, title, author, category, description string) (*model.Book, error) {
	const q = `
INSERT INTO books (title, author, category, description)
VALUES ($1,$2,$3,$4)
RETURNING ` + bookCols
	var b model.Book
	if err := scanBook(r.pool.QueryRow(ctx, q, title, author, category, description), &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repo) Update(ctx context.Context, id int64, f Fields) (*model.Book, error) {
	// One statement; absent fields keep their value via COALESCE.
	const q = `
UPDATE books
SET title       = COALESCE($2, title),
    author      = COALESCE($3, author),
    category    = COALESCE($4, category),
    description = COALESCE($5, description)
WHERE id = $1
RETURNING ` + bookCols
	var b model.Book
	if err := scanBook(r.pool.QueryRow(ctx, q, id, f.Title, f.Author, f.Category, f.Description), &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

type rowScanner interface{ Scan(dest ...any) error }

func scanBook(row rowScanner, b *model.Book) error {
	return row.Scan(
		&b.ID, &b.Title, &b.Author, &b.Category, &b.Description,
		&b.IsBorrowed, &b.Borrower, &b.BorrowedAt, &b.ReturnedAt,
	)
}
