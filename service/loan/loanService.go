package loansvc

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"bookcatalog/model"
)

// errors used by controllers

type ErrCode string

// ErrConflict covers both "id does not exist" and "book in the wrong
// borrow state". Telling the two apart would take a second query and
// reopen the race window the conditional update closes, so callers get
// one conflated answer.
const ErrConflict ErrCode = "CONFLICT"

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

const defaultBorrower = "unknown"

type Repo interface {
	Borrow(ctx context.Context, id int64, borrower string) (*model.Book, error)
	Return(ctx context.Context, id int64) (*model.Book, error)
}

type Service interface {
	// Borrow: Available -> Borrowed, recording the borrower.
	Borrow(ctx context.Context, id int64, borrower string) (*model.Book, error)

	// Return: Borrowed -> Available, clearing the borrower.
	Return(ctx context.Context, id int64) (*model.Book, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Borrow(ctx context.Context, id int64, borrower string) (*model.Book, error) {
	borrower = strings.TrimSpace(borrower)
	if borrower == "" {
		borrower = defaultBorrower
	}
	b, err := s.r.Borrow(ctx, id, borrower)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, makeErr(ErrConflict)
		}
		return nil, err
	}
	return b, nil
}

func (s *service) Return(ctx context.Context, id int64) (*model.Book, error) {
	b, err := s.r.Return(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, makeErr(ErrConflict)
		}
		return nil, err
	}
	return b, nil
}
