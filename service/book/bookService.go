package booksvc

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"bookcatalog/model"
	bookrepo "bookcatalog/repository/book"
)

// errors used by controllers

type ErrCode string

const (
	ErrBadInput ErrCode = "BAD_INPUT"
	ErrNotFound ErrCode = "NOT_FOUND"
)

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

type Fields = bookrepo.Fields

type Repo interface {
	List(ctx context.Context, query string) ([]model.Book, error)
	Create(ctx context.Context, title, author, category, description string) (*model.Book, error)
	Update(ctx context.Context, id int64, f Fields) (*model.Book, error)
	Delete(ctx context.Context, id int64) error
}

type Service interface {
	List(ctx context.Context, query string) ([]model.Book, error)
	Create(ctx context.Context, title, author, category, description string) (*model.Book, error)
	Update(ctx context.Context, id int64, f Fields) (*model.Book, error)
	Delete(ctx context.Context, id int64) error
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context, query string) ([]model.Book, error) {
	return s.r.List(ctx, query)
}

func (s *service) Create(ctx context.Context, title, author, category, description string) (*model.Book, error) {
	if strings.TrimSpace(title) == "" {
		return nil, makeErr(ErrBadInput)
	}
	b, err := s.r.Create(ctx, title, author, category, description)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.NotNullViolation {
			return nil, makeErr(ErrBadInput)
		}
		return nil, err
	}
	return b, nil
}

func (s *service) Update(ctx context.Context, id int64, f Fields) (*model.Book, error) {
	b, err := s.r.Update(ctx, id, f)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.r.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return makeErr(ErrNotFound)
		}
		return err
	}
	return nil
}
