// service/book/book_service_test.go
package booksvc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"

	"bookcatalog/model"
	booksvc "bookcatalog/service/book"
)

type repoMock struct {
	listFn   func(ctx context.Context, query string) ([]model.Book, error)
	createFn func(ctx context.Context, title, author, category, description string) (*model.Book, error)
	updateFn func(ctx context.Context, id int64, f booksvc.Fields) (*model.Book, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *repoMock) List(ctx context.Context, query string) ([]model.Book, error) {
	return m.listFn(ctx, query)
}
func (m *repoMock) Create(ctx context.Context, title, author, category, description string) (*model.Book, error) {
	return m.createFn(ctx, title, author, category, description)
}
func (m *repoMock) Update(ctx context.Context, id int64, f booksvc.Fields) (*model.Book, error) {
	return m.updateFn(ctx, id, f)
}
func (m *repoMock) Delete(ctx context.Context, id int64) error { return m.deleteFn(ctx, id) }

func TestCreate_Validation(t *testing.T) {
	s := booksvc.New(&repoMock{})
	if _, err := s.Create(context.Background(), "", "a", "c", "d"); booksvc.Code(err) != booksvc.ErrBadInput {
		t.Fatalf("got %v; want BAD_INPUT for empty title", err)
	}
	if _, err := s.Create(context.Background(), "   ", "a", "c", "d"); booksvc.Code(err) != booksvc.ErrBadInput {
		t.Fatalf("got %v; want BAD_INPUT for blank title", err)
	}
}

func TestCreate_Success(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, title, author, category, description string) (*model.Book, error) {
			if title != "Dune" || author != "" || category != "" || description != "" {
				return nil, errors.New("bad args")
			}
			return &model.Book{ID: 42, Title: title}, nil
		},
	}
	s := booksvc.New(m)
	b, err := s.Create(context.Background(), "Dune", "", "", "")
	if err != nil || b.ID != 42 {
		t.Fatalf("got %+v err=%v; want id 42 nil", b, err)
	}
	if b.IsBorrowed || b.Borrower != "" {
		t.Fatalf("new book must start available, got %+v", b)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	m := &repoMock{
		updateFn: func(ctx context.Context, id int64, f booksvc.Fields) (*model.Book, error) {
			return nil, pgx.ErrNoRows
		},
	}
	s := booksvc.New(m)
	if _, err := s.Update(context.Background(), 99, booksvc.Fields{}); booksvc.Code(err) != booksvc.ErrNotFound {
		t.Fatalf("got %v; want NOT_FOUND", err)
	}
}

func TestUpdate_PartialFieldsPassThrough(t *testing.T) {
	title := "The Hobbit"
	m := &repoMock{
		updateFn: func(ctx context.Context, id int64, f booksvc.Fields) (*model.Book, error) {
			if f.Title == nil || *f.Title != title {
				return nil, errors.New("title not forwarded")
			}
			if f.Author != nil || f.Category != nil || f.Description != nil {
				return nil, errors.New("absent fields must stay nil")
			}
			return &model.Book{ID: id, Title: title}, nil
		},
	}
	s := booksvc.New(m)
	b, err := s.Update(context.Background(), 7, booksvc.Fields{Title: &title})
	if err != nil || b.Title != title {
		t.Fatalf("got %+v err=%v", b, err)
	}
}

func TestDelete(t *testing.T) {
	m := &repoMock{
		deleteFn: func(ctx context.Context, id int64) error {
			if id == 1 {
				return nil
			}
			return pgx.ErrNoRows
		},
	}
	s := booksvc.New(m)
	if err := s.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := s.Delete(context.Background(), 2); booksvc.Code(err) != booksvc.ErrNotFound {
		t.Fatalf("got %v; want NOT_FOUND", err)
	}
}

func TestList_PassThrough(t *testing.T) {
	m := &repoMock{
		listFn: func(ctx context.Context, query string) ([]model.Book, error) {
			if query != "tolkien" {
				return nil, errors.New("query not forwarded")
			}
			return []model.Book{}, nil
		},
	}
	s := booksvc.New(m)
	rows, err := s.List(context.Background(), "tolkien")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if rows == nil {
		t.Fatal("empty result must be a valid empty slice")
	}
}
