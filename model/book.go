// model/book.go
package model

import "time"

type Book struct {
	ID          int64
	Title       string
	Author      string
	Category    string
	Description string
	IsBorrowed  bool
	Borrower    string
	BorrowedAt  *time.Time
	ReturnedAt  *time.Time
}

// BookResponse is the wire shape of a catalog entry. Timestamps are
// RFC3339 in UTC, or the empty string while unset.
type BookResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Category    string `json:"category"`
	Description string `json:"description"`
	IsBorrowed  bool   `json:"isBorrowed"`
	Borrower    string `json:"borrower"`
	BorrowedAt  string `json:"borrowedAt"`
	ReturnedAt  string `json:"returnedAt"`
}

func NewBookResponse(b Book) BookResponse {
	return BookResponse{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Category:    b.Category,
		Description: b.Description,
		IsBorrowed:  b.IsBorrowed,
		Borrower:    b.Borrower,
		BorrowedAt:  fmtTime(b.BorrowedAt),
		ReturnedAt:  fmtTime(b.ReturnedAt),
	}
}

func fmtTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
