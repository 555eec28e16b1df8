package model

import (
	"testing"
	"time"
)

func TestNewBookResponse_Available(t *testing.T) {
	b := Book{ID: 1, Title: "Dune"}
	r := NewBookResponse(b)

	if r.IsBorrowed || r.Borrower != "" {
		t.Fatalf("available book mapped wrong: %+v", r)
	}
	if r.BorrowedAt != "" || r.ReturnedAt != "" {
		t.Fatalf("unset timestamps must map to empty strings, got %q %q", r.BorrowedAt, r.ReturnedAt)
	}
}

func TestNewBookResponse_Borrowed(t *testing.T) {
	at := time.Date(2024, 5, 17, 9, 30, 0, 0, time.FixedZone("CET", 3600))
	b := Book{ID: 2, Title: "Dune", IsBorrowed: true, Borrower: "paul", BorrowedAt: &at}
	r := NewBookResponse(b)

	if !r.IsBorrowed || r.Borrower != "paul" {
		t.Fatalf("borrowed book mapped wrong: %+v", r)
	}
	if r.BorrowedAt != "2024-05-17T08:30:00Z" {
		t.Fatalf("timestamp must be RFC3339 UTC, got %q", r.BorrowedAt)
	}
	if r.ReturnedAt != "" {
		t.Fatalf("returnedAt must be empty while borrowed, got %q", r.ReturnedAt)
	}
}
