package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestFavoriteEventDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO user_favorited_events`)).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	if err := s.FavoriteEvent(context.Background(), 1, 7); !errors.Is(err, ErrAlreadyFavorited) {
		t.Fatalf("expected ErrAlreadyFavorited, got %v", err)
	}
}

func TestFavoriteEventMissingEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO user_favorited_events`)).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	if err := s.FavoriteEvent(context.Background(), 1, 999); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound for missing event, got %v", err)
	}
}
