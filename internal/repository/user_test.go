package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/entropass/entropass-go/internal/model"
)

func TestNewUserRepository(t *testing.T) {
	repo := NewUserRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil UserRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestSentinelErrors(t *testing.T) {
	if ErrUserNotFound == nil {
		t.Fatal("ErrUserNotFound should not be nil")
	}
	if ErrDuplicateEmail == nil {
		t.Fatal("ErrDuplicateEmail should not be nil")
	}
	if ErrUserNotFound.Error() != "user not found" {
		t.Fatalf("unexpected error message: %s", ErrUserNotFound.Error())
	}
	if ErrDuplicateEmail.Error() != "email already exists" {
		t.Fatalf("unexpected error message: %s", ErrDuplicateEmail.Error())
	}
}

func TestIsDuplicateEntryError(t *testing.T) {
	if isDuplicateEntryError(nil) {
		t.Fatal("nil error should not be a duplicate entry error")
	}
	if isDuplicateEntryError(ErrUserNotFound) {
		t.Fatal("ErrUserNotFound should not be a duplicate entry error")
	}
}

func TestUserCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users (email, auth_hash) VALUES (?, ?)`)).
		WithArgs("alice@example.com", "$argon2id$hash").
		WillReturnResult(sqlmock.NewResult(42, 1))

	user := &model.User{Email: "alice@example.com", AuthHash: "$argon2id$hash"}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if user.ID != 42 {
		t.Fatalf("expected generated ID 42, got %d", user.ID)
	}
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()
	repo := NewUserRepository(db)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("alice@example.com", "$argon2id$hash").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'alice@example.com' for key 'users.email'"))

	err = repo.Create(context.Background(), &model.User{Email: "alice@example.com", AuthHash: "$argon2id$hash"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}
