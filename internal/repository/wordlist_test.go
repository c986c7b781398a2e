package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/entropass/entropass-go/internal/model"
)

func newWordlistRepoWithMock(t *testing.T) (*WordlistRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewWordlistRepository(db), mock, db
}

func TestWordlistCreate(t *testing.T) {
	repo, mock, db := newWordlistRepoWithMock(t)
	defer db.Close()

	q := regexp.QuoteMeta(`INSERT INTO wordlists (user_id, name, words, word_count, bits_per_word) VALUES (?, ?, ?, ?, ?)`)
	mock.ExpectExec(q).
		WithArgs(int64(1), "mylist", "alpha\nbeta\ngamma\ndelta", 4, 2.0).
		WillReturnResult(sqlmock.NewResult(7, 1))

	wl := &model.Wordlist{
		UserID:      1,
		Name:        "mylist",
		Words:       "alpha\nbeta\ngamma\ndelta",
		WordCount:   4,
		BitsPerWord: 2.0,
	}
	if err := repo.Create(context.Background(), wl); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if wl.ID != 7 {
		t.Fatalf("expected generated ID 7, got %d", wl.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWordlistCreateDuplicate(t *testing.T) {
	repo, mock, db := newWordlistRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO wordlists").
		WithArgs(int64(1), "mylist", "a\nb", 2, 1.0).
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry '1-mylist' for key 'wordlists.user_id_name'"))

	err := repo.Create(context.Background(), &model.Wordlist{
		UserID: 1, Name: "mylist", Words: "a\nb", WordCount: 2, BitsPerWord: 1.0,
	})
	if !errors.Is(err, ErrDuplicateWordlist) {
		t.Fatalf("expected ErrDuplicateWordlist, got %v", err)
	}
}

func TestWordlistGetByName(t *testing.T) {
	repo, mock, db := newWordlistRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "words", "word_count", "bits_per_word", "created_at", "updated_at"}).
		AddRow(7, 1, "mylist", "alpha\nbeta", 2, 1.0, now, now)
	mock.ExpectQuery("SELECT (.+) FROM wordlists WHERE user_id = \\? AND name = \\?").
		WithArgs(int64(1), "mylist").
		WillReturnRows(rows)

	wl, err := repo.GetByName(context.Background(), 1, "mylist")
	if err != nil {
		t.Fatalf("GetByName error: %v", err)
	}
	if wl.ID != 7 || wl.UserID != 1 || wl.Name != "mylist" {
		t.Fatalf("unexpected wordlist: %+v", wl)
	}
	if wl.Words != "alpha\nbeta" || wl.WordCount != 2 || wl.BitsPerWord != 1.0 {
		t.Fatalf("unexpected wordlist contents: %+v", wl)
	}
}

func TestWordlistGetByNameOtherOwner(t *testing.T) {
	repo, mock, db := newWordlistRepoWithMock(t)
	defer db.Close()

	// Lookups are scoped by owner: user 2 asking for user 1's list gets no
	// rows, not the list.
	mock.ExpectQuery("SELECT (.+) FROM wordlists WHERE user_id = \\? AND name = \\?").
		WithArgs(int64(2), "mylist").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByName(context.Background(), 2, "mylist")
	if !errors.Is(err, ErrWordlistNotFound) {
		t.Fatalf("expected ErrWordlistNotFound, got %v", err)
	}
}

func TestWordlistListByUser(t *testing.T) {
	repo, mock, db := newWordlistRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "word_count", "bits_per_word", "created_at", "updated_at"}).
		AddRow(3, 1, "animals", 128, 7.0, now, now).
		AddRow(7, 1, "mylist", 2, 1.0, now, now)
	mock.ExpectQuery("SELECT (.+) FROM wordlists WHERE user_id = \\? ORDER BY name ASC").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	lists, err := repo.ListByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(lists) != 2 {
		t.Fatalf("expected 2 wordlists, got %d", len(lists))
	}
	if lists[0].Name != "animals" || lists[1].Name != "mylist" {
		t.Fatalf("unexpected order: %q, %q", lists[0].Name, lists[1].Name)
	}
	if lists[0].Words != "" {
		t.Fatal("listing should not carry the words column")
	}
}

func TestWordlistDelete(t *testing.T) {
	repo, mock, db := newWordlistRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM wordlists WHERE user_id = ? AND name = ?`)).
		WithArgs(int64(1), "mylist").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 1, "mylist"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestWordlistDeleteMissing(t *testing.T) {
	repo, mock, db := newWordlistRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM wordlists WHERE user_id = ? AND name = ?`)).
		WithArgs(int64(1), "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 1, "ghost")
	if !errors.Is(err, ErrWordlistNotFound) {
		t.Fatalf("expected ErrWordlistNotFound, got %v", err)
	}
}
