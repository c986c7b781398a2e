package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/entropass/entropass-go/internal/model"
)

var (
	ErrWordlistNotFound  = errors.New("wordlist not found")
	ErrDuplicateWordlist = errors.New("wordlist name already exists")
)

// WordlistRepository handles stored wordlist persistence operations.
type WordlistRepository struct {
	db *sql.DB
}

// NewWordlistRepository creates a new WordlistRepository.
func NewWordlistRepository(db *sql.DB) *WordlistRepository {
	return &WordlistRepository{db: db}
}

// Create inserts a new wordlist and sets the generated ID on the struct.
// Names are unique per user.
func (r *WordlistRepository) Create(ctx context.Context, wl *model.Wordlist) error {
	query := `INSERT INTO wordlists (user_id, name, words, word_count, bits_per_word)
		VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		wl.UserID, wl.Name, wl.Words, wl.WordCount, wl.BitsPerWord,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateWordlist
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	wl.ID = id
	return nil
}

// GetByName retrieves a wordlist by owner and name.
func (r *WordlistRepository) GetByName(ctx context.Context, userID int64, name string) (*model.Wordlist, error) {
	query := `SELECT id, user_id, name, words, word_count, bits_per_word, created_at, updated_at
		FROM wordlists WHERE user_id = ? AND name = ?`

	wl := &model.Wordlist{}
	err := r.db.QueryRowContext(ctx, query, userID, name).Scan(
		&wl.ID, &wl.UserID, &wl.Name, &wl.Words,
		&wl.WordCount, &wl.BitsPerWord, &wl.CreatedAt, &wl.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWordlistNotFound
		}
		return nil, err
	}

	return wl, nil
}

// ListByUser retrieves all wordlists owned by a user, words excluded,
// ordered by name.
func (r *WordlistRepository) ListByUser(ctx context.Context, userID int64) ([]model.Wordlist, error) {
	query := `SELECT id, user_id, name, word_count, bits_per_word, created_at, updated_at
		FROM wordlists WHERE user_id = ? ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []model.Wordlist
	for rows.Next() {
		var wl model.Wordlist
		if err := rows.Scan(
			&wl.ID, &wl.UserID, &wl.Name,
			&wl.WordCount, &wl.BitsPerWord, &wl.CreatedAt, &wl.UpdatedAt,
		); err != nil {
			return nil, err
		}
		lists = append(lists, wl)
	}

	return lists, rows.Err()
}

// Delete removes a wordlist by owner and name.
func (r *WordlistRepository) Delete(ctx context.Context, userID int64, name string) error {
	query := `DELETE FROM wordlists WHERE user_id = ? AND name = ?`

	result, err := r.db.ExecContext(ctx, query, userID, name)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrWordlistNotFound
	}

	return nil
}
