package model

import "time"

// Wordlist represents a stored custom wordlist in the database. Words holds
// the list newline-joined, the storage form.
type Wordlist struct {
	ID          int64
	UserID      int64
	Name        string
	Words       string
	WordCount   int
	BitsPerWord float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateWordlistRequest represents a wordlist upload.
type CreateWordlistRequest struct {
	Name  string   `json:"name"`
	Words []string `json:"words"`
}

// WordlistResponse represents a stored wordlist without its words.
type WordlistResponse struct {
	Name        string    `json:"name"`
	WordCount   int       `json:"word_count"`
	BitsPerWord float64   `json:"bits_per_word"`
	CreatedAt   time.Time `json:"created_at"`
}

// WordlistDetailResponse represents a stored wordlist including its words.
type WordlistDetailResponse struct {
	Name        string    `json:"name"`
	Words       []string  `json:"words"`
	WordCount   int       `json:"word_count"`
	BitsPerWord float64   `json:"bits_per_word"`
	CreatedAt   time.Time `json:"created_at"`
}
