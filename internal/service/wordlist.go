package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/entropass/entropass-go/internal/entropy"
	"github.com/entropass/entropass-go/internal/model"
	"github.com/entropass/entropass-go/internal/repository"
	"github.com/entropass/entropass-go/internal/wordlist"
)

const (
	maxWordlistWords = 100000
	maxWordLength    = 128
)

var (
	ErrWordlistNameInvalid  = errors.New("wordlist name must be 1-64 characters of a-z, 0-9 or -")
	ErrWordlistNameReserved = errors.New("wordlist name shadows a built-in list")
	ErrWordlistTooSmall     = errors.New("wordlist must contain at least 2 words")
	ErrWordlistTooLarge     = fmt.Errorf("wordlist must contain at most %d words", maxWordlistWords)
	ErrWordInvalid          = errors.New("words must be 1-128 characters without whitespace")
	ErrWordlistNotFound     = errors.New("wordlist not found")
	ErrWordlistTaken        = errors.New("wordlist name already taken")
)

var wordlistNameRe = regexp.MustCompile(`^[a-z0-9-]{1,64}$`)

// WordlistService handles stored custom wordlist business logic.
type WordlistService struct {
	repo *repository.WordlistRepository
}

// NewWordlistService creates a new WordlistService.
func NewWordlistService(repo *repository.WordlistRepository) *WordlistService {
	return &WordlistService{repo: repo}
}

// Create validates and stores a custom wordlist, computing its per-word
// entropy at upload time.
func (s *WordlistService) Create(ctx context.Context, userID int64, req model.CreateWordlistRequest) (model.WordlistResponse, error) {
	if !wordlistNameRe.MatchString(req.Name) {
		return model.WordlistResponse{}, ErrWordlistNameInvalid
	}
	if wordlist.IsBuiltin(req.Name) {
		return model.WordlistResponse{}, ErrWordlistNameReserved
	}
	if len(req.Words) < 2 {
		return model.WordlistResponse{}, ErrWordlistTooSmall
	}
	if len(req.Words) > maxWordlistWords {
		return model.WordlistResponse{}, ErrWordlistTooLarge
	}
	for _, w := range req.Words {
		if w == "" || len(w) > maxWordLength || strings.ContainsAny(w, " \t\n\r") {
			return model.WordlistResponse{}, ErrWordInvalid
		}
	}

	bits, err := entropy.SetBits(len(req.Words))
	if err != nil {
		return model.WordlistResponse{}, err
	}

	wl := model.Wordlist{
		UserID:      userID,
		Name:        req.Name,
		Words:       strings.Join(req.Words, "\n"),
		WordCount:   len(req.Words),
		BitsPerWord: bits,
	}

	if err := s.repo.Create(ctx, &wl); err != nil {
		if errors.Is(err, repository.ErrDuplicateWordlist) {
			return model.WordlistResponse{}, ErrWordlistTaken
		}
		return model.WordlistResponse{}, err
	}

	return model.WordlistResponse{
		Name:        wl.Name,
		WordCount:   wl.WordCount,
		BitsPerWord: wl.BitsPerWord,
		CreatedAt:   wl.CreatedAt,
	}, nil
}

// List returns all wordlists owned by a user.
func (s *WordlistService) List(ctx context.Context, userID int64) ([]model.WordlistResponse, error) {
	lists, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]model.WordlistResponse, len(lists))
	for i, wl := range lists {
		result[i] = model.WordlistResponse{
			Name:        wl.Name,
			WordCount:   wl.WordCount,
			BitsPerWord: wl.BitsPerWord,
			CreatedAt:   wl.CreatedAt,
		}
	}
	return result, nil
}

// Get returns one stored wordlist including its words.
func (s *WordlistService) Get(ctx context.Context, userID int64, name string) (model.WordlistDetailResponse, error) {
	wl, err := s.repo.GetByName(ctx, userID, name)
	if err != nil {
		if errors.Is(err, repository.ErrWordlistNotFound) {
			return model.WordlistDetailResponse{}, ErrWordlistNotFound
		}
		return model.WordlistDetailResponse{}, err
	}

	return model.WordlistDetailResponse{
		Name:        wl.Name,
		Words:       strings.Split(wl.Words, "\n"),
		WordCount:   wl.WordCount,
		BitsPerWord: wl.BitsPerWord,
		CreatedAt:   wl.CreatedAt,
	}, nil
}

// Delete removes a stored wordlist.
func (s *WordlistService) Delete(ctx context.Context, userID int64, name string) error {
	err := s.repo.Delete(ctx, userID, name)
	if errors.Is(err, repository.ErrWordlistNotFound) {
		return ErrWordlistNotFound
	}
	return err
}
