package service

import (
	"context"
	"errors"
	"strings"

	"github.com/entropass/entropass-go/internal/credential"
	"github.com/entropass/entropass-go/internal/crypto"
	"github.com/entropass/entropass-go/internal/model"
	"github.com/entropass/entropass-go/internal/repository"
	"github.com/entropass/entropass-go/internal/wordlist"
)

// DefaultEntropyBits is the entropy target applied when a request sets
// neither an explicit count/length nor its own target.
const DefaultEntropyBits = 77.0

var ErrUnknownWordlist = errors.New("unknown wordlist")

// GenerateService handles secret generation and entropy planning.
type GenerateService struct {
	src   crypto.Source
	lists *repository.WordlistRepository
}

// NewGenerateService creates a new GenerateService. lists may be nil, in
// which case only the built-in wordlists resolve.
func NewGenerateService(src crypto.Source, lists *repository.WordlistRepository) *GenerateService {
	return &GenerateService{src: src, lists: lists}
}

// resolveWordlist maps a request's wordlist name to a concrete list: the
// default for an empty name, then built-ins, then the caller's stored lists.
func (s *GenerateService) resolveWordlist(ctx context.Context, userID int64, name string) (wordlist.List, error) {
	if name == "" {
		return wordlist.Builtin(wordlist.EffLarge)
	}
	if wordlist.IsBuiltin(name) {
		return wordlist.Builtin(name)
	}

	if s.lists == nil || userID == 0 {
		return wordlist.List{}, ErrUnknownWordlist
	}

	stored, err := s.lists.GetByName(ctx, userID, name)
	if err != nil {
		if errors.Is(err, repository.ErrWordlistNotFound) {
			return wordlist.List{}, ErrUnknownWordlist
		}
		return wordlist.List{}, err
	}

	return wordlist.List{
		Name:        stored.Name,
		Words:       strings.Split(stored.Words, "\n"),
		BitsPerWord: stored.BitsPerWord,
	}, nil
}

// Passphrase generates a passphrase. A missing word count is derived from
// the entropy budget, defaulting to DefaultEntropyBits.
func (s *GenerateService) Passphrase(ctx context.Context, userID int64, req model.PassphraseRequest) (model.PassphraseResponse, error) {
	list, err := s.resolveWordlist(ctx, userID, req.Wordlist)
	if err != nil {
		return model.PassphraseResponse{}, err
	}

	cred := credential.New(s.src)
	cred.SetWordlist(list)
	if req.Separator != nil {
		cred.SetSeparator(*req.Separator)
	}

	numbers := intOrDefault(req.Numbers, 0)
	if err := cred.SetNumberCount(numbers); err != nil {
		return model.PassphraseResponse{}, err
	}

	var words int
	if req.Words != nil {
		words = *req.Words
	} else {
		if err := cred.SetEntropyBits(floatOrDefault(req.EntropyBits, DefaultEntropyBits)); err != nil {
			return model.PassphraseResponse{}, err
		}
		words, err = cred.WordsNeeded()
		if err != nil {
			return model.PassphraseResponse{}, err
		}
	}
	if err := cred.SetWordCount(words); err != nil {
		return model.PassphraseResponse{}, err
	}

	parts, err := cred.GeneratePassphrase(req.Uppercase)
	if err != nil {
		return model.PassphraseResponse{}, err
	}

	bits, err := cred.PassphraseBits()
	if err != nil {
		return model.PassphraseResponse{}, err
	}

	return model.PassphraseResponse{
		Passphrase:  cred.String(),
		Parts:       parts,
		Words:       words,
		Numbers:     numbers,
		Wordlist:    list.Name,
		EntropyBits: bits,
	}, nil
}

// Password generates a password. A missing length is derived from the
// entropy budget, defaulting to DefaultEntropyBits.
func (s *GenerateService) Password(req model.PasswordRequest) (model.PasswordResponse, error) {
	cred := credential.New(s.src)
	cred.SetSeparator("")
	cred.SetClasses(
		boolOrDefault(req.Lowercase, true),
		boolOrDefault(req.Uppercase, true),
		boolOrDefault(req.Digits, true),
		boolOrDefault(req.Punctuation, true),
	)

	var length int
	var err error
	if req.Length != nil {
		length = *req.Length
	} else {
		if err := cred.SetEntropyBits(floatOrDefault(req.EntropyBits, DefaultEntropyBits)); err != nil {
			return model.PasswordResponse{}, err
		}
		length, err = cred.PasswordLengthNeeded()
		if err != nil {
			return model.PasswordResponse{}, err
		}
	}
	if err := cred.SetPasswordLength(length); err != nil {
		return model.PasswordResponse{}, err
	}

	if _, err := cred.GeneratePassword(); err != nil {
		return model.PasswordResponse{}, err
	}

	bits, err := cred.PasswordBits()
	if err != nil {
		return model.PasswordResponse{}, err
	}

	return model.PasswordResponse{
		Password:    cred.String(),
		Length:      length,
		EntropyBits: bits,
	}, nil
}

// UUID generates a UUIDv4 rendered with dashes.
func (s *GenerateService) UUID() (model.UUIDResponse, error) {
	cred := credential.New(s.src)
	cred.SetSeparator("-")

	parts, err := cred.GenerateUUID4()
	if err != nil {
		return model.UUIDResponse{}, err
	}

	return model.UUIDResponse{
		UUID:  cred.String(),
		Parts: parts,
	}, nil
}

// PlanPassphrase reports how many words reach the requested entropy target
// and the entropy that configuration actually carries.
func (s *GenerateService) PlanPassphrase(ctx context.Context, userID int64, req model.PassphrasePlanRequest) (model.PassphrasePlanResponse, error) {
	list, err := s.resolveWordlist(ctx, userID, req.Wordlist)
	if err != nil {
		return model.PassphrasePlanResponse{}, err
	}

	cred := credential.New(s.src)
	cred.SetWordlist(list)

	numbers := intOrDefault(req.Numbers, 0)
	if err := cred.SetNumberCount(numbers); err != nil {
		return model.PassphrasePlanResponse{}, err
	}
	if err := cred.SetEntropyBits(req.EntropyBits); err != nil {
		return model.PassphrasePlanResponse{}, err
	}

	words, err := cred.WordsNeeded()
	if err != nil {
		return model.PassphrasePlanResponse{}, err
	}
	if err := cred.SetWordCount(words); err != nil {
		return model.PassphrasePlanResponse{}, err
	}

	bits, err := cred.PassphraseBits()
	if err != nil {
		return model.PassphrasePlanResponse{}, err
	}

	return model.PassphrasePlanResponse{
		Words:       words,
		Numbers:     numbers,
		Wordlist:    list.Name,
		EntropyBits: bits,
	}, nil
}

// PlanPassword reports the password length reaching the requested entropy
// target and the entropy that configuration actually carries.
func (s *GenerateService) PlanPassword(req model.PasswordPlanRequest) (model.PasswordPlanResponse, error) {
	cred := credential.New(s.src)
	cred.SetClasses(
		boolOrDefault(req.Lowercase, true),
		boolOrDefault(req.Uppercase, true),
		boolOrDefault(req.Digits, true),
		boolOrDefault(req.Punctuation, true),
	)

	if err := cred.SetEntropyBits(req.EntropyBits); err != nil {
		return model.PasswordPlanResponse{}, err
	}

	length, err := cred.PasswordLengthNeeded()
	if err != nil {
		return model.PasswordPlanResponse{}, err
	}
	if err := cred.SetPasswordLength(length); err != nil {
		return model.PasswordPlanResponse{}, err
	}

	bits, err := cred.PasswordBits()
	if err != nil {
		return model.PasswordPlanResponse{}, err
	}

	return model.PasswordPlanResponse{
		Length:      length,
		EntropyBits: bits,
	}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

// intOrDefault returns the dereferenced pointer value, or the fallback if nil.
func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}

// floatOrDefault returns the dereferenced pointer value, or the fallback if nil.
func floatOrDefault(p *float64, fallback float64) float64 {
	if p == nil {
		return fallback
	}
	return *p
}
