// Package wordlist provides the word sources for passphrase generation:
// embedded built-in lists with precomputed per-word entropy, and loading of
// single-column or diceware-format wordlist files.
package wordlist

import (
	"errors"

	"github.com/entropass/entropass-go/internal/entropy"
)

// ErrUnavailable is the sentinel for wordlist resources that cannot be
// loaded: missing, empty or malformed files, or unknown built-in names.
var ErrUnavailable = errors.New("wordlist unavailable")

// List is a named, ordered wordlist. BitsPerWord is the precomputed entropy
// of one uniform draw, or 0 when it has not been computed yet.
type List struct {
	Name        string
	Words       []string
	BitsPerWord float64
}

// Bits returns the entropy of one uniform draw from the list, preferring the
// precomputed value when present.
func (l List) Bits() (float64, error) {
	if l.BitsPerWord > 0 {
		return l.BitsPerWord, nil
	}
	return entropy.SetBits(len(l.Words))
}
