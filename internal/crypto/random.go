package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/entropass/entropass-go/internal/entropy"
)

// Source supplies uniformly distributed random values. Every implementation
// used outside of tests must be backed by a CSPRNG; this is a security
// requirement of the generators, not an optimization.
type Source interface {
	// IntBetween returns a uniform integer in the inclusive range [min, max].
	IntBetween(min, max int) (int, error)

	// Hex returns the lowercase hex encoding of byteCount random bytes.
	Hex(byteCount int) (string, error)
}

// SystemSource is a Source backed by crypto/rand.
type SystemSource struct{}

// IntBetween returns a uniform integer in [min, max]. rand.Int performs
// rejection sampling internally, so the result carries no modulo bias.
func (SystemSource) IntBetween(min, max int) (int, error) {
	if max < min {
		return 0, fmt.Errorf("%w: range max %d is below min %d", entropy.ErrInvalidInput, max, min)
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max-min)+1))
	if err != nil {
		return 0, err
	}
	return min + int(n.Int64()), nil
}

// Hex returns byteCount random bytes encoded as lowercase hex.
func (SystemSource) Hex(byteCount int) (string, error) {
	if byteCount < 0 {
		return "", fmt.Errorf("%w: byte count %d is negative", entropy.ErrInvalidInput, byteCount)
	}
	b := make([]byte, byteCount)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Pick returns one uniformly chosen element of items.
func Pick(src Source, items []string) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("%w: cannot pick from an empty sequence", entropy.ErrInvalidInput)
	}
	i, err := src.IntBetween(0, len(items)-1)
	if err != nil {
		return "", err
	}
	return items[i], nil
}

// PickByte returns one uniformly chosen byte of charset.
func PickByte(src Source, charset string) (byte, error) {
	if len(charset) == 0 {
		return 0, fmt.Errorf("%w: cannot pick from an empty character set", entropy.ErrInvalidInput)
	}
	i, err := src.IntBetween(0, len(charset)-1)
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}
