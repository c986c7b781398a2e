// Package entropy provides the pure arithmetic behind secret generation:
// entropy of finite symbol sets and numeric ranges, and the inverse
// computations that turn a desired entropy target into generation parameters.
package entropy

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is the sentinel wrapped by every validation failure in the
// generation core. Callers match it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// SetBits returns the entropy in bits of one uniform draw from a set of the
// given size: log2(size).
func SetBits(size int) (float64, error) {
	if size < 1 {
		return 0, fmt.Errorf("%w: symbol set is empty", ErrInvalidInput)
	}
	return math.Log2(float64(size)), nil
}

// RangeBits returns the entropy in bits of one uniform draw from the
// inclusive integer range [min, max]: log2(max - min + 1).
func RangeBits(min, max int) (float64, error) {
	if max < min {
		return 0, fmt.Errorf("%w: range max %d is below min %d", ErrInvalidInput, max, min)
	}
	return math.Log2(float64(max - min + 1)), nil
}

// PasswordLengthNeeded returns the smallest length L such that
// L * log2(charsetSize) >= targetBits. A zero target needs zero characters.
func PasswordLengthNeeded(targetBits float64, charsetSize int) (int, error) {
	if targetBits < 0 {
		return 0, fmt.Errorf("%w: entropy target %.2f is negative", ErrInvalidInput, targetBits)
	}
	if charsetSize <= 1 {
		return 0, fmt.Errorf("%w: character set of size %d cannot reach any entropy", ErrInvalidInput, charsetSize)
	}
	if targetBits == 0 {
		return 0, nil
	}
	bitsPerChar := math.Log2(float64(charsetSize))
	return int(math.Ceil(targetBits / bitsPerChar)), nil
}

// WordsNeeded returns the smallest non-negative word count satisfying
// words*bitsPerWord + numberCount*bitsPerNumber >= targetBits.
func WordsNeeded(targetBits, bitsPerWord, bitsPerNumber float64, numberCount int) (int, error) {
	if bitsPerWord <= 0 {
		return 0, fmt.Errorf("%w: entropy per word %.2f must be positive", ErrInvalidInput, bitsPerWord)
	}
	remaining := targetBits - float64(numberCount)*bitsPerNumber
	if remaining <= 0 {
		return 0, nil
	}
	return int(math.Ceil(remaining / bitsPerWord)), nil
}

// PassphraseBits returns the exact entropy of a passphrase drawn as wordCount
// uniform words plus numberCount uniform numbers.
func PassphraseBits(wordCount int, bitsPerWord, bitsPerNumber float64, numberCount int) float64 {
	return float64(wordCount)*bitsPerWord + float64(numberCount)*bitsPerNumber
}

// PasswordBits returns the exact entropy of a password of the given length
// drawn from a character set of the given size.
func PasswordBits(length, charsetSize int) float64 {
	if length == 0 || charsetSize < 1 {
		return 0
	}
	return float64(length) * math.Log2(float64(charsetSize))
}
