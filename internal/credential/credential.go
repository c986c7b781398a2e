// Package credential holds the validated generation configuration and the
// generation operations built on it: passphrases, passwords and UUIDv4
// identifiers, each with exact entropy accounting.
package credential

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/entropass/entropass-go/internal/crypto"
	"github.com/entropass/entropass-go/internal/entropy"
	"github.com/entropass/entropass-go/internal/wordlist"
)

// Password character classes. Punctuation matches the 32 ASCII punctuation
// characters, so the full union has 94 symbols.
const (
	LowercaseChars   = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DigitChars       = "0123456789"
	PunctuationChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Default numeric range for passphrase numbers: six-digit numbers, worth
// log2(900000) ≈ 19.78 bits each.
const (
	DefaultNumberMin = 100000
	DefaultNumberMax = 999999
)

// DefaultSeparator joins passphrase elements unless reconfigured.
const DefaultSeparator = " "

// Credential is a mutable generation configuration. Fields are set through
// validated setters that fail with entropy.ErrInvalidInput, so every
// generation or query operation runs against a configuration already known
// to be well-formed. A Credential is not safe for concurrent use.
type Credential struct {
	src crypto.Source

	entropyBitsReq *float64
	numberMin      int
	numberMax      int
	wordCount      *int
	numberCount    *int
	passwordLength *int
	separator      string

	words       []string
	bitsPerWord float64

	useLowercase   bool
	useUppercase   bool
	useDigits      bool
	usePunctuation bool

	lastResult []string
}

// New returns a Credential drawing randomness from src, with the default
// numeric range, separator and all password character classes enabled.
func New(src crypto.Source) *Credential {
	return &Credential{
		src:            src,
		numberMin:      DefaultNumberMin,
		numberMax:      DefaultNumberMax,
		separator:      DefaultSeparator,
		useLowercase:   true,
		useUppercase:   true,
		useDigits:      true,
		usePunctuation: true,
	}
}

// SetEntropyBits sets the entropy target for budget computations.
func (c *Credential) SetEntropyBits(bits float64) error {
	if bits < 0 {
		return fmt.Errorf("%w: entropy_bits %.2f must not be negative", entropy.ErrInvalidInput, bits)
	}
	c.entropyBitsReq = &bits
	return nil
}

// SetNumberRange sets the inclusive range passphrase numbers are drawn from.
func (c *Credential) SetNumberRange(min, max int) error {
	if min < 0 {
		return fmt.Errorf("%w: number_min %d must not be negative", entropy.ErrInvalidInput, min)
	}
	if max < min {
		return fmt.Errorf("%w: number_max %d is below number_min %d", entropy.ErrInvalidInput, max, min)
	}
	c.numberMin = min
	c.numberMax = max
	return nil
}

// SetWordCount sets how many words a generated passphrase contains.
func (c *Credential) SetWordCount(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: word_count %d must not be negative", entropy.ErrInvalidInput, n)
	}
	c.wordCount = &n
	return nil
}

// SetNumberCount sets how many numbers a generated passphrase contains.
func (c *Credential) SetNumberCount(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: number_count %d must not be negative", entropy.ErrInvalidInput, n)
	}
	c.numberCount = &n
	return nil
}

// SetPasswordLength sets how many characters a generated password contains.
func (c *Credential) SetPasswordLength(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: password_length %d must not be negative", entropy.ErrInvalidInput, n)
	}
	c.passwordLength = &n
	return nil
}

// SetSeparator sets the string joining elements in String output.
func (c *Credential) SetSeparator(sep string) {
	c.separator = sep
}

// SetWordlist installs the words of l, copying them so later mutation of the
// caller's slice cannot reach the Credential. The list's precomputed per-word
// entropy is taken over when present; otherwise any cached value is dropped
// and recomputed on the next query.
func (c *Credential) SetWordlist(l wordlist.List) {
	c.words = make([]string, len(l.Words))
	copy(c.words, l.Words)
	c.bitsPerWord = l.BitsPerWord
}

// SetClasses enables or disables the four password character classes.
func (c *Credential) SetClasses(lower, upper, digits, punctuation bool) {
	c.useLowercase = lower
	c.useUppercase = upper
	c.useDigits = digits
	c.usePunctuation = punctuation
}

// passwordChars returns the concatenation of the enabled character classes.
func (c *Credential) passwordChars() string {
	var b strings.Builder
	if c.useLowercase {
		b.WriteString(LowercaseChars)
	}
	if c.useUppercase {
		b.WriteString(UppercaseChars)
	}
	if c.useDigits {
		b.WriteString(DigitChars)
	}
	if c.usePunctuation {
		b.WriteString(PunctuationChars)
	}
	return b.String()
}

// wordBits returns the entropy per word, using the cached value when one was
// installed with the wordlist.
func (c *Credential) wordBits() (float64, error) {
	if c.bitsPerWord > 0 {
		return c.bitsPerWord, nil
	}
	return entropy.SetBits(len(c.words))
}

// PasswordLengthNeeded returns the password length required to reach the
// configured entropy target with the enabled character classes.
func (c *Credential) PasswordLengthNeeded() (int, error) {
	chars := c.passwordChars()
	if c.entropyBitsReq == nil || chars == "" {
		return 0, fmt.Errorf("%w: password length needs entropy_bits and at least one character class", entropy.ErrInvalidInput)
	}
	return entropy.PasswordLengthNeeded(*c.entropyBitsReq, len(chars))
}

// WordsNeeded returns the word count required to reach the configured entropy
// target, given the configured number count and wordlist.
func (c *Credential) WordsNeeded() (int, error) {
	if c.entropyBitsReq == nil || c.numberCount == nil || len(c.words) == 0 {
		return 0, fmt.Errorf("%w: words needed requires entropy_bits, number_count and a wordlist", entropy.ErrInvalidInput)
	}

	bitsPerNumber, err := entropy.RangeBits(c.numberMin, c.numberMax)
	if err != nil {
		return 0, err
	}
	bitsPerWord, err := c.wordBits()
	if err != nil {
		return 0, err
	}

	return entropy.WordsNeeded(*c.entropyBitsReq, bitsPerWord, bitsPerNumber, *c.numberCount)
}

// PasswordBits returns the exact entropy of a password generated under the
// current configuration.
func (c *Credential) PasswordBits() (float64, error) {
	chars := c.passwordChars()
	if c.passwordLength == nil || chars == "" {
		return 0, fmt.Errorf("%w: password entropy requires password_length and at least one character class", entropy.ErrInvalidInput)
	}
	return entropy.PasswordBits(*c.passwordLength, len(chars)), nil
}

// PassphraseBits returns the exact entropy of a passphrase generated under
// the current configuration.
func (c *Credential) PassphraseBits() (float64, error) {
	if c.wordCount == nil || c.numberCount == nil || len(c.words) == 0 {
		return 0, fmt.Errorf("%w: passphrase entropy requires word_count, number_count and a wordlist", entropy.ErrInvalidInput)
	}

	if *c.wordCount == 0 && *c.numberCount == 0 {
		return 0, nil
	}

	bitsPerNumber, err := entropy.RangeBits(c.numberMin, c.numberMax)
	if err != nil {
		return 0, err
	}
	bitsPerWord, err := c.wordBits()
	if err != nil {
		return 0, err
	}

	return entropy.PassphraseBits(*c.wordCount, bitsPerWord, bitsPerNumber, *c.numberCount), nil
}

// GeneratePassphrase draws the configured number of words and numbers and
// applies the uppercase directive (see applyUppercase). The returned slice
// holds the lowercased words, possibly uppercased per the directive, followed
// by the numbers formatted in decimal.
func (c *Credential) GeneratePassphrase(uppercase *int) ([]string, error) {
	if c.wordCount == nil || c.numberCount == nil || len(c.words) == 0 {
		return nil, fmt.Errorf("%w: passphrase generation requires word_count, number_count and a wordlist", entropy.ErrInvalidInput)
	}

	parts := make([]string, 0, *c.wordCount+*c.numberCount)
	for i := 0; i < *c.wordCount; i++ {
		w, err := crypto.Pick(c.src, c.words)
		if err != nil {
			return nil, err
		}
		parts = append(parts, strings.ToLower(w))
	}

	applyUppercase(parts, uppercase)

	for i := 0; i < *c.numberCount; i++ {
		n, err := c.src.IntBetween(c.numberMin, c.numberMax)
		if err != nil {
			return nil, err
		}
		parts = append(parts, strconv.Itoa(n))
	}

	c.lastResult = parts
	return parts, nil
}

// GeneratePassword draws the configured number of characters from the union
// of the enabled character classes. Each character is stored as its own
// element of the result.
func (c *Credential) GeneratePassword() ([]string, error) {
	chars := c.passwordChars()
	if c.passwordLength == nil || chars == "" {
		return nil, fmt.Errorf("%w: password generation requires password_length and at least one character class", entropy.ErrInvalidInput)
	}

	parts := make([]string, 0, *c.passwordLength)
	for i := 0; i < *c.passwordLength; i++ {
		ch, err := crypto.PickByte(c.src, chars)
		if err != nil {
			return nil, err
		}
		parts = append(parts, string(ch))
	}

	c.lastResult = parts
	return parts, nil
}

// GenerateUUID4 returns the five groups of a UUIDv4. The 30 random bytes are
// requested as one batch instead of one draw per group; the version nibble is
// fixed to 4 and the variant nibble drawn from {8, 9, a, b} per RFC 4122.
func (c *Credential) GenerateUUID4() ([]string, error) {
	hexstr, err := c.src.Hex(30)
	if err != nil {
		return nil, err
	}

	variant, err := c.src.IntBetween(8, 11)
	if err != nil {
		return nil, err
	}

	parts := []string{
		hexstr[:8],
		hexstr[8:12],
		"4" + hexstr[12:15],
		fmt.Sprintf("%x%s", variant, hexstr[15:18]),
		hexstr[18:30],
	}

	c.lastResult = parts
	return parts, nil
}

// LastResult returns a copy of the most recently generated sequence.
func (c *Credential) LastResult() []string {
	out := make([]string, len(c.lastResult))
	copy(out, c.lastResult)
	return out
}

// String renders the last generated sequence joined by the separator, with no
// trailing separator. An empty sequence renders as the empty string.
func (c *Credential) String() string {
	return strings.Join(c.lastResult, c.separator)
}
