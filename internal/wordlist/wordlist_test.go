package wordlist

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	tests := []struct {
		name        string
		wordCount   int
		bitsPerWord float64
	}{
		{name: EffLarge, wordCount: 7776, bitsPerWord: 12.92481250360578},
		{name: EffShort, wordCount: 1296, bitsPerWord: 10.33985000288463},
		{name: BIP39, wordCount: 2048, bitsPerWord: 11.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := Builtin(tt.name)
			require.NoError(t, err)

			assert.Equal(t, tt.name, list.Name)
			assert.Len(t, list.Words, tt.wordCount)
			assert.Equal(t, tt.bitsPerWord, list.BitsPerWord)

			// The precomputed constant must match the actual list size.
			assert.InDelta(t, math.Log2(float64(tt.wordCount)), list.BitsPerWord, 1e-9)

			seen := make(map[string]bool, tt.wordCount)
			for i, w := range list.Words {
				require.NotEmpty(t, w, "empty word at position %d", i)
				assert.False(t, seen[w], "duplicate word %q", w)
				seen[w] = true
			}
		})
	}
}

func TestBuiltinEffLargeYoYo(t *testing.T) {
	list, err := Builtin(EffLarge)
	require.NoError(t, err)

	// Positions 7747 and 7752 are rolls 66622 and 66631 in dice order; the
	// second must keep its hyphen or the list collapses to 7775 words.
	assert.Equal(t, "yoyo", list.Words[7747])
	assert.Equal(t, "yo-yo", list.Words[7752])
}

func TestBuiltinUnknown(t *testing.T) {
	_, err := Builtin("klingon")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestIsBuiltin(t *testing.T) {
	for _, name := range BuiltinNames() {
		assert.True(t, IsBuiltin(name))
	}
	assert.False(t, IsBuiltin("custom"))
	assert.False(t, IsBuiltin(""))
}

func TestBits(t *testing.T) {
	cached := List{Words: []string{"a", "b"}, BitsPerWord: 12.5}
	bits, err := cached.Bits()
	require.NoError(t, err)
	assert.Equal(t, 12.5, bits, "precomputed value wins over recomputation")

	fresh := List{Words: []string{"a", "b", "c", "d"}}
	bits, err = fresh.Bits()
	require.NoError(t, err)
	assert.InDelta(t, 2.0, bits, 1e-9)

	empty := List{}
	_, err = empty.Bits()
	require.Error(t, err)
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFileSingleColumn(t *testing.T) {
	path := writeTempFile(t, "words.txt", "  apple  \nbanana\n\n\tcherry\n")

	list, err := LoadFile(path, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"apple", "banana", "cherry"}, list.Words)
	assert.Equal(t, "words.txt", list.Name)
	assert.Zero(t, list.BitsPerWord, "file lists carry no precomputed entropy")
}

func TestLoadFileDiceware(t *testing.T) {
	path := writeTempFile(t, "dice.txt", "11111 abacus\n11112 abdomen\n11113 abide\n")

	list, err := LoadFile(path, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"abacus", "abdomen", "abide"}, list.Words)
}

func TestLoadFileDicewareMissingColumn(t *testing.T) {
	path := writeTempFile(t, "dice.txt", "11111 abacus\n11112\n")

	_, err := LoadFile(path, true)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"), false)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestLoadFileEmpty(t *testing.T) {
	path := writeTempFile(t, "empty.txt", "")

	_, err := LoadFile(path, false)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestLoadFileOnlyBlankLines(t *testing.T) {
	path := writeTempFile(t, "blank.txt", "\n   \n\t\n")

	_, err := LoadFile(path, false)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestLoadFileDirectory(t *testing.T) {
	_, err := LoadFile(t.TempDir(), false)
	require.ErrorIs(t, err, ErrUnavailable)
}
