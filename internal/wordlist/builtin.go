package wordlist

import (
	"fmt"
	"sync"

	"github.com/sethvargo/go-diceware/diceware"
	"github.com/tyler-smith/go-bip39/wordlists"
)

// Built-in wordlist names.
const (
	EffLarge = "eff-large"
	EffShort = "eff-short"
	BIP39    = "bip39"
)

// Precomputed entropy per word; installing these avoids recomputing the
// logarithm on every budget query.
const (
	effLargeBits = 12.92481250360578 // log2(7776)
	effShortBits = 10.33985000288463 // log2(1296)
	bip39Bits    = 11.0              // log2(2048)
)

var (
	effLargeOnce sync.Once
	effLargeList List

	effShortOnce sync.Once
	effShortList List

	bip39Once sync.Once
	bip39List List
)

// Builtin returns the named built-in wordlist with its precomputed per-word
// entropy installed. The lists are materialized once and shared; callers must
// not mutate the returned words.
func Builtin(name string) (List, error) {
	switch name {
	case EffLarge:
		effLargeOnce.Do(func() {
			effLargeList = List{
				Name:        EffLarge,
				Words:       enumerateDiceware(diceware.WordListEffLarge(), effLargeFixups),
				BitsPerWord: effLargeBits,
			}
		})
		return effLargeList, nil
	case EffShort:
		effShortOnce.Do(func() {
			effShortList = List{
				Name:        EffShort,
				Words:       enumerateDiceware(diceware.WordListEffSmall(), nil),
				BitsPerWord: effShortBits,
			}
		})
		return effShortList, nil
	case BIP39:
		bip39Once.Do(func() {
			bip39List = List{
				Name:        BIP39,
				Words:       wordlists.English,
				BitsPerWord: bip39Bits,
			}
		})
		return bip39List, nil
	}
	return List{}, fmt.Errorf("%w: no built-in wordlist named %q", ErrUnavailable, name)
}

// IsBuiltin reports whether name refers to a built-in wordlist.
func IsBuiltin(name string) bool {
	return name == EffLarge || name == EffShort || name == BIP39
}

// BuiltinNames returns the names of all built-in wordlists.
func BuiltinNames() []string {
	return []string{EffLarge, EffShort, BIP39}
}

// The embedded EFF large data flattens "yo-yo" (roll 66631) to "yoyo",
// which collides with the genuine "yoyo" at roll 66622 and would leave the
// list one word short of 7776 distinct entries. Restore the hyphenated
// original so the per-word entropy constant holds.
var effLargeFixups = map[int]string{
	66631: "yo-yo",
}

// enumerateDiceware walks a diceware word list in dice-roll order. A list
// keyed by d dice has 6^d words; roll indexes read as base-6 numbers whose
// digits run from 1 to 6. Entries present in fixups override the list's
// word for that roll.
func enumerateDiceware(wl diceware.WordList, fixups map[int]string) []string {
	digits := wl.Digits()

	size := 1
	for i := 0; i < digits; i++ {
		size *= 6
	}

	words := make([]string, 0, size)
	for i := 0; i < size; i++ {
		roll := 0
		place := 1
		for x, d := i, 0; d < digits; d++ {
			roll += (x%6 + 1) * place
			place *= 10
			x /= 6
		}
		if w, ok := fixups[roll]; ok {
			words = append(words, w)
			continue
		}
		words = append(words, wl.WordAt(roll))
	}
	return words
}
