package credential

import "strings"

// applyUppercase uppercases words in place according to the directive:
//
//	nil          leave all words lowercase
//	0            uppercase every word
//	u > 0        uppercase the first u words, or all of them when u >= len
//	u < 0        uppercase all but |u| words, counted from the end
//
// A negative directive is folded into an effective count of len+u when
// len >= -u. An effective count of zero lands in the "uppercase every word"
// case: passing exactly -len therefore uppercases everything rather than
// nothing. That fold-through is long-standing observable behavior and is kept
// deliberately. A directive below -len leaves the words unchanged.
func applyUppercase(words []string, directive *int) {
	if directive == nil || len(words) == 0 {
		return
	}

	n := len(words)
	u := *directive
	if u < 0 && n >= -u {
		u = n + u
	}

	switch {
	case u == 0 || u > n:
		for i := range words {
			words[i] = strings.ToUpper(words[i])
		}
	case u > 0:
		for i := 0; i < u; i++ {
			words[i] = strings.ToUpper(words[i])
		}
	}
}
