package ingest

import (
	"strings"
	"unicode"
)

// NounFilter is a lightweight noun-likeness heuristic used by the
// contrastive keyword path. It is not a morphological analyzer: it
// strips common Korean verb/derivational suffixes and a single
// trailing particle character, and drops English tokens shorter than
// two characters. Tokens reduced below two characters are dropped.
type NounFilter struct {
	suffixes  []string
	particles map[rune]struct{}
}

// NewNounFilter returns a filter loaded with the default suffix and
// particle inventories.
func NewNounFilter() *NounFilter {
	f := &NounFilter{
		// Checked longest-first; order matters.
		suffixes: []string{
			"하였습니다", "했습니다", "합니다", "하였다", "하면서",
			"하기", "하는", "하여", "해서", "하고", "했다", "한다",
			"되었다", "되어", "되는", "된다", "하다", "되다",
			"있는", "있다", "없는", "없다",
			"으로", "에서", "에게", "부터", "까지", "처럼", "들이", "들은", "들을",
		},
		particles: make(map[rune]struct{}),
	}
	for _, p := range []rune("은는이가을를에의로와과도만") {
		f.particles[p] = struct{}{}
	}
	return f
}

// Apply returns the noun-like stem of a token, or "" when the token
// should be dropped.
func (f *NounFilter) Apply(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return ""
	}

	if isASCIIWord(token) {
		if len(token) < 2 {
			return ""
		}
		return token
	}

	runes := []rune(token)
	for _, suf := range f.suffixes {
		sr := []rune(suf)
		if len(runes) > len(sr)+1 && hasRuneSuffix(runes, sr) {
			runes = runes[:len(runes)-len(sr)]
			break
		}
	}

	// One trailing particle character, only when a usable stem remains.
	if len(runes) > 2 {
		if _, ok := f.particles[runes[len(runes)-1]]; ok {
			runes = runes[:len(runes)-1]
		}
	}

	if len(runes) < 2 {
		return ""
	}
	return string(runes)
}

func hasRuneSuffix(runes, suffix []rune) bool {
	if len(suffix) > len(runes) {
		return false
	}
	off := len(runes) - len(suffix)
	for i, r := range suffix {
		if runes[off+i] != r {
			return false
		}
	}
	return true
}

func isASCIIWord(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}
