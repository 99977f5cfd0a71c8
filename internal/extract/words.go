package extract

import (
	"regexp"
	"sort"
	"strings"
)

// wordPattern matches a maximal run of ASCII letters. Digits,
// punctuation and hyphens all act as separators, so hyphenated
// compounds split into separate tokens.
var wordPattern = regexp.MustCompile(`[A-Za-z]+`)

// WordOptions controls tokenization.
type WordOptions struct {
	// MinLength drops tokens shorter than this many letters.
	MinLength int

	// FoldCase lowercases tokens before deduplication. When false,
	// "The" and "the" are distinct words.
	FoldCase bool
}

// ExtractWords tokenizes text into its set of unique alphabetic words,
// sorted in lexicographic (byte) order.
func ExtractWords(text string, opts WordOptions) []string {
	seen := make(map[string]struct{})
	for _, token := range wordPattern.FindAllString(text, -1) {
		if len(token) < opts.MinLength {
			continue
		}
		if opts.FoldCase {
			token = strings.ToLower(token)
		}
		seen[token] = struct{}{}
	}

	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
