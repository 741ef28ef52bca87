// Package moderation censors configured words in message content before it
// is persisted.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Moderator struct {
	matcher      *goahocorasick.Machine
	censoredChar rune
}

// NewModerator builds the Aho-Corasick automaton over the lowercased word
// list. Matching is case-insensitive; word boundaries are not required, so a
// censored word is masked even inside a longer token.
func NewModerator(censoredWords []string, censoredChar rune) (Moderator, error) {
	patterns := make([][]rune, len(censoredWords))
	for i, word := range censoredWords {
		patterns[i] = lowerRunes([]rune(word))
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return Moderator{}, err
	}
	return Moderator{matcher: m, censoredChar: censoredChar}, nil
}

// Censor replaces every matched span with the censored character and returns
// the sanitized text plus the list of matched words.
func (m *Moderator) Censor(original string) (string, []string) {
	origRunes := []rune(original)
	spans := m.matcher.MultiPatternSearch(lowerRunes(origRunes), false)
	if len(spans) == 0 {
		return original, nil
	}

	var found []string
	for _, span := range spans {
		found = append(found, string(span.Word))
		for i := span.Pos; i < span.Pos+len(span.Word) && i < len(origRunes); i++ {
			origRunes[i] = m.censoredChar
		}
	}
	return string(origRunes), found
}

// lowerRunes lowercases rune by rune, keeping the rune count (and therefore
// match positions) identical to the original.
func lowerRunes(input []rune) []rune {
	out := make([]rune, len(input))
	for i, r := range input {
		out[i] = unicode.ToLower(r)
	}
	return out
}
