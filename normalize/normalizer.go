// Package normalize produces the lemma-reduced variant of a message used by
// the second detection pass ("killing" -> "kill", "wanted" -> "want").
package normalize

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// ErrUnavailable is returned when no dictionary is loaded. The reconciler
// consumes it as a first-class branch and degrades to raw-text scoring.
var ErrUnavailable = errors.New("normalize: lemmatizer unavailable")

// Normalizer reduces tokens to their dictionary base form. It is read-only
// after construction and safe for concurrent use. Lemmatization is a local
// CPU-bound computation; callers wanting a cancellation boundary should wrap
// the whole assessment, not this call.
type Normalizer struct {
	lemmatizer *golem.Lemmatizer
}

// New builds a Normalizer backed by the English LemmaGen dictionary. The
// dictionary is pinned through the module requirements, so a given input
// always normalizes to the same output for a given build.
func New() (*Normalizer, error) {
	l, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load lemmatizer dictionary: %w", err)
	}
	return &Normalizer{lemmatizer: l}, nil
}

// Normalize lower-cases text, reduces each token to its base form and
// re-joins the tokens with single spaces. Punctuation between words is
// dropped; apostrophes inside a word are kept so contractions survive as one
// token. Tokens without a dictionary entry pass through unchanged. Word
// order is preserved; original casing and punctuation are deliberately
// discarded — only the raw variant keeps them.
func (n *Normalizer) Normalize(text string) (string, error) {
	if n == nil || n.lemmatizer == nil {
		return "", ErrUnavailable
	}

	tokens := tokenize(strings.ToLower(text))
	for i, tok := range tokens {
		if lemma := n.lemmatizer.Lemma(tok); lemma != "" {
			tokens[i] = lemma
		}
	}
	return strings.Join(tokens, " "), nil
}

// tokenize splits lower-cased text into word tokens. Letters, digits and
// in-word apostrophes are word characters; everything else is a boundary.
func tokenize(text string) []string {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})

	out := tokens[:0]
	for _, tok := range tokens {
		tok = strings.Trim(tok, "'")
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
