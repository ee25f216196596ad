package analyzer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Stopword list names accepted by NewTokenizerFor.
const (
	StopwordsEnglish = "english"
	StopwordsNone    = "none"
)

// Tokenizer splits text into lower-cased word tokens with stopword removal.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// NewTokenizer creates a Tokenizer using the English stopword list.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{stopwords: englishStopwords()}
}

// NewTokenizerFor creates a Tokenizer for the named stopword list.
func NewTokenizerFor(stopwords string) (*Tokenizer, error) {
	switch strings.ToLower(stopwords) {
	case "", StopwordsEnglish:
		return NewTokenizer(), nil
	case StopwordsNone:
		return &Tokenizer{stopwords: map[string]struct{}{}}, nil
	default:
		return nil, fmt.Errorf("unsupported stopword list: %q", stopwords)
	}
}

// Tokenize splits text into tokens.
// Tokens shorter than two characters and stopwords are dropped.
func (t *Tokenizer) Tokenize(text string) []string {
	words := splitWords(text)
	tokens := make([]string, 0, len(words))

	for _, word := range words {
		word = strings.ToLower(word)
		if utf8.RuneCountInString(word) < 2 {
			continue
		}
		if _, isStop := t.stopwords[word]; isStop {
			continue
		}
		tokens = append(tokens, word)
	}

	return tokens
}

// splitWords splits text into runs of letters, digits and underscores.
func splitWords(text string) []string {
	var words []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			current.WriteRune(r)
		} else {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}
