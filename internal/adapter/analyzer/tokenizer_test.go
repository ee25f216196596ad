package analyzer

import (
	"testing"
)

func TestTokenizer_Tokenize(t *testing.T) {
	tok := NewTokenizer()

	tokens := tok.Tokenize("Running dogs are playing")
	if len(tokens) != 3 {
		t.Errorf("expected 3 tokens, got %d: %v", len(tokens), tokens)
	}
	if tokens[0] != "running" {
		t.Errorf("expected lower-cased unstemmed 'running', got %v", tokens)
	}
}

func TestTokenizer_StopwordRemoval(t *testing.T) {
	tok := NewTokenizer()

	tokens := tok.Tokenize("the quick brown fox is on fire")
	for _, token := range tokens {
		if token == "the" || token == "is" || token == "on" || token == "fire" {
			t.Errorf("stopword %q should be removed, got %v", token, tokens)
		}
	}
	if len(tokens) != 3 {
		t.Errorf("expected [quick brown fox], got %v", tokens)
	}
}

func TestTokenizer_NoStopwords(t *testing.T) {
	tok, err := NewTokenizerFor(StopwordsNone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tokens := tok.Tokenize("the fox")
	if len(tokens) != 2 {
		t.Errorf("expected stopwords kept, got %v", tokens)
	}
}

func TestNewTokenizerFor_Unknown(t *testing.T) {
	if _, err := NewTokenizerFor("klingon"); err == nil {
		t.Error("expected error for unknown stopword list")
	}
}

func TestTokenizer_ShortWordRemoval(t *testing.T) {
	tok := NewTokenizer()

	tokens := tok.Tokenize("a I x é go to")
	for _, token := range tokens {
		if len([]rune(token)) < 2 {
			t.Errorf("short word should be removed: %s", token)
		}
	}
}

func TestTokenizer_Punctuation(t *testing.T) {
	tok := NewTokenizer()

	tokens := tok.Tokenize("Sci-Fi, space-opera!Drama")
	want := []string{"sci", "fi", "space", "opera", "drama"}
	if len(tokens) != len(want) {
		t.Fatalf("expected %v, got %v", want, tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d: expected %q, got %q", i, want[i], tokens[i])
		}
	}
}

func TestTokenizer_EmptyInput(t *testing.T) {
	tok := NewTokenizer()

	if tokens := tok.Tokenize(""); len(tokens) != 0 {
		t.Errorf("expected 0 tokens for empty input, got %d", len(tokens))
	}
	if tokens := tok.Tokenize("   ,;  "); len(tokens) != 0 {
		t.Errorf("expected 0 tokens for punctuation-only input, got %d", len(tokens))
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"hello world", 2},
		{"hello_world", 1},
		{"hello-world", 2},
		{"Action, Adventure", 2},
		{"don't", 2},
		{"123numbers456", 1},
		{"", 0},
	}

	for _, tt := range tests {
		words := splitWords(tt.input)
		if len(words) != tt.expected {
			t.Errorf("splitWords(%q) = %d words, want %d: %v", tt.input, len(words), tt.expected, words)
		}
	}
}
