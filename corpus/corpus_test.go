package corpus

import (
	"reflect"
	"testing"
)

func TestTokenize_DropsShortLowercase(t *testing.T) {
	// Every word here is lowercase and at most 3 letters, so all are filtered.
	c := Tokenize("the cat sat on the mat")
	if len(c.Words) != 0 {
		t.Errorf("Words = %v, want empty", c.Words)
	}
	if len(c.Raw) != 6 {
		t.Errorf("Raw length = %d, want 6", len(c.Raw))
	}
}

func TestTokenize_KeepsProperNounsAndAcronyms(t *testing.T) {
	c := Tokenize("the API for Bob and NASA")
	want := []string{"API", "Bob", "NASA"}
	if !reflect.DeepEqual(c.Words, want) {
		t.Errorf("Words = %v, want %v", c.Words, want)
	}
}

func TestTokenize_SplitsOnDigitsAndPunctuation(t *testing.T) {
	c := Tokenize("well-known user123name café naïve")
	// "well-known" splits into "well" and "known"; "user123name" into "user"
	// and "name"; accented letters break runs ("caf", "na", "ve").
	for _, w := range c.Raw {
		for _, r := range w {
			if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
				t.Fatalf("raw word %q contains non-Latin-letter rune %q", w, r)
			}
		}
	}
	want := []string{"well", "known", "user", "name"}
	if !reflect.DeepEqual(c.Words, want) {
		t.Errorf("Words = %v, want %v", c.Words, want)
	}
}

func TestTokenize_SingleLettersIgnored(t *testing.T) {
	c := Tokenize("a I x B item 7")
	if len(c.Raw) != 1 || c.Raw[0] != "item" {
		t.Errorf("Raw = %v, want [item]", c.Raw)
	}
}

func TestTokenize_Idempotent(t *testing.T) {
	first := Tokenize("The Quick brown fox JUMPED over lazily sleeping dogs")
	second := Tokenize(first.Joined())
	if !reflect.DeepEqual(first.Words, second.Words) {
		t.Errorf("re-tokenizing filtered output changed it: %v vs %v", first.Words, second.Words)
	}
}

func TestTokenize_EmptyInput(t *testing.T) {
	c := Tokenize("")
	if c.WordCount() != 0 {
		t.Errorf("WordCount = %d, want 0", c.WordCount())
	}
	if c.Words == nil || c.Raw == nil {
		t.Error("Words and Raw should be empty slices, not nil")
	}
	if c.Joined() != "" || c.Lines() != "" {
		t.Errorf("Joined/Lines on empty corpus should be empty, got %q / %q", c.Joined(), c.Lines())
	}
}

func TestTokenize_OrderPreserved(t *testing.T) {
	c := Tokenize("Zebra apple Mango banana")
	want := []string{"Zebra", "apple", "Mango", "banana"}
	if !reflect.DeepEqual(c.Words, want) {
		t.Errorf("Words = %v, want %v", c.Words, want)
	}
}
