package trie

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func newTrie(t *testing.T, words ...string) *Trie {
	t.Helper()
	tr := New()
	for _, w := range words {
		if err := tr.Insert(w); err != nil {
			t.Fatalf("Insert(%q): %v", w, err)
		}
	}
	return tr
}

func TestPredict(t *testing.T) {
	tr := newTrie(t, "cat", "car", "cart", "dog", "do", "zebra")

	testCases := []struct {
		prefix      string
		expected    string
		description string
	}{
		{"ca", "car cart cat ", "Shared prefix, ascending order"},
		{"car", "car cart ", "Prefix is itself a word"},
		{"cart", "cart ", "Leaf word"},
		{"do", "do dog ", "Terminal inner node"},
		{"z", "zebra ", "Single branch"},
		{"cab", "", "Unreachable prefix"},
		{"x", "", "Missing first letter"},
		{"", "car cart cat do dog zebra ", "Empty prefix enumerates everything"},
		{"Ca", "", "Uppercase is never in the tree"},
		{"c4", "", "Digit in prefix"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := tr.Predict(tc.prefix); got != tc.expected {
				t.Errorf("Predict(%q): expected %q, got %q", tc.prefix, tc.expected, got)
			}
		})
	}
}

func TestInsertedWordPredictsItself(t *testing.T) {
	words := []string{"a", "ab", "abc", "hello", "help", "helped", "world"}
	tr := newTrie(t, words...)

	for _, w := range words {
		got := tr.Complete(w)
		if len(got) == 0 || got[0] != w {
			t.Errorf("Complete(%q) = %v, expected %q first", w, got, w)
		}
	}
}

func TestSingleWord(t *testing.T) {
	tr := newTrie(t, "dog")

	if got := tr.Predict("do"); got != "dog " {
		t.Errorf("Predict(do): expected %q, got %q", "dog ", got)
	}
	if got := tr.Predict("dog"); got != "dog " {
		t.Errorf("Predict(dog): expected %q, got %q", "dog ", got)
	}
	if got := tr.Predict("z"); got != "" {
		t.Errorf("Predict(z): expected empty, got %q", got)
	}
}

func TestDuplicateInsert(t *testing.T) {
	tr := newTrie(t, "hello", "hello", "help")

	if tr.Len() != 2 {
		t.Errorf("expected 2 words, got %d", tr.Len())
	}
	expected := []string{"hello", "help"}
	if got := tr.Complete("hel"); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestEmptyTrie(t *testing.T) {
	tr := New()
	for _, prefix := range []string{"", "a", "hello", "?!", "\xff"} {
		if got := tr.Predict(prefix); got != "" {
			t.Errorf("Predict(%q) on empty trie: expected empty, got %q", prefix, got)
		}
	}
	if tr.Contains("a") {
		t.Error("empty trie should not contain anything")
	}
}

func TestInsertOutOfRange(t *testing.T) {
	tr := newTrie(t, "ab")

	for _, word := range []string{"Ab", "a-b", "abc1", "naïve", "a b"} {
		t.Run(word, func(t *testing.T) {
			err := tr.Insert(word)
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("Insert(%q): expected ErrOutOfRange, got %v", word, err)
			}
		})
	}

	// rejected words must not leave partial paths behind
	if got := tr.Predict("a"); got != "ab " {
		t.Errorf("tree changed by rejected inserts: %q", got)
	}
	if tr.Len() != 1 {
		t.Errorf("expected 1 word, got %d", tr.Len())
	}
}

func TestEmptyWordMarksRoot(t *testing.T) {
	tr := newTrie(t, "", "a")
	expected := []string{"", "a"}
	if got := tr.Complete(""); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestLoad(t *testing.T) {
	tr := New()
	input := "car\ncat\r\n\ncart\ncar\ndog"
	if err := tr.Load(strings.NewReader(input)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tr.Len() != 4 {
		t.Errorf("expected 4 words, got %d", tr.Len())
	}
	if got := tr.Predict("ca"); got != "car cart cat " {
		t.Errorf("unexpected completions %q", got)
	}
}

func TestLoadIsAllOrNothing(t *testing.T) {
	tr := newTrie(t, "keep")

	err := tr.Load(strings.NewReader("alpha\nbeta\nGamma\ndelta\n"))
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error should name the failing line: %v", err)
	}
	if tr.Contains("alpha") || tr.Len() != 1 {
		t.Errorf("failed load must not change the tree, got %d words", tr.Len())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.txt")
	if err := os.WriteFile(path, []byte("hell\nhello\nhelp\nhelped\nhelps\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tr := New()
	if err := tr.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := tr.Predict("hel"); got != "hell hello help helped helps " {
		t.Errorf("unexpected completions %q", got)
	}

	if err := New().LoadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for a missing vocabulary")
	}
}

func BenchmarkComplete(b *testing.B) {
	tr := New()
	for i := 0; i < 5000; i++ {
		word := fmt.Sprintf("w%s", strings.Repeat(string(rune('a'+i%26)), 1+i%7))
		_ = tr.Insert(word + string(rune('a'+(i/26)%26)))
	}
	prefixes := []string{"w", "wa", "wbb", "wccc", "wz"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Complete(prefixes[i%len(prefixes)])
	}
}
