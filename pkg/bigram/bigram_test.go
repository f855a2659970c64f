package bigram

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"
)

func TestObserve(t *testing.T) {
	ft := NewFrequencyTable()
	ft.Observe("the", "cat")
	ft.Observe("the", "cat")
	ft.Observe("the", "dog")
	ft.Observe("a", "cat")

	testCases := []struct {
		pred, succ string
		expected   uint64
	}{
		{"the", "cat", 2},
		{"the", "dog", 1},
		{"a", "cat", 1},
		{"cat", "the", 0},
		{"The", "cat", 0},
		{"missing", "word", 0},
	}
	for _, tc := range testCases {
		if got := ft.Count(tc.pred, tc.succ); got != tc.expected {
			t.Errorf("Count(%q, %q): expected %d, got %d", tc.pred, tc.succ, tc.expected, got)
		}
	}

	if ft.Len() != 2 {
		t.Errorf("expected 2 predecessors, got %d", ft.Len())
	}
	if ft.Observations() != 4 {
		t.Errorf("expected 4 observations, got %d", ft.Observations())
	}
}

func TestSerialize(t *testing.T) {
	ft := NewFrequencyTable()
	ft.Observe("the", "cat")
	ft.Observe("the", "cat")
	ft.Observe("the", "dog")
	ft.Observe("cat", "sat")

	var buf bytes.Buffer
	if err := ft.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	sort.Strings(lines)
	expected := []string{"cat sat 1", "the cat 2 dog 1"}
	if !reflect.DeepEqual(lines, expected) {
		t.Errorf("expected lines %q, got %q", expected, lines)
	}
}

func TestSerializeTopK(t *testing.T) {
	ft := NewFrequencyTable()
	for _, s := range []string{"a", "b", "b", "c", "c", "c", "d", "d"} {
		ft.Observe("x", s)
	}

	var buf bytes.Buffer
	if err := ft.Serialize(&buf, WithTopK(3)); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if got, expected := buf.String(), "x c 3 b 2 d 2\n"; got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}

	// the table itself keeps every successor
	if ft.Count("x", "a") != 1 {
		t.Error("top-k must not modify the table")
	}
}

func TestRoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"the", "cat"}, {"the", "cat"}, {"the", "dog"},
		{"cat", "sat"}, {"sat", "on"}, {"on", "the"}, {"the", "mat"},
		{"i", "am"}, {"am", "here"}, {"i", "was"},
	}
	ft := NewFrequencyTable()
	for _, p := range pairs {
		ft.Observe(p[0], p[1])
	}

	path := filepath.Join(t.TempDir(), "corpus.txt")
	if err := ft.SaveFile(path); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	p := NewPredictor()
	if err := p.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	expected := map[string][]string{
		"the": {"cat", "dog", "mat"},
		"cat": {"sat"},
		"sat": {"on"},
		"on":  {"the"},
		"i":   {"am", "was"},
		"am":  {"here"},
	}
	if p.Len() != len(expected) {
		t.Errorf("expected %d predecessors, got %d", len(expected), p.Len())
	}
	for word, succ := range expected {
		if got := p.Successors(word); !reflect.DeepEqual(got, succ) {
			t.Errorf("Successors(%q): expected %v, got %v", word, succ, got)
		}
	}
}

func TestPredict(t *testing.T) {
	ft := NewFrequencyTable()
	ft.Observe("the", "cat")
	ft.Observe("the", "cat")
	ft.Observe("the", "dog")

	var buf bytes.Buffer
	if err := ft.Serialize(&buf); err != nil {
		t.Fatal(err)
	}
	p := NewPredictor()
	if err := p.Load(&buf); err != nil {
		t.Fatalf("Load: %v", err)
	}

	testCases := []struct {
		word        string
		expected    string
		description string
	}{
		{"the", "cat dog ", "Successors in file order"},
		{"cat", "", "Word only seen as a successor"},
		{"The", "", "Lookup is case sensitive"},
		{"", "", "Empty word"},
		{"the ", "", "No trimming"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := p.Predict(tc.word); got != tc.expected {
				t.Errorf("Predict(%q): expected %q, got %q", tc.word, tc.expected, got)
			}
		})
	}
}

func TestLoadFormats(t *testing.T) {
	input := "hello world 3 there 1\r\n\n  \nhi   you 2\nhello again 4"
	p := NewPredictor()
	if err := p.Load(strings.NewReader(input)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	// later line for the same predecessor wins
	if got := p.Predict("hello"); got != "again " {
		t.Errorf("expected %q, got %q", "again ", got)
	}
	if got := p.Predict("hi"); got != "you " {
		t.Errorf("expected %q, got %q", "you ", got)
	}
}

func TestLoadMalformed(t *testing.T) {
	testCases := []struct {
		input       string
		description string
	}{
		{"lonely\n", "Single token"},
		{"word succ\n", "Missing count"},
		{"word succ 2 other\n", "Odd pair"},
		{"word succ zero\n", "Non numeric count"},
		{"word succ 0\n", "Zero count"},
		{"word succ -1\n", "Negative count"},
		{"ok next 1\nbad\n", "Malformed after a good line"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			p := NewPredictor()
			if err := p.Load(strings.NewReader("keep me 1\n")); err != nil {
				t.Fatal(err)
			}

			err := p.Load(strings.NewReader(tc.input))
			if !errors.Is(err, ErrMalformedLine) {
				t.Fatalf("expected ErrMalformedLine, got %v", err)
			}
			// failed reload keeps the old state
			if got := p.Predict("keep"); got != "me " {
				t.Errorf("state lost after failed load: %q", got)
			}
		})
	}
}

func TestLoadReplacesState(t *testing.T) {
	p := NewPredictor()
	if err := p.Load(strings.NewReader("a b 1\n")); err != nil {
		t.Fatal(err)
	}
	if err := p.Load(strings.NewReader("c d 1\n")); err != nil {
		t.Fatal(err)
	}
	if p.Predict("a") != "" || p.Predict("c") != "d " {
		t.Errorf("reload should replace the previous corpus")
	}
}

func TestLoadMissingFile(t *testing.T) {
	err := NewPredictor().LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestSaveFileUnwritable(t *testing.T) {
	ft := NewFrequencyTable()
	ft.Observe("a", "b")
	if err := ft.SaveFile(filepath.Join(t.TempDir(), "missing", "dir", "corpus.txt")); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}

func TestSuccessorsIsACopy(t *testing.T) {
	p := NewPredictor()
	if err := p.Load(strings.NewReader("a b 1 c 1\n")); err != nil {
		t.Fatal(err)
	}
	succ := p.Successors("a")
	succ[0] = "mutated"
	if got := p.Predict("a"); got != "b c " {
		t.Errorf("caller mutation leaked into predictor: %q", got)
	}
}

func BenchmarkPredictorLoad(b *testing.B) {
	ft := NewFrequencyTable()
	words := []string{"the", "cat", "sat", "on", "mat", "dog", "ran", "away"}
	for i := 0; i < 20000; i++ {
		ft.Observe(words[i%len(words)], words[(i*7+3)%len(words)])
	}
	var buf bytes.Buffer
	if err := ft.Serialize(&buf); err != nil {
		b.Fatal(err)
	}
	corpus := buf.String()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := NewPredictor().Load(strings.NewReader(corpus)); err != nil {
			b.Fatal(err)
		}
	}
}
