package trie

import (
	"strings"
	"testing"
)

func FuzzInsertComplete(f *testing.F) {
	f.Add("hello", "he")
	f.Add("cart", "car")
	f.Add("", "")
	f.Add("abc", "abcd")
	f.Add("Hello", "h")
	f.Add("\xff\xfe", "\x00")
	f.Add("naïve", "na")

	f.Fuzz(func(t *testing.T, word, prefix string) {
		tr := New()
		err := tr.Insert(word)
		if err != nil {
			// rejected input must leave an empty tree
			if tr.Len() != 0 || tr.Predict(prefix) != "" {
				t.Fatalf("rejected %q but tree changed", word)
			}
			return
		}

		if !tr.Contains(word) {
			t.Fatalf("inserted %q but Contains is false", word)
		}
		for _, w := range tr.Complete(prefix) {
			if !strings.HasPrefix(w, prefix) {
				t.Fatalf("completion %q does not start with %q", w, prefix)
			}
		}
	})
}
