package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Vocabulary is a counted set of lowercase ASCII words backed by a patricia
// trie.
type Vocabulary struct {
	trie *patricia.Trie
	size int
}

// NewVocabulary returns an empty vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{trie: patricia.NewTrie()}
}

func isWord(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return true
}

// Add counts one occurrence of word. Words that are not made of a-z only are
// rejected, since the autocompletion trie could not load them.
func (v *Vocabulary) Add(word string) bool {
	if !isWord(word) {
		return false
	}
	key := patricia.Prefix(word)
	if item := v.trie.Get(key); item != nil {
		v.trie.Set(key, item.(int)+1)
		return true
	}
	v.trie.Insert(key, 1)
	v.size++
	return true
}

// Count returns the number of times word was added.
func (v *Vocabulary) Count(word string) int {
	if item := v.trie.Get(patricia.Prefix(word)); item != nil {
		return item.(int)
	}
	return 0
}

// Len returns the number of distinct words.
func (v *Vocabulary) Len() int {
	return v.size
}

// CountPrefix returns how many distinct words start with prefix.
func (v *Vocabulary) CountPrefix(prefix string) int {
	n := 0
	err := v.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		n++
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting vocabulary subtree: %v", err)
	}
	return n
}

// Words returns the words seen at least minCount times, sorted.
func (v *Vocabulary) Words(minCount int) []string {
	words := make([]string, 0, v.size)
	err := v.trie.Visit(func(p patricia.Prefix, item patricia.Item) error {
		if item.(int) >= minCount {
			words = append(words, string(p))
		}
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting vocabulary: %v", err)
	}
	sort.Strings(words)
	return words
}

// Write writes Words(minCount) to w, one per line.
func (v *Vocabulary) Write(w io.Writer, minCount int) error {
	writer := bufio.NewWriter(w)
	for _, word := range v.Words(minCount) {
		if _, err := writer.WriteString(word + "\n"); err != nil {
			return fmt.Errorf("writing word %q: %w", word, err)
		}
	}
	return writer.Flush()
}

// SaveFile writes the vocabulary to path, replacing any existing file.
func (v *Vocabulary) SaveFile(path string, minCount int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create vocabulary file %s: %w", path, err)
	}
	if err := v.Write(file, minCount); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing vocabulary file %s: %w", path, err)
	}
	log.Debugf("Saved vocabulary of %d words to %s", v.size, path)
	return nil
}
