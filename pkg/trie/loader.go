package trie

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Load reads a newline-delimited vocabulary from r and inserts every non-empty
// line, in order. Every line is validated before the first insert: on error
// the tree is left exactly as it was.
func (t *Trie) Load(r io.Reader) error {
	var words []string

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		word := strings.TrimSuffix(scanner.Text(), "\r")
		if word == "" {
			continue
		}
		if err := validate(word); err != nil {
			return fmt.Errorf("vocabulary line %d: %w", lineNo, err)
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read vocabulary: %w", err)
	}

	before := t.words
	for _, w := range words {
		t.insert(w)
	}
	log.Debugf("Loaded %d vocabulary lines, %d new words", len(words), t.words-before)
	return nil
}

// LoadFile opens path and loads it with Load.
func (t *Trie) LoadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open vocabulary %s: %w", path, err)
	}
	defer func(file *os.File) {
		if err := file.Close(); err != nil {
			log.Errorf("closing file: %v", err)
		}
	}(file)

	return t.Load(file)
}
