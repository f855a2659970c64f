package bigram

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Predictor maps a word to the words that followed it in the corpus.
// Counts are dropped at load time; successor order is the file order.
type Predictor struct {
	words map[string][]string
}

// NewPredictor returns a predictor with nothing loaded.
func NewPredictor() *Predictor {
	return &Predictor{
		words: make(map[string][]string),
	}
}

// Load reads a whole adjacency corpus from r. Blank lines are skipped and a
// later line for the same predecessor replaces an earlier one. The previous
// state is replaced only when the whole input parses.
func (p *Predictor) Load(r io.Reader) error {
	words := make(map[string][]string)

	reader := bufio.NewReader(r)
	lineNo := 0
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("failed to read corpus: %w", err)
		}
		if line != "" {
			lineNo++
		}

		if strings.TrimSpace(line) != "" {
			entry, perr := ParseLine(line)
			if perr != nil {
				return fmt.Errorf("corpus line %d: %w", lineNo, perr)
			}
			successors := make([]string, len(entry.Successors))
			for i, s := range entry.Successors {
				successors[i] = s.Word
			}
			words[entry.Word] = successors
		}

		if err == io.EOF {
			break
		}
	}

	p.words = words
	log.Debugf("Loaded %d predecessors from %d corpus lines", len(words), lineNo)
	return nil
}

// LoadFile opens path and loads it with Load.
func (p *Predictor) LoadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open corpus %s: %w", path, err)
	}
	defer func(file *os.File) {
		if err := file.Close(); err != nil {
			log.Errorf("closing file: %v", err)
		}
	}(file)

	return p.Load(file)
}

// Len returns the number of known predecessors.
func (p *Predictor) Len() int {
	return len(p.words)
}

// Successors returns the words that followed word, in corpus order, or nil for
// an unknown word. Lookup is exact.
func (p *Predictor) Successors(word string) []string {
	succ, ok := p.words[word]
	if !ok {
		return nil
	}
	return append([]string(nil), succ...)
}

// Predict returns the successors of word joined by single spaces with a
// trailing space, or "" for an unknown word.
func (p *Predictor) Predict(word string) string {
	succ := p.words[word]
	if len(succ) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, s := range succ {
		sb.WriteString(s)
		sb.WriteByte(' ')
	}
	return sb.String()
}
