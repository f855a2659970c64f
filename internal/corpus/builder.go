package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bastiangx/wordpredict/pkg/bigram"
	"github.com/charmbracelet/log"
)

// Builder accumulates word pairs and vocabulary from raw input.
type Builder struct {
	table     *bigram.FrequencyTable
	vocab     *Vocabulary
	minSeqLen int
	sentences int
}

// NewBuilder returns a builder that ignores sentences shorter than minSeqLen
// words. minSeqLen <= 0 uses DefaultMinSequenceLen.
func NewBuilder(minSeqLen int) *Builder {
	if minSeqLen <= 0 {
		minSeqLen = DefaultMinSequenceLen
	}
	return &Builder{
		table:     bigram.NewFrequencyTable(),
		vocab:     NewVocabulary(),
		minSeqLen: minSeqLen,
	}
}

// AddText tokenizes text and observes every adjacent pair and word in it.
func (b *Builder) AddText(text string) {
	for _, sentence := range Tokenize(text, b.minSeqLen) {
		b.sentences++
		for _, word := range sentence {
			b.vocab.Add(word)
		}
		for _, p := range Pairs(sentence) {
			b.table.Observe(p[0], p[1])
		}
	}
}

// ReadText feeds every line of r to AddText.
func (b *Builder) ReadText(r io.Reader) error {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			b.AddText(line)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read text: %w", err)
		}
	}
	log.Debugf("Read %d sentences, %d predecessors, %d words", b.sentences, b.table.Len(), b.vocab.Len())
	return nil
}

// ReadPairs reads lines of exactly two whitespace separated words and observes
// each as a pair. Blank lines are skipped.
func (b *Builder) ReadPairs(r io.Reader) error {
	reader := bufio.NewReader(r)
	lineNo := 0
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("failed to read pairs: %w", err)
		}
		if line != "" {
			lineNo++
		}

		if fields := strings.Fields(line); len(fields) > 0 {
			if len(fields) != 2 {
				return fmt.Errorf("pairs line %d: expected 2 words, got %d", lineNo, len(fields))
			}
			b.table.Observe(fields[0], fields[1])
			b.vocab.Add(fields[0])
			b.vocab.Add(fields[1])
		}

		if err == io.EOF {
			break
		}
	}
	log.Debugf("Read %d pair lines, %d predecessors", lineNo, b.table.Len())
	return nil
}

// Table returns the accumulated pair counts.
func (b *Builder) Table() *bigram.FrequencyTable {
	return b.table
}

// Vocabulary returns the accumulated words.
func (b *Builder) Vocabulary() *Vocabulary {
	return b.vocab
}

// Sentences returns how many sentences were kept by AddText.
func (b *Builder) Sentences() int {
	return b.sentences
}
