// Package predict combines word autocompletion and next-word prediction behind
// one owning handle, the way a keyboard would drive them while the user types.
//
// A Handle is created once (Open or New), queried any number of times and
// released once with Close. Queries after Close fail with ErrClosed. Calls are
// serialized by the handle, so it can be shared by several goroutines.
package predict

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bastiangx/wordpredict/internal/utils"
	"github.com/bastiangx/wordpredict/pkg/bigram"
	"github.com/bastiangx/wordpredict/pkg/trie"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrClosed is returned by every call on a closed handle.
	ErrClosed = errors.New("predictor handle is closed")
	// ErrNotWord is returned when the input holds more than one word.
	ErrNotWord = errors.New("input has more than one word")
	// ErrContainsNumber is returned when next-word input contains digits.
	ErrContainsNumber = errors.New("input contains numbers")
)

// Handle owns one autocompletion trie and one next-word predictor.
type Handle struct {
	mu        sync.Mutex
	trie      *trie.Trie
	predictor *bigram.Predictor
	closed    bool
}

// New wraps already loaded engines. Either may be nil, in which case the
// matching queries return no suggestions.
func New(t *trie.Trie, p *bigram.Predictor) *Handle {
	if t == nil {
		t = trie.New()
	}
	if p == nil {
		p = bigram.NewPredictor()
	}
	return &Handle{trie: t, predictor: p}
}

// Open loads the vocabulary and the adjacency corpus concurrently. An empty
// path leaves that engine empty.
func Open(ctx context.Context, vocabPath, corpusPath string) (*Handle, error) {
	t := trie.New()
	p := bigram.NewPredictor()

	g, ctx := errgroup.WithContext(ctx)
	if vocabPath != "" {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return t.LoadFile(vocabPath)
		})
	}
	if corpusPath != "" {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return p.LoadFile(corpusPath)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("opening predictor: %w", err)
	}

	log.Debugf("Predictor ready: %d words, %d predecessors", t.Len(), p.Len())
	return New(t, p), nil
}

// Complete returns the vocabulary words starting with word. The input is
// lowercased and stripped of non-letters first.
func (h *Handle) Complete(word string) ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, ErrClosed
	}

	input := utils.NormalizeWord(word)
	if !utils.IsSingleWord(input) {
		return nil, ErrNotWord
	}
	input = utils.StripNonAlphabet(input)
	if input == "" {
		return nil, nil
	}
	return h.trie.Complete(input), nil
}

// Next returns the words that followed word in the corpus.
func (h *Handle) Next(word string) ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, ErrClosed
	}

	input := utils.NormalizeWord(word)
	if !utils.IsSingleWord(input) {
		return nil, ErrNotWord
	}
	if utils.ContainsNumbers(input) {
		return nil, ErrContainsNumber
	}
	return h.predictor.Successors(input), nil
}

// Stream suggests words for text as typed so far. While the last word is still
// being typed it is autocompleted; once text ends in a space the words that
// may follow the last word are returned. Blank text has no suggestions.
func (h *Handle) Stream(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		h.mu.Lock()
		closed := h.closed
		h.mu.Unlock()
		if closed {
			return nil, ErrClosed
		}
		return nil, nil
	}

	fields := strings.Fields(text)
	last := fields[len(fields)-1]
	if strings.HasSuffix(text, " ") {
		return h.Next(last)
	}
	return h.Complete(last)
}

// Close releases both engines. Closing twice returns ErrClosed.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrClosed
	}
	h.closed = true
	h.trie = nil
	h.predictor = nil
	return nil
}
