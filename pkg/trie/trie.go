// Package trie implements the word autocompletion engine: a 26-ary prefix tree
// over lowercase ASCII letters, loaded from a newline-delimited vocabulary.
//
// A Trie is not safe for concurrent use. It is meant to be owned by a single
// caller at a time; wrap it (see pkg/predict) when it has to be shared.
package trie

import (
	"errors"
	"fmt"
	"strings"
)

// alphabetSize is the number of child slots per node, one per letter a-z.
const alphabetSize = 26

// ErrOutOfRange is returned when a word contains a byte outside a-z.
var ErrOutOfRange = errors.New("character out of supported range")

type node struct {
	char     byte
	terminal bool
	children [alphabetSize]*node
}

// Trie is a prefix tree. The zero value is not usable, use New.
type Trie struct {
	root  *node
	words int
}

// New returns a tree holding only the placeholder root.
func New() *Trie {
	return &Trie{root: &node{char: '*'}}
}

// Len returns the number of distinct words in the tree.
func (t *Trie) Len() int {
	return t.words
}

// slot maps a letter to its child index.
func slot(c byte) (int, bool) {
	if c < 'a' || c > 'z' {
		return 0, false
	}
	return int(c - 'a'), true
}

// validate reports the first byte of word that has no child slot.
func validate(word string) error {
	for i := 0; i < len(word); i++ {
		if _, ok := slot(word[i]); !ok {
			return fmt.Errorf("%w: %q at offset %d in %q", ErrOutOfRange, word[i], i, word)
		}
	}
	return nil
}

// Insert adds word to the tree. The whole word is checked before any node is
// created, so a rejected word leaves the tree unchanged. Inserting a word twice
// has no further effect.
func (t *Trie) Insert(word string) error {
	if err := validate(word); err != nil {
		return err
	}
	t.insert(word)
	return nil
}

func (t *Trie) insert(word string) {
	current := t.root
	for i := 0; i < len(word); i++ {
		idx, _ := slot(word[i])
		if current.children[idx] == nil {
			current.children[idx] = &node{char: word[i]}
		}
		current = current.children[idx]
	}
	if !current.terminal {
		current.terminal = true
		t.words++
	}
}

// find walks the tree along prefix and returns the node it ends on, or nil
// when some character of prefix has no child.
func (t *Trie) find(prefix string) *node {
	current := t.root
	for i := 0; i < len(prefix); i++ {
		idx, ok := slot(prefix[i])
		if !ok {
			return nil
		}
		current = current.children[idx]
		if current == nil {
			return nil
		}
	}
	return current
}

// Contains reports whether word was inserted as a complete word.
func (t *Trie) Contains(word string) bool {
	n := t.find(word)
	return n != nil && n.terminal
}

// Complete returns every inserted word that starts with prefix, in ascending
// lexicographic order. The prefix itself is included when it is a word.
// An unreachable prefix yields nil.
func (t *Trie) Complete(prefix string) []string {
	start := t.find(prefix)
	if start == nil {
		return nil
	}

	type frame struct {
		n    *node
		word string
	}

	var words []string
	stack := []frame{{n: start, word: prefix}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.n.terminal {
			words = append(words, top.word)
		}
		// pushed z..a so that a is popped first
		for i := alphabetSize - 1; i >= 0; i-- {
			child := top.n.children[i]
			if child == nil {
				continue
			}
			stack = append(stack, frame{n: child, word: top.word + string(child.char)})
		}
	}
	return words
}

// Predict returns the completions of prefix joined by single spaces with a
// trailing space, or "" when there are none.
func (t *Trie) Predict(prefix string) string {
	return join(t.Complete(prefix))
}

func join(words []string) string {
	if len(words) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, w := range words {
		sb.WriteString(w)
		sb.WriteByte(' ')
	}
	return sb.String()
}
