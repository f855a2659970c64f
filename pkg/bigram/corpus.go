// Package bigram implements next-word prediction from word adjacency counts.
//
// A FrequencyTable collects (predecessor, successor) observations and writes
// them as an adjacency corpus, one predecessor per line:
//
//	<word> <succ1> <count1> <succ2> <count2> ...
//
// A Predictor loads such a file and answers which words followed a given word.
// Neither type is safe for concurrent use.
package bigram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedLine is returned for corpus lines that are not of the form
// word (successor count)+.
var ErrMalformedLine = errors.New("malformed corpus line")

// Successor is a word observed after a predecessor, with the number of times
// the pair was seen.
type Successor struct {
	Word  string
	Count uint64
}

// Entry is one line of the adjacency corpus.
type Entry struct {
	Word       string
	Successors []Successor
}

// String formats e as a corpus line, without the trailing newline.
func (e Entry) String() string {
	var sb strings.Builder
	sb.WriteString(e.Word)
	for _, s := range e.Successors {
		sb.WriteByte(' ')
		sb.WriteString(s.Word)
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatUint(s.Count, 10))
	}
	return sb.String()
}

// ParseLine parses a single corpus line. Tokens are separated by any run of
// whitespace. The line must hold a word followed by at least one
// successor/count pair, and every count must be a positive integer.
func ParseLine(line string) (Entry, error) {
	tokens := strings.Fields(line)
	if len(tokens) < 3 {
		return Entry{}, fmt.Errorf("%w: expected at least 3 tokens, got %d", ErrMalformedLine, len(tokens))
	}
	if len(tokens)%2 == 0 {
		return Entry{}, fmt.Errorf("%w: successor %q has no count", ErrMalformedLine, tokens[len(tokens)-1])
	}

	entry := Entry{
		Word:       tokens[0],
		Successors: make([]Successor, 0, (len(tokens)-1)/2),
	}
	for i := 1; i+1 < len(tokens); i += 2 {
		count, err := strconv.ParseUint(tokens[i+1], 10, 64)
		if err != nil || count == 0 {
			return Entry{}, fmt.Errorf("%w: invalid count %q for successor %q", ErrMalformedLine, tokens[i+1], tokens[i])
		}
		entry.Successors = append(entry.Successors, Successor{Word: tokens[i], Count: count})
	}
	return entry, nil
}
