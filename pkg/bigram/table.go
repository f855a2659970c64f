package bigram

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/log"
)

// adjacency holds the successors of one predecessor in first-observed order.
type adjacency struct {
	successors []Successor
	index      map[string]int
}

// FrequencyTable counts ordered word pairs. Counts only ever grow.
type FrequencyTable struct {
	order   []string
	entries map[string]*adjacency
	pairs   uint64
}

// NewFrequencyTable returns an empty table.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{
		entries: make(map[string]*adjacency),
	}
}

// Observe records one occurrence of successor following predecessor.
func (ft *FrequencyTable) Observe(predecessor, successor string) {
	adj, ok := ft.entries[predecessor]
	if !ok {
		adj = &adjacency{index: make(map[string]int)}
		ft.entries[predecessor] = adj
		ft.order = append(ft.order, predecessor)
	}

	if i, seen := adj.index[successor]; seen {
		adj.successors[i].Count++
	} else {
		adj.index[successor] = len(adj.successors)
		adj.successors = append(adj.successors, Successor{Word: successor, Count: 1})
	}
	ft.pairs++
}

// Count returns how many times successor was observed after predecessor.
func (ft *FrequencyTable) Count(predecessor, successor string) uint64 {
	adj, ok := ft.entries[predecessor]
	if !ok {
		return 0
	}
	i, ok := adj.index[successor]
	if !ok {
		return 0
	}
	return adj.successors[i].Count
}

// Len returns the number of distinct predecessors.
func (ft *FrequencyTable) Len() int {
	return len(ft.order)
}

// Observations returns the total number of Observe calls.
func (ft *FrequencyTable) Observations() uint64 {
	return ft.pairs
}

// SerializeOption tunes how a table is written.
type SerializeOption func(*serializeOptions)

type serializeOptions struct {
	topK int
}

// WithTopK keeps only the k most frequent successors of every predecessor.
// Ties keep first-observed order. k <= 0 keeps everything.
func WithTopK(k int) SerializeOption {
	return func(o *serializeOptions) {
		o.topK = k
	}
}

// Entries returns the table contents, predecessors in first-observed order.
// The returned slices are copies.
func (ft *FrequencyTable) Entries(opts ...SerializeOption) []Entry {
	var o serializeOptions
	for _, opt := range opts {
		opt(&o)
	}

	entries := make([]Entry, 0, len(ft.order))
	for _, word := range ft.order {
		succ := append([]Successor(nil), ft.entries[word].successors...)
		if o.topK > 0 && len(succ) > o.topK {
			sort.SliceStable(succ, func(i, j int) bool {
				return succ[i].Count > succ[j].Count
			})
			succ = succ[:o.topK]
		}
		entries = append(entries, Entry{Word: word, Successors: succ})
	}
	return entries
}

// Serialize writes one corpus line per predecessor to w.
func (ft *FrequencyTable) Serialize(w io.Writer, opts ...SerializeOption) error {
	writer := bufio.NewWriter(w)
	for _, entry := range ft.Entries(opts...) {
		if _, err := writer.WriteString(entry.String()); err != nil {
			return fmt.Errorf("writing entry %q: %w", entry.Word, err)
		}
		if err := writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing entry %q: %w", entry.Word, err)
		}
	}
	return writer.Flush()
}

// SaveFile writes the corpus to path, replacing any existing file.
func (ft *FrequencyTable) SaveFile(path string, opts ...SerializeOption) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create corpus file %s: %w", path, err)
	}

	if err := ft.Serialize(file, opts...); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing corpus file %s: %w", path, err)
	}

	log.Debugf("Saved %d predecessors (%d observations) to %s", ft.Len(), ft.pairs, path)
	return nil
}
