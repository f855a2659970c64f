// Package cli handles cmd line input and prints predictions, for testing the
// engines interactively.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Mode selects which engine answers a line of input.
type Mode string

const (
	ModeComplete Mode = "complete"
	ModeNext     Mode = "next"
	ModeStream   Mode = "stream"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeComplete, ModeNext, ModeStream:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want complete, next or stream)", s)
	}
}

// Predictor is what the handler queries; *predict.Handle implements it.
type Predictor interface {
	Complete(word string) ([]string, error)
	Next(word string) ([]string, error)
	Stream(text string) ([]string, error)
}

// InputHandler reads one query per line and writes one prediction line per
// query: the suggestions joined by spaces with a trailing space, or an empty
// line when there are none.
type InputHandler struct {
	predictor    Predictor
	mode         Mode
	in           io.Reader
	out          io.Writer
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(predictor Predictor, mode Mode, in io.Reader, out io.Writer) *InputHandler {
	return &InputHandler{
		predictor: predictor,
		mode:      mode,
		in:        in,
		out:       out,
	}
}

// Start runs the loop until the input ends. EOF is a normal exit.
func (h *InputHandler) Start() error {
	log.Debug("WordPredict CLI", "mode", h.mode)
	reader := bufio.NewReader(h.in)

	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			if werr := h.handleInput(strings.TrimRight(line, "\r\n")); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// handleInput answers a single query. Stream mode keeps trailing spaces since
// they switch from completion to next-word prediction.
func (h *InputHandler) handleInput(input string) error {
	h.requestCount++
	start := time.Now()

	var (
		words []string
		err   error
	)
	switch h.mode {
	case ModeComplete:
		words, err = h.predictor.Complete(strings.TrimSpace(input))
	case ModeNext:
		words, err = h.predictor.Next(strings.TrimSpace(input))
	default:
		words, err = h.predictor.Stream(input)
	}
	if err != nil {
		log.Warnf("No suggestions for %q: %v", input, err)
	}
	log.Debugf("Took [ %v ] for request %d %q", time.Since(start), h.requestCount, input)

	_, werr := fmt.Fprintln(h.out, format(words))
	return werr
}

func format(words []string) string {
	if len(words) == 0 {
		return ""
	}
	return strings.Join(words, " ") + " "
}
