package server

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/wordpredict/internal/logger"
	"github.com/bastiangx/wordpredict/internal/utils"
	"github.com/bastiangx/wordpredict/pkg/config"
	"github.com/bastiangx/wordpredict/pkg/predict"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Predictor is the set of queries the server exposes; *predict.Handle
// implements it.
type Predictor interface {
	Complete(word string) ([]string, error)
	Next(word string) ([]string, error)
	Stream(text string) ([]string, error)
}

// Server handles msgpack IPC for word predictions.
type Server struct {
	predictor    Predictor
	config       *config.Config
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	logger       *log.Logger
	requestCount int
}

// NewServer creates a server reading requests from in and writing responses
// to out, usually stdin and stdout.
func NewServer(predictor Predictor, cfg *config.Config, in io.Reader, out io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		predictor: predictor,
		config:    cfg,
		decoder:   msgpack.NewDecoder(in),
		encoder:   msgpack.NewEncoder(out),
		logger:    logger.New("server"),
	}
}

// Start announces readiness and serves requests until the input ends.
func (s *Server) Start() error {
	s.logger.Debug("Starting server")
	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Client disconnected", "requests", s.requestCount)
				return nil
			}
			// framing is lost after a bad message, so stop here
			s.logger.Errorf("Decoding request: %v", err)
			_ = s.sendError("", "invalid msgpack request", 400)
			return fmt.Errorf("decoding request: %w", err)
		}
		s.requestCount++
		if err := s.handleRequest(req); err != nil {
			return err
		}
	}
}

func (s *Server) handleRequest(req Request) error {
	switch req.Action {
	case "health":
		return s.send(StatusResponse{ID: req.ID, Status: "ok"})
	case "complete", "next", "stream":
		return s.handlePredict(req)
	default:
		return s.sendError(req.ID, fmt.Sprintf("unknown action: %q", req.Action), 400)
	}
}

func (s *Server) handlePredict(req Request) error {
	if maxInput := s.config.Server.MaxInput; maxInput > 0 && len(req.Text) > maxInput {
		s.logger.Debug("Input is too long in request", "id", req.ID, "len", len(req.Text))
		return s.sendError(req.ID, fmt.Sprintf("input exceeds maximum length of %d characters", maxInput), 400)
	}

	start := time.Now()
	var (
		words []string
		err   error
	)
	switch req.Action {
	case "complete":
		words, err = s.predictor.Complete(req.Text)
	case "next":
		words, err = s.predictor.Next(req.Text)
	default:
		words, err = s.predictor.Stream(req.Text)
	}
	elapsed := time.Since(start)

	if err != nil {
		return s.sendError(req.ID, err.Error(), errorCode(err))
	}

	limit := req.Limit
	if limit <= 0 {
		limit = s.config.Server.MaxResults
	}
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}

	ranks := utils.CreateRankList(len(words))
	suggestions := make([]Suggestion, len(words))
	for i, w := range words {
		suggestions[i] = Suggestion{Word: w, Rank: ranks[i]}
	}

	return s.send(Response{
		ID:          req.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func errorCode(err error) int {
	switch {
	case errors.Is(err, predict.ErrNotWord), errors.Is(err, predict.ErrContainsNumber):
		return 400
	case errors.Is(err, predict.ErrClosed):
		return 503
	default:
		return 500
	}
}

func (s *Server) send(v any) error {
	if err := s.encoder.Encode(v); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return fmt.Errorf("encoding response: %w", err)
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
