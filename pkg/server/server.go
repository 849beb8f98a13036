package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/wordtrie/internal/logger"
	"github.com/bastiangx/wordtrie/internal/utils"
	"github.com/bastiangx/wordtrie/pkg/config"
	"github.com/bastiangx/wordtrie/pkg/suggest"
	"github.com/bastiangx/wordtrie/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Options bound what a single request may ask for.
type Options struct {
	DefaultBudget int
	MaxBudget     int // 0 disables clamping
	MaxResults    int // 0 means unlimited
}

// OptionsFromConfig reads the server limits out of cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		DefaultBudget: cfg.CLI.DefaultBudget,
		MaxBudget:     cfg.Server.MaxBudget,
		MaxResults:    cfg.Server.MaxResults,
	}
}

// Server handles msgpack IPC for one trie.
type Server struct {
	trie     *trie.Trie
	matcher  *suggest.Matcher
	filter   *utils.WordFilter
	opts     Options
	decoder  *msgpack.Decoder
	writer   *bufio.Writer
	encoder  *msgpack.Encoder
	log      *log.Logger
	requests int
}

// NewServer creates a server reading requests from in and writing
// responses to out. The empty word is accepted, it addresses the root.
func NewServer(t *trie.Trie, filter *utils.WordFilter, opts Options, in io.Reader, out io.Writer) *Server {
	w := bufio.NewWriter(out)
	return &Server{
		trie:    t,
		matcher: suggest.NewMatcher(t),
		filter:  filter.AllowEmpty(),
		opts:    opts,
		decoder: msgpack.NewDecoder(bufio.NewReader(in)),
		writer:  w,
		encoder: msgpack.NewEncoder(w),
		log:     logger.New("ipc"),
	}
}

// Start serves requests until the input ends. A clean EOF between two
// requests returns nil; a request that cannot be decoded is answered with a
// 400 and ends the loop, since the stream position is lost.
func (s *Server) Start() error {
	s.log.Debug("Starting Server.")
	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("Input closed", "requests", s.requests)
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			s.sendError("", "invalid msgpack request", CodeBadRequest)
			return fmt.Errorf("decode request: %w", err)
		}
		s.requests++
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req Request) {
	switch req.Op {
	case OpInsert:
		s.handleMutation(req, s.trie.Insert)
	case OpRemove:
		s.handleMutation(req, s.trie.Remove)
	case OpCorrect:
		s.handleCorrect(req)
	case OpComplete:
		s.handleComplete(req)
	case OpStats:
		s.sendResponse(StatsResponse{
			ID:       req.ID,
			Keys:     s.trie.Len(),
			Nodes:    s.trie.Nodes(),
			Alphabet: s.trie.Alphabet().String(),
			Requests: s.requests,
		})
	default:
		s.log.Warnf("Unknown op %q in request %s", req.Op, req.ID)
		s.sendError(req.ID, fmt.Sprintf("unknown op: %s", req.Op), CodeUnknownOp)
	}
}

func (s *Server) clean(req Request) (string, bool) {
	word, err := s.filter.Clean(req.Word)
	if err != nil {
		s.log.Debugf("Rejected %s request %s: %v", req.Op, req.ID, err)
		s.sendError(req.ID, err.Error(), CodeBadRequest)
		return "", false
	}
	return word, true
}

func (s *Server) handleMutation(req Request, apply func(string) error) {
	word, ok := s.clean(req)
	if !ok {
		return
	}
	if err := apply(word); err != nil {
		s.sendError(req.ID, err.Error(), CodeBadRequest)
		return
	}
	s.sendResponse(StatusResponse{ID: req.ID, Status: "ok", Keys: s.trie.Len()})
}

func (s *Server) handleCorrect(req Request) {
	word, ok := s.clean(req)
	if !ok {
		return
	}
	budget := s.budget(req.Budget)

	start := time.Now()
	matches := s.matcher.MatchesAll(word, budget, s.limit(req.Limit))
	elapsed := time.Since(start)

	suggestions := make([]Suggestion, len(matches))
	for i, m := range matches {
		suggestions[i] = Suggestion{Word: m.Word, Distance: m.Distance, Count: m.Count}
	}
	s.log.Debugf("Took [ %v ] for '%s' k=%d", elapsed, word, budget)
	s.sendResponse(Response{
		ID:          req.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) handleComplete(req Request) {
	prefix, ok := s.clean(req)
	if !ok {
		return
	}

	start := time.Now()
	words := s.matcher.CompleteAll(prefix, s.limit(req.Limit))
	suggestions := make([]Suggestion, len(words))
	for i, w := range words {
		suggestions[i] = Suggestion{Word: w, Count: s.trie.Lookup(w).Count()}
	}
	elapsed := time.Since(start)

	s.log.Debugf("Took [ %v ] for prefix '%s'", elapsed, prefix)
	s.sendResponse(Response{
		ID:          req.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) budget(requested *int) int {
	budget := s.opts.DefaultBudget
	if requested != nil {
		budget = *requested
	}
	if s.opts.MaxBudget > 0 && budget > s.opts.MaxBudget {
		budget = s.opts.MaxBudget
	}
	return budget
}

func (s *Server) limit(requested int) int {
	if requested <= 0 {
		return s.opts.MaxResults
	}
	if s.opts.MaxResults > 0 && requested > s.opts.MaxResults {
		return s.opts.MaxResults
	}
	return requested
}

// sendResponse encodes response and flushes it so the client sees it
// before the next request is read.
func (s *Server) sendResponse(response any) {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
		return
	}
	if err := s.writer.Flush(); err != nil {
		s.log.Errorf("Writing response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{ID: id, Error: message, Code: code})
}
