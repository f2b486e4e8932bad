package memory

import (
	"context"
	"sync"

	"github.com/aretw0/confgen/pkg/domain"
)

// Sink implements ports.OutputSink in memory.
// Safe for concurrent use.
type Sink struct {
	data map[string]string
	mu   sync.RWMutex
	fail error
}

// NewSink creates a new in-memory sink.
func NewSink() *Sink {
	return &Sink{
		data: make(map[string]string),
	}
}

// FailWith makes every later Write return err wrapped as an OutputWriteError.
func (s *Sink) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = err
}

// Write stores text under path, replacing any previous content.
func (s *Sink) Write(ctx context.Context, path string, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return &domain.OutputWriteError{Path: path, Err: s.fail}
	}
	s.data[path] = text
	return nil
}

// Get returns the text written to path.
func (s *Sink) Get(path string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.data[path]
	return text, ok
}

// Len returns the number of distinct paths written.
func (s *Sink) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
