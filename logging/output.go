package logging

import (
	"io"
	"os"
	"sync"
)

// switchWriter forwards to a writer that can be replaced while loggers
// hold on to it.
type switchWriter struct {
	mu sync.RWMutex
	w  io.Writer
}

func (s *switchWriter) Write(p []byte) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.w.Write(p)
}

func (s *switchWriter) set(w io.Writer) io.Writer {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.w
	s.w = w
	return prev
}

var terminal = &switchWriter{w: os.Stderr}

// SetTerminalOutput replaces the destination of every logger's terminal
// sink and returns the previous one. The file sink is unaffected. A
// full-screen program sets io.Discard while it owns the terminal and restores
// the previous writer when it exits.
func SetTerminalOutput(w io.Writer) io.Writer {
	if w == nil {
		w = io.Discard
	}
	return terminal.set(w)
}

// TerminalOutput is the shared terminal sink loggers write to.
func TerminalOutput() io.Writer {
	return terminal
}
