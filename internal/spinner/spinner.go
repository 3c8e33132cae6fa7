// Package spinner shows a progress indicator on stderr while a long count runs.
package spinner

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// frames are drawn in order, one per tick.
var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner redraws a frame and message on a single line until stopped.
type Spinner struct {
	writer  io.Writer
	delay   time.Duration
	message string

	mu     sync.Mutex
	active bool
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a spinner that writes to w.
func New(w io.Writer, message string) *Spinner {
	return &Spinner{
		writer:  w,
		delay:   80 * time.Millisecond,
		message: message,
	}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Start begins drawing until Stop is called or ctx is cancelled.
// Starting an active spinner does nothing.
func (s *Spinner) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	s.active = true

	go s.run(ctx, s.done)
}

// Stop ends the animation and clears the line. Stopping an idle spinner does nothing.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	s.cancel()
	done := s.done
	s.mu.Unlock()

	<-done

	if IsTerminal(s.writer) {
		fmt.Fprint(s.writer, "\r\033[2K")
	} else {
		fmt.Fprint(s.writer, "\r")
	}
}

// SetMessage replaces the text shown next to the frame.
func (s *Spinner) SetMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
}

func (s *Spinner) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.delay)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			message := s.message
			s.mu.Unlock()

			fmt.Fprintf(s.writer, "\r%s %s", frames[i%len(frames)], message)
		}
	}
}
