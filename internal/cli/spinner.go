package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var spinnerFrames = [...]string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerTick = 80 * time.Millisecond

// Spinner animates a status line while a search runs. The search progress
// callback rewrites its message, so the line shows the node count live.
type Spinner struct {
	ctx     context.Context
	w       io.Writer
	stop    chan struct{}
	stopped chan struct{}
	once    sync.Once

	mu    sync.Mutex
	msg   string
	width int // widest line drawn so far
}

// newSpinner returns a spinner that also stops, clearing its line, when ctx
// is done.
func newSpinner(ctx context.Context, msg string) *Spinner {
	return &Spinner{
		ctx:     ctx,
		w:       uiOut,
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
		msg:     msg,
	}
}

// SetMessage replaces the text next to the spinner.
func (s *Spinner) SetMessage(msg string) {
	s.mu.Lock()
	s.msg = msg
	s.mu.Unlock()
}

// Start runs the animation until Stop or until the context is done.
func (s *Spinner) Start() { go s.run() }

func (s *Spinner) run() {
	defer close(s.stopped)
	tick := time.NewTicker(spinnerTick)
	defer tick.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-s.stop:
			return
		case <-s.ctx.Done():
			s.clear()
			return
		case <-tick.C:
			s.draw(spinnerFrames[frame%len(spinnerFrames)])
		}
	}
}

func (s *Spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	line := styleNumber.Render(frame) + " " + styleMuted.Render(s.msg)
	s.width = max(s.width, lipgloss.Width(line))
	fmt.Fprint(s.w, "\r"+line)
}

func (s *Spinner) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprint(s.w, "\r"+strings.Repeat(" ", max(s.width, lipgloss.Width(s.msg)+2))+"\r")
}

// Stop ends the animation and blanks the line. Calling it again is a no-op
// apart from another blank.
func (s *Spinner) Stop() {
	s.once.Do(func() { close(s.stop) })
	<-s.stopped
	s.clear()
}
