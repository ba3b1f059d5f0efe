package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"sync"
	"time"

	"flashcat.cloud/procpaw/config"
	"flashcat.cloud/procpaw/logger"
	"flashcat.cloud/procpaw/pkg/safe"
	"flashcat.cloud/procpaw/types"
)

var (
	// ErrSessionActive is returned when Start is called while a session is
	// not idle. The session name is a fixed singleton, so a second trace is
	// rejected outright instead of superseding or queuing.
	ErrSessionActive = errors.New("trace session already active")

	// ErrNoCredential is returned when the credential prompt was cancelled.
	ErrNoCredential = errors.New("credential prompt cancelled")
)

// State of the trace session lifecycle.
type State int

const (
	StateIdle State = iota
	StateStarting
	StateAttached
	StateTerminating
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStarting:
		return "starting"
	case StateAttached:
		return "attached"
	case StateTerminating:
		return "terminating"
	}
	return "unknown"
}

// traceCommand is swapped out in tests.
var traceCommand = func(sudoBin, tracerBin string, pid types.PID) *exec.Cmd {
	return exec.Command(sudoBin, "-S", "-p", "", tracerBin, "-p", strconv.Itoa(int(pid)))
}

// Session runs one external tracer attached to a target process through a
// privilege-escalation helper. Lifecycle: idle → starting → attached →
// terminating → idle. At most one session runs at a time; the output
// buffer and session name are singletons.
type Session struct {
	name     string
	tracer   string
	sudo     string
	duration time.Duration

	buf *safe.QueueLimited[string]

	mu    sync.Mutex
	state State
	cmd   *exec.Cmd
	timer *time.Timer
	done  chan struct{}
}

func NewSession(c config.TraceConfig) *Session {
	return &Session{
		name:     c.SessionName,
		tracer:   c.TracerBin,
		sudo:     c.SudoBin,
		duration: time.Duration(c.Duration),
		buf:      safe.NewQueueLimited[string](c.BufferLines),
		state:    StateIdle,
	}
}

func (s *Session) Name() string {
	return s.name
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Done returns a channel closed when the current run finishes. Only valid
// after a successful Start.
func (s *Session) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

// Start attaches the tracer to pid, feeding password to the escalation
// helper on stdin. Output lines stream into the session buffer; the run is
// force-terminated after the configured duration unless stopped earlier.
func (s *Session) Start(pid types.PID, password string) error {
	if password == "" {
		return ErrNoCredential
	}

	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()
		return ErrSessionActive
	}
	s.state = StateStarting
	s.mu.Unlock()

	cmd := traceCommand(s.sudo, s.tracer, pid)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		s.setState(StateIdle)
		return fmt.Errorf("failed to open tracer stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		s.setState(StateIdle)
		return fmt.Errorf("failed to open tracer stdout: %w", err)
	}
	// strace writes its trace to stderr
	stderr, err := cmd.StderrPipe()
	if err != nil {
		s.setState(StateIdle)
		return fmt.Errorf("failed to open tracer stderr: %w", err)
	}

	s.buf.RemoveAll()

	if err := cmd.Start(); err != nil {
		s.setState(StateIdle)
		return fmt.Errorf("failed to start tracer: %w", err)
	}

	io.WriteString(stdin, password+"\n")
	stdin.Close()

	done := make(chan struct{})

	s.mu.Lock()
	s.cmd = cmd
	s.done = done
	s.state = StateAttached
	s.mu.Unlock()

	var pumps sync.WaitGroup
	pumps.Add(2)
	go s.pump(stdout, &pumps)
	go s.pump(stderr, &pumps)

	s.mu.Lock()
	s.timer = time.AfterFunc(s.duration, func() {
		if err := s.Stop(); err != nil {
			logger.Logger.Debugw("trace timeout stop", "session", s.name, "error", err)
		}
	})
	s.mu.Unlock()

	go func() {
		pumps.Wait()
		cmd.Wait()

		s.mu.Lock()
		if s.timer != nil {
			s.timer.Stop()
			s.timer = nil
		}
		s.cmd = nil
		s.state = StateIdle
		s.mu.Unlock()

		close(done)
	}()

	return nil
}

// Stop force-terminates the running tracer. Serves both the duration
// timeout and a manual end of the session.
func (s *Session) Stop() error {
	s.mu.Lock()
	if s.state != StateAttached {
		s.mu.Unlock()
		return nil
	}
	s.state = StateTerminating
	cmd := s.cmd
	s.mu.Unlock()

	if cmd != nil && cmd.Process != nil {
		return cmd.Process.Kill()
	}
	return nil
}

// Lines drains the buffered tracer output in arrival order.
func (s *Session) Lines() []string {
	return s.buf.PopBackAll()
}

func (s *Session) pump(r io.Reader, wg *sync.WaitGroup) {
	defer wg.Done()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		s.buf.PushFront(scanner.Text())
	}
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}
