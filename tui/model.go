package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"flashcat.cloud/procpaw/actions"
	"flashcat.cloud/procpaw/logger"
	"flashcat.cloud/procpaw/pkg/procutil"
	"flashcat.cloud/procpaw/session"
	"flashcat.cloud/procpaw/trace"
	"flashcat.cloud/procpaw/types"
)

type phase int

const (
	phasePattern phase = iota
	phaseCandidates
	phaseActions
	phasePassword
	phaseOutput
)

const traceTickInterval = 200 * time.Millisecond

// --- messages ---

type candidatesMsg struct {
	candidates []types.Candidate
	err        error
}

type actionDoneMsg struct {
	label string
	err   error
}

type procDirMsg struct {
	content string
	err     error
}

type traceStartedMsg struct {
	err error
}

type traceTickMsg time.Time

type traceDoneMsg struct{}

// Model is the root Bubble Tea model: pattern input → candidate list →
// action menu → (credential prompt | output viewport).
type Model struct {
	phase  phase
	width  int
	height int

	pattern    textinput.Model
	password   textinput.Model
	candidates list.Model
	actionMenu list.Model
	output     viewport.Model

	sess     *session.Session
	registry *actions.Registry
	tracer   *trace.Session

	lastPattern string
	selected    types.PID
	status      string
	statusIsErr bool
	outputTitle string
	outputLines []string
	traceActive bool
}

func New(sess *session.Session, registry *actions.Registry, tracer *trace.Session) Model {
	pattern := textinput.New()
	pattern.Placeholder = "process name or command-line pattern"
	pattern.Prompt = "> "
	pattern.Width = 48
	pattern.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "password: "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.Width = 32

	return Model{
		phase:    phasePattern,
		pattern:  pattern,
		password: password,
		sess:     sess,
		registry: registry,
		tracer:   tracer,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// --- commands ---

func (m Model) searchCmd(pattern string) tea.Cmd {
	return func() tea.Msg {
		candidates, err := m.sess.List(pattern)
		return candidatesMsg{candidates: candidates, err: err}
	}
}

func (m Model) runActionCmd(entry actions.Entry, pid types.PID) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{label: entry.Label, err: entry.Run(pid)}
	}
}

func (m Model) procDirCmd(pid types.PID) tea.Cmd {
	return func() tea.Msg {
		content, err := actions.ProcDir(pid)
		return procDirMsg{content: content, err: err}
	}
}

func (m Model) traceStartCmd(pid types.PID, password string) tea.Cmd {
	return func() tea.Msg {
		return traceStartedMsg{err: m.tracer.Start(pid, password)}
	}
}

func traceTickCmd() tea.Cmd {
	return tea.Tick(traceTickInterval, func(t time.Time) tea.Msg {
		return traceTickMsg(t)
	})
}

func (m Model) traceWaitCmd() tea.Cmd {
	done := m.tracer.Done()
	return func() tea.Msg {
		<-done
		return traceDoneMsg{}
	}
}

// --- update ---

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.candidates.Items() != nil {
			m.candidates.SetSize(m.width-4, m.height-6)
		}
		if m.actionMenu.Items() != nil {
			m.actionMenu.SetSize(m.width-4, m.height-6)
		}
		m.output.Width = m.width - 4
		m.output.Height = m.height - 6
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.tracer.Stop()
			return m, tea.Quit
		}

	case candidatesMsg:
		if msg.err != nil {
			m.setError(msg.err.Error())
			m.phase = phasePattern
			return m, nil
		}
		if len(msg.candidates) == 0 {
			m.setError(fmt.Sprintf("no processes match %q", m.lastPattern))
			m.phase = phasePattern
			return m, nil
		}
		m.candidates = m.buildCandidateList(msg.candidates)
		m.status = fmt.Sprintf("%d matching processes", len(msg.candidates))
		m.statusIsErr = false
		m.phase = phaseCandidates
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			if procutil.IsProcessGone(msg.err) {
				m.setError(fmt.Sprintf("pid %d already exited", m.selected))
			} else {
				m.setError(msg.err.Error())
			}
			logger.Logger.Errorw("action failed", "action", msg.label, "pid", m.selected, "error", msg.err)
		} else {
			m.status = fmt.Sprintf("%s: done (pid %d)", msg.label, m.selected)
			m.statusIsErr = false
		}
		m.phase = phaseCandidates
		return m, nil

	case procDirMsg:
		if msg.err != nil {
			m.setError(msg.err.Error())
			m.phase = phaseCandidates
			return m, nil
		}
		m.outputTitle = fmt.Sprintf("proc directory - pid %d", m.selected)
		m.outputLines = nil
		m.output = viewport.New(m.width-4, m.height-6)
		m.output.SetContent(msg.content)
		m.phase = phaseOutput
		return m, nil

	case traceStartedMsg:
		if msg.err != nil {
			m.setError(msg.err.Error())
			m.phase = phaseActions
			return m, nil
		}
		m.outputTitle = fmt.Sprintf("%s - pid %d", m.tracer.Name(), m.selected)
		m.outputLines = nil
		m.output = viewport.New(m.width-4, m.height-6)
		m.traceActive = true
		m.status = "tracing..."
		m.statusIsErr = false
		m.phase = phaseOutput
		return m, tea.Batch(traceTickCmd(), m.traceWaitCmd())

	case traceTickMsg:
		m.appendTraceLines()
		if m.traceActive {
			return m, traceTickCmd()
		}
		return m, nil

	case traceDoneMsg:
		m.traceActive = false
		m.appendTraceLines()
		m.status = "trace finished"
		m.statusIsErr = false
		return m, nil
	}

	switch m.phase {
	case phasePattern:
		return m.updatePattern(msg)
	case phaseCandidates:
		return m.updateCandidates(msg)
	case phaseActions:
		return m.updateActions(msg)
	case phasePassword:
		return m.updatePassword(msg)
	case phaseOutput:
		return m.updateOutput(msg)
	}

	return m, nil
}

func (m Model) updatePattern(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			pattern := strings.TrimSpace(m.pattern.Value())
			if pattern == "" {
				m.setError("pattern must not be empty")
				return m, nil
			}
			m.lastPattern = pattern
			m.status = "searching..."
			m.statusIsErr = false
			return m, m.searchCmd(pattern)
		}
	}

	var cmd tea.Cmd
	m.pattern, cmd = m.pattern.Update(msg)
	return m, cmd
}

func (m Model) updateCandidates(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.candidates.FilterState() != list.Filtering {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.phase = phasePattern
			m.pattern.Focus()
			return m, textinput.Blink
		case tea.KeyCtrlR:
			// fresh snapshot; PIDs may have come and gone
			m.status = "refreshing..."
			m.statusIsErr = false
			return m, m.searchCmd(m.lastPattern)
		case tea.KeyEnter:
			item, ok := m.candidates.SelectedItem().(candidateItem)
			if !ok {
				return m, nil
			}
			m.selected = item.candidate.PID
			m.actionMenu = m.buildActionMenu()
			m.phase = phaseActions
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.candidates, cmd = m.candidates.Update(msg)
	return m, cmd
}

func (m Model) updateActions(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.phase = phaseCandidates
			return m, nil
		case tea.KeyEnter:
			item, ok := m.actionMenu.SelectedItem().(actionItem)
			if !ok {
				return m, nil
			}
			return m.dispatch(item.entry)
		}
	}

	var cmd tea.Cmd
	m.actionMenu, cmd = m.actionMenu.Update(msg)
	return m, cmd
}

func (m Model) dispatch(entry actions.Entry) (tea.Model, tea.Cmd) {
	switch entry.Kind {
	case actions.KindProcDir:
		return m, m.procDirCmd(m.selected)
	case actions.KindTrace:
		m.password.SetValue("")
		m.password.Focus()
		m.phase = phasePassword
		return m, textinput.Blink
	default:
		return m, m.runActionCmd(entry, m.selected)
	}
}

func (m Model) updatePassword(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.setError("trace cancelled")
			m.phase = phaseActions
			return m, nil
		case tea.KeyEnter:
			password := m.password.Value()
			m.password.SetValue("")
			if password == "" {
				m.setError(trace.ErrNoCredential.Error())
				m.phase = phaseActions
				return m, nil
			}
			return m, m.traceStartCmd(m.selected, password)
		}
	}

	var cmd tea.Cmd
	m.password, cmd = m.password.Update(msg)
	return m, cmd
}

func (m Model) updateOutput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q":
			if m.traceActive {
				m.tracer.Stop()
			}
			m.phase = phaseCandidates
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.output, cmd = m.output.Update(msg)
	return m, cmd
}

// --- helpers ---

func (m *Model) setError(text string) {
	m.status = text
	m.statusIsErr = true
}

func (m *Model) appendTraceLines() {
	lines := m.tracer.Lines()
	if len(lines) == 0 {
		return
	}
	m.outputLines = append(m.outputLines, lines...)
	m.output.SetContent(strings.Join(m.outputLines, "\n"))
	m.output.GotoBottom()
}

func (m Model) buildCandidateList(candidates []types.Candidate) list.Model {
	l := list.New(candidateItems(candidates), list.NewDefaultDelegate(), m.width-4, m.height-6)
	l.Title = ""
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)
	return l
}

func (m Model) buildActionMenu() list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false

	l := list.New(actionItems(m.registry), delegate, m.width-4, m.height-6)
	l.Title = ""
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(true)
	return l
}

// --- view ---

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("procpaw"))
	b.WriteString("\n\n")

	switch m.phase {
	case phasePattern:
		b.WriteString(styleHeader.Render("Find processes"))
		b.WriteString("\n\n")
		b.WriteString(m.pattern.View())
		b.WriteString("\n\n")
		b.WriteString(styleHelp.Render("enter: search  esc: quit"))
	case phaseCandidates:
		b.WriteString(m.candidates.View())
		b.WriteString("\n")
		b.WriteString(styleHelp.Render("enter: actions  ctrl+r: refresh  esc: back"))
	case phaseActions:
		b.WriteString(styleHeader.Render(fmt.Sprintf("pid %d", m.selected)))
		b.WriteString("\n\n")
		b.WriteString(m.actionMenu.View())
		b.WriteString("\n")
		b.WriteString(styleHelp.Render("enter: run  esc: back"))
	case phasePassword:
		b.WriteString(styleHeader.Render(fmt.Sprintf("trace pid %d", m.selected)))
		b.WriteString("\n\n")
		b.WriteString(m.password.View())
		b.WriteString("\n\n")
		b.WriteString(styleHelp.Render("enter: start trace  esc: cancel"))
	case phaseOutput:
		b.WriteString(styleHeader.Render(m.outputTitle))
		b.WriteString("\n")
		b.WriteString(m.output.View())
		b.WriteString("\n")
		b.WriteString(styleHelp.Render("esc/q: close  ↑/↓: scroll"))
	}

	if m.status != "" {
		b.WriteString("\n\n")
		if m.statusIsErr {
			b.WriteString(styleError.Render(m.status))
		} else {
			b.WriteString(styleOk.Render(m.status))
		}
	}

	return b.String()
}
