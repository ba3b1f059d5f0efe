// Package tui is the interactive front-end: a phased Bubble Tea session
// walking pattern entry, candidate selection and action dispatch.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"flashcat.cloud/procpaw/actions"
	"flashcat.cloud/procpaw/session"
	"flashcat.cloud/procpaw/trace"
)

// Run blocks until the interactive session ends.
func Run(sess *session.Session, registry *actions.Registry, tracer *trace.Session) error {
	p := tea.NewProgram(New(sess, registry, tracer), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
