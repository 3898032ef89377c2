package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the task list until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	m := New(ctx, opts)
	if opts.Bus != nil {
		defer opts.Bus.Unsubscribe(m.sub)
	}
	p := tea.NewProgram(m, tea.WithAltScreen())

	done := make(chan error, 1)
	go func() {
		_, err := p.Run()
		done <- err
	}()

	select {
	case <-ctx.Done():
		p.Quit()
		<-done
		return ctx.Err()
	case err := <-done:
		return err
	}
}
