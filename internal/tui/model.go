// Package tui is the full-screen task list.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todo/internal/config"
	"todo/internal/events"
	"todo/internal/service"
	"todo/internal/task"
	"todo/internal/undo"
)

type mode int

const (
	modeList mode = iota
	modeAdd
)

// Options configures the TUI.
type Options struct {
	Service  service.Service
	Settings config.Settings

	// Bus, when set, keeps the list in step with changes made elsewhere.
	Bus *events.Bus

	// Reloads delivers config.yaml changes.
	Reloads <-chan config.ReloadEvent

	Logger *slog.Logger
}

type eventMsg struct{ event events.Event }

type reloadMsg struct{ reload config.ReloadEvent }

// undoTimeoutMsg fires when the snackbar for deletion seq has been shown for
// the undo timeout.
type undoTimeoutMsg struct{ seq uint64 }

// Model is the bubbletea model for the task list screen.
type Model struct {
	ctx      context.Context
	svc      service.Service
	settings config.Settings
	styles   styles
	logger   *slog.Logger

	tasks  []task.Task
	cursor int
	mode   mode
	input  textinput.Model

	snack     *service.Undo
	status    string
	statusErr bool

	sub     *events.Subscription
	reloads <-chan config.ReloadEvent
}

// New builds the model and loads the current view.
func New(ctx context.Context, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Task name"
	ti.CharLimit = 256
	ti.Width = 40

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m := Model{
		ctx:      ctx,
		svc:      opts.Service,
		settings: opts.Settings,
		styles:   stylesFor(opts.Settings.Theme),
		logger:   logger,
		input:    ti,
		reloads:  opts.Reloads,
	}
	if opts.Bus != nil {
		m.sub = opts.Bus.Subscribe("")
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.sub), waitForReload(m.reloads))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.mode == modeAdd {
			return m.updateAddMode(msg)
		}
		return m.updateListMode(msg.String())
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-10, 10)
	case undoTimeoutMsg:
		return m.expire(msg.seq), nil
	case eventMsg:
		m = m.handleEvent(msg.event)
		return m, waitForEvent(m.sub)
	case reloadMsg:
		m = m.applyReload(msg.reload)
		return m, waitForReload(m.reloads)
	}
	return m, nil
}

func (m Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.input.Reset()
		m.input.Blur()
		m.setStatus("")
		return m, nil
	case "enter":
		t, err := m.svc.AddTask(m.ctx, m.input.Value())
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.input.Reset()
		m.input.Blur()
		m.mode = modeList
		m.refresh()
		m.selectID(t.ID)
		m.setStatus("Added: " + t.Name)
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return m, tea.Quit
	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "a":
		m.mode = modeAdd
		m.setStatus("")
		return m, m.input.Focus()
	case "x", " ":
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		if _, err := m.svc.ToggleComplete(m.ctx, t.ID); err != nil {
			m.setError(err)
			return m, nil
		}
		m.refresh()
		m.selectID(t.ID)
	case "s":
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		if _, err := m.svc.ToggleStar(m.ctx, t.ID); err != nil {
			m.setError(err)
			return m, nil
		}
		m.refresh()
		m.selectID(t.ID)
	case "d":
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		u, err := m.svc.DeleteTask(m.ctx, t.ID)
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.refresh()
		m.setStatus("")
		return m, m.offer(u)
	case "u":
		restored, err := m.svc.ConfirmUndo(m.ctx)
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.snack = nil
		m.refresh()
		m.selectID(restored.ID)
		m.setStatus("Restored: " + restored.Name)
	case "esc":
		if m.snack == nil {
			return m, nil
		}
		if _, _, err := m.svc.DismissUndo(m.ctx); err != nil {
			m.setError(err)
			return m, nil
		}
		m.snack = nil
	case "t":
		m.settings.Theme = nextTheme(m.settings.Theme)
		m.styles = stylesFor(m.settings.Theme)
	}
	return m, nil
}

// offer shows the snackbar for u and schedules its expiry.
func (m *Model) offer(u service.Undo) tea.Cmd {
	m.snack = &u
	seq := u.Seq
	return tea.Tick(m.settings.UndoTimeout, func(time.Time) tea.Msg {
		return undoTimeoutMsg{seq: seq}
	})
}

func (m Model) expire(seq uint64) Model {
	if _, _, err := m.svc.ExpireUndo(m.ctx, seq); err != nil {
		m.logger.Warn("expire undo", "seq", seq, "error", err)
	}
	if m.snack != nil && m.snack.Seq == seq {
		m.snack = nil
	}
	return m
}

func (m Model) handleEvent(ev events.Event) Model {
	switch p := ev.Payload.(type) {
	case events.TasksChanged:
		var id int
		t, hasSel := m.selected()
		if hasSel {
			id = t.ID
		}
		m.refresh()
		if hasSel {
			m.selectID(id)
		}
	case events.UndoClosed:
		if m.snack != nil && m.snack.Seq == p.Seq {
			m.snack = nil
		}
	case events.UndoOffered:
		if m.snack != nil && m.snack.Seq >= p.Seq {
			return m
		}
		u, ok, err := m.svc.PendingUndo(m.ctx)
		if err != nil || !ok || u.Seq != p.Seq {
			return m
		}
		// The timer for an offer made elsewhere is not ours to start;
		// the snackbar closes when the matching undo.closed arrives.
		m.snack = &u
	}
	return m
}

func (m Model) applyReload(ev config.ReloadEvent) Model {
	if ev.Err != nil {
		m.setError(fmt.Errorf("config: %w", ev.Err))
		return m
	}
	m.settings = ev.Settings
	m.styles = stylesFor(m.settings.Theme)
	m.setStatus("Settings reloaded")
	return m
}

func (m *Model) refresh() {
	view, err := m.svc.SortedView(m.ctx)
	if err != nil {
		m.setError(err)
		return
	}
	m.tasks = view
	m.cursor = clampCursor(m.cursor, len(m.tasks))
}

func (m *Model) selectID(id int) {
	for i, t := range m.tasks {
		if t.ID == id {
			m.cursor = i
			return
		}
	}
}

func (m Model) selected() (task.Task, bool) {
	if len(m.tasks) == 0 {
		return task.Task{}, false
	}
	return m.tasks[m.cursor], true
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.logger.Debug("tui action failed", "error", err)
	msg := err.Error()
	if errors.Is(err, undo.ErrNothingToUndo) {
		msg = "Nothing to undo"
	}
	m.status = msg
	m.statusErr = true
}

func clampCursor(cursor, length int) int {
	if length == 0 || cursor < 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	return cursor
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Tasks"))
	b.WriteString("\n")

	if len(m.tasks) == 0 {
		b.WriteString(m.styles.status.Render("No tasks. Press a to add one."))
		b.WriteString("\n")
	}
	for i, t := range m.tasks {
		cursor := "  "
		if i == m.cursor && m.mode == modeList {
			cursor = m.styles.cursor.Render("> ")
		}
		b.WriteString(cursor)
		b.WriteString(m.renderTask(t))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.mode == modeAdd {
		b.WriteString("New task: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.snack != nil {
		b.WriteString(m.styles.snackbar.Render(fmt.Sprintf("Task deleted: %s  [u] Undo", m.snack.Name)))
		b.WriteString("\n")
	}
	if m.status != "" {
		style := m.styles.status
		if m.statusErr {
			style = m.styles.errStatus
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	if m.mode == modeAdd {
		b.WriteString(m.styles.help.Render("enter save • esc cancel"))
	} else {
		b.WriteString(m.styles.help.Render("a add • x done • s star • d delete • u undo • t theme • q quit"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderTask(t task.Task) string {
	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}
	star := "  "
	if t.Starred {
		star = m.styles.starred.Render("★ ")
	}

	style := m.styles.item
	switch {
	case t.Completed:
		style = m.styles.completed
	case t.Starred:
		style = m.styles.starred
	}
	return check + " " + star + style.Render(t.Name)
}

func waitForEvent(sub *events.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-sub.Ch()
		if !ok {
			return nil
		}
		return eventMsg{event: ev}
	}
}

func waitForReload(ch <-chan config.ReloadEvent) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return reloadMsg{reload: ev}
	}
}
