// Package output provides formatters for line-mode output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/task"
)

// FormatTask formats one task line.
// Format: "{N:>4}  [{x| }] {*| } {NAME}  #{ID}\n"
// N is the 1-based position in the sorted view; ID is the stable task id.
func FormatTask(w io.Writer, num int, t task.Task) {
	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}
	star := " "
	if t.Starred {
		star = "*"
	}
	fmt.Fprintf(w, "%4d  %s %s %s  #%d\n", num, check, star, normalizeTitle(t.Name), t.ID)
}

// FormatView formats the whole sorted view, or "no tasks" when empty.
func FormatView(w io.Writer, tasks []task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "no tasks")
		return
	}
	for i, t := range tasks {
		FormatTask(w, i+1, t)
	}
}

// FormatUndoOffer formats the notification shown after a delete.
func FormatUndoOffer(w io.Writer, name string) {
	fmt.Fprintf(w, "deleted: %s (undo available)\n", normalizeTitle(name))
}

// FormatUndoExpired formats the notice that a delete became permanent.
func FormatUndoExpired(w io.Writer, name string) {
	fmt.Fprintf(w, "undo expired: %s\n", normalizeTitle(name))
}

// FormatRestored formats the notice that a task was restored.
func FormatRestored(w io.Writer, name string) {
	fmt.Fprintf(w, "restored: %s\n", normalizeTitle(name))
}

// normalizeTitle normalizes a task name for display.
// - Empty or whitespace-only names become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
