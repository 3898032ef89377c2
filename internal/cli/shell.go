package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

// Shell runs one command per input line against a single service, so tasks
// and the undo window live for the whole session.
type Shell struct {
	Dispatcher *Dispatcher
	Config     *config.Config
	Service    service.Service
	Logger     *slog.Logger

	// Prompt is written before each line when non-empty.
	Prompt string

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Run reads lines from in until EOF, quit or cancellation.
// The result is the exit code of the last failing line, or Success.
func (s *Shell) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) int {
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	code := exitcode.Success
	scanner := bufio.NewScanner(in)
	for {
		if s.Prompt != "" {
			fmt.Fprint(out, s.Prompt)
		}
		if !scanner.Scan() {
			break
		}
		if err := ctx.Err(); err != nil {
			return exitcode.InternalError
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if slices.Contains(commands.ReservedNames, fields[0]) {
			return code
		}

		if c := s.expireStale(ctx, out, errOut); c != exitcode.Success {
			code = c
		}

		logger.Debug("shell line", "command", fields[0], "args", len(fields)-1)
		if c := s.Dispatcher.Run(ctx, s.Config, s.Service, fields, out, errOut); c != exitcode.Success {
			code = c
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(errOut, "error: read input: %v\n", err)
		return exitcode.InternalError
	}
	return code
}

// expireStale closes the undo window once undo_timeout has passed since the
// deletion was offered.
func (s *Shell) expireStale(ctx context.Context, out, errOut io.Writer) int {
	u, ok, err := s.Service.PendingUndo(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.InternalError
	}
	if !ok {
		return exitcode.Success
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	if now().Sub(u.OfferedAt) < s.Config.Settings.UndoTimeout {
		return exitcode.Success
	}

	expired, ok, err := s.Service.ExpireUndo(ctx, u.Seq)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.InternalError
	}
	if ok && !s.Config.Quiet {
		output.FormatUndoExpired(out, expired.Name)
	}
	return exitcode.Success
}
