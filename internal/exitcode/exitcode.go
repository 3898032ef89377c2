// Package exitcode defines exit codes for the CLI and shell commands.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown task, blank name,
	// nothing to undo).
	UserError = 1

	// ConfigError indicates an unreadable or invalid config.yaml.
	ConfigError = 2

	// InternalError indicates a failure outside the user's control, such as
	// a terminal that cannot be opened.
	InternalError = 3
)
