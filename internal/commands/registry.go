package commands

import (
	"fmt"
	"slices"
	"sync"
)

// ReservedNames are handled by the shell itself and cannot be registered.
var ReservedNames = []string{"quit", "exit"}

// Registry holds registered commands.
type Registry struct {
	mu   sync.RWMutex
	cmds map[string]Command // name and aliases map to command
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		cmds: make(map[string]Command),
	}
}

// Register adds a command to the registry.
// Returns an error if the name or any alias is already taken or reserved.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := append([]string{c.Name()}, c.Aliases()...)
	for i, name := range names {
		kind := "command"
		if i > 0 {
			kind = "command alias"
		}
		if slices.Contains(ReservedNames, name) {
			return fmt.Errorf("%s is reserved: %s", kind, name)
		}
		if _, exists := r.cmds[name]; exists {
			return fmt.Errorf("%s already registered: %s", kind, name)
		}
	}

	for _, name := range names {
		r.cmds[name] = c
	}
	return nil
}

// Find looks up a command by name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.cmds[name]
	return cmd, ok
}

// All returns all unique commands sorted by name.
// Aliases are not listed separately.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byName := make(map[string]Command)
	for _, cmd := range r.cmds {
		byName[cmd.Name()] = cmd
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	slices.Sort(names)

	result := make([]Command, 0, len(byName))
	for _, name := range names {
		result = append(result, byName[name])
	}
	return result
}

// DefaultRegistry holds every line command; each command file registers
// itself from init.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
