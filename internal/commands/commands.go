package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrEmpty is returned by Execute for a blank line.
var ErrEmpty = errors.New("empty command")

// Command is a console command with its own flags and a Run function.
// Run receives the positional arguments left after flag parsing.
type Command struct {
	Name    string
	Usage   string // e.g. "mode <1-4>"
	Summary string
	FlagSet *flag.FlagSet
	Run     func(args []string) error
}

// Registry holds commands by name. Add commands with Register; run a console line with Execute.
// Command output goes to the out function given to NewRegistry (the console log in the viewer).
type Registry struct {
	cmds map[string]*Command
	out  func(line string)
}

// NewRegistry returns a registry holding only the built-in help command. out receives command output; nil discards it.
func NewRegistry(out func(line string)) *Registry {
	if out == nil {
		out = func(string) {}
	}
	r := &Registry{cmds: make(map[string]*Command), out: out}
	r.Register("help", "help", "list commands", nil, func([]string) error {
		for _, line := range strings.Split(r.Help(), "\n") {
			r.out(line)
		}
		return nil
	})
	return r
}

// Printf writes one line of command output.
func (r *Registry) Printf(format string, args ...any) {
	r.out(fmt.Sprintf(format, args...))
}

// Register adds or replaces a command. fs may be nil for commands without flags; it is created with ContinueOnError
// and its output discarded so parse failures come back as errors instead of printing.
func (r *Registry) Register(name, usage, summary string, fs *flag.FlagSet, run func(args []string) error) {
	if fs == nil {
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
	}
	fs.SetOutput(io.Discard)
	r.cmds[name] = &Command{Name: name, Usage: usage, Summary: summary, FlagSet: fs, Run: run}
}

// Parse splits a console line into fields. ok is false for a blank line.
func Parse(line string) (args []string, ok bool) {
	args = strings.Fields(line)
	return args, len(args) > 0
}

// Execute runs the command in args[0] with args[1:] as flag/positional arguments.
// Returns an error for an unknown command, a parse error, or from Run.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return ErrEmpty
	}
	cmd, ok := r.cmds[args[0]]
	if !ok {
		return fmt.Errorf("unknown command %q (try help)", args[0])
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return cmd.Run(cmd.FlagSet.Args())
}

// ExecuteLine parses line and executes it.
func (r *Registry) ExecuteLine(line string) error {
	args, ok := Parse(line)
	if !ok {
		return ErrEmpty
	}
	return r.Execute(args)
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Help returns one "usage - summary" line per command, sorted by name.
func (r *Registry) Help() string {
	var b strings.Builder
	for i, name := range r.Names() {
		if i > 0 {
			b.WriteByte('\n')
		}
		c := r.cmds[name]
		fmt.Fprintf(&b, "%s - %s", c.Usage, c.Summary)
	}
	return b.String()
}

// OnOff parses "on" or "off" (also true/false, 1/0) from the single argument of a toggle command.
func OnOff(args []string) (bool, error) {
	if len(args) != 1 {
		return false, errors.New("want on or off")
	}
	switch strings.ToLower(args[0]) {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("want on or off, got %q", args[0])
}
