// Package console is a line-oriented terminal host for the roster. Each
// input line is one user interaction: the first word picks a handler and
// the rest of the line is passed to it untouched.
//
// Handlers are registered the same way routes are on a mux:
//
//	c.HandleFunc("submit", "submit", student.Submit(f))
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// HandlerFunc runs one command. args is the raw text after the command
// name, with the separating space removed.
type HandlerFunc func(out *Output, args string) error

type route struct {
	usage   string
	handler HandlerFunc
}

// Console reads commands from in and renders results to an Output.
type Console struct {
	in     io.Reader
	out    *Output
	prompt string
	routes map[string]route
	names  []string
	log    *slog.Logger
}

// New returns a console reading from in and writing to out in the given
// format ("text" or "json").
func New(in io.Reader, out io.Writer, format string) *Console {
	return &Console{
		in:     in,
		out:    NewOutput(out, format),
		routes: make(map[string]route),
		log:    slog.Default(),
	}
}

// WithPrompt sets the prompt printed before each command and returns c.
func (c *Console) WithPrompt(prompt string) *Console {
	c.prompt = prompt
	return c
}

// WithLogger sets the logger used by the console and its Output and
// returns c.
func (c *Console) WithLogger(log *slog.Logger) *Console {
	c.log = log
	c.out.WithLogger(log)
	return c
}

// HandleFunc registers h under name. usage is shown by "help".
func (c *Console) HandleFunc(name, usage string, h HandlerFunc) {
	if _, ok := c.routes[name]; !ok {
		c.names = append(c.names, name)
	}
	c.routes[name] = route{usage: usage, handler: h}
}

// Run processes commands until the input ends, "quit" or "exit" is read,
// or ctx is cancelled. Handler errors are reported to the user and do not
// stop the loop.
func (c *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		c.showPrompt()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("console.Run: read: %w", err)
					}
				default:
				}
				return nil
			}
			if stop := c.dispatch(line); stop {
				return nil
			}
		}
	}
}

func (c *Console) showPrompt() {
	if c.prompt != "" && c.out.format == FormatText {
		fmt.Fprint(c.out.w, c.prompt)
	}
}

// dispatch runs one line and reports whether the console should stop.
func (c *Console) dispatch(line string) bool {
	line = strings.TrimLeft(line, " \t")
	if strings.TrimSpace(line) == "" {
		return false
	}

	name, args, _ := strings.Cut(line, " ")
	name = strings.ToLower(strings.TrimSpace(name))

	switch name {
	case "quit", "exit":
		return true
	case "help":
		c.help()
		return false
	}

	r, ok := c.routes[name]
	if !ok {
		c.out.Error(fmt.Errorf("comando desconhecido %q; use \"help\"", name))
		return false
	}

	c.log.Debug("command", slog.String("name", name))
	if err := r.handler(c.out, args); err != nil {
		c.log.Warn("command failed",
			slog.String("name", name),
			slog.String("error", err.Error()))
		c.out.Error(err)
	}
	return false
}

func (c *Console) help() {
	usages := make([]string, 0, len(c.names)+2)
	for _, name := range c.names {
		usages = append(usages, c.routes[name].usage)
	}
	usages = append(usages, "help", "quit")
	c.out.Help(usages)
}
