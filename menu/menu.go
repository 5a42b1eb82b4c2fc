// Package menu is a small numbered-menu router for an interactive terminal.
// Groups nest like route groups; each leaf is a HandlerFunc that talks to
// the user through a Context.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

// ErrInputClosed is returned by prompts once standard input is exhausted.
var ErrInputClosed = errors.New("input closed")

type HandlerFunc func(c *Context)

type entry struct {
	label   string
	handler HandlerFunc
	group   *Group
}

type Group struct {
	Name    string
	engine  *Engine
	entries []entry
}

// Handle adds a leaf action to the group.
func (g *Group) Handle(label string, h HandlerFunc) {
	g.entries = append(g.entries, entry{label: label, handler: h})
}

// Group adds a submenu. Entering it reports name as the current screen.
func (g *Group) Group(name string) *Group {
	sub := &Group{Name: name, engine: g.engine}
	g.entries = append(g.entries, entry{label: name, group: sub})
	return sub
}

type Engine struct {
	root   *Group
	Title  string
	in     *bufio.Reader
	out    io.Writer
	logger *log.Logger
	screen []func(name string)
}

func New(title string, in io.Reader, out io.Writer, logger *log.Logger) *Engine {
	e := &Engine{
		Title:  title,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
	e.root = &Group{Name: "Main Menu", engine: e}
	return e
}

// Group adds a submenu to the main menu.
func (e *Engine) Group(name string) *Group {
	return e.root.Group(name)
}

// Handle adds a leaf action to the main menu.
func (e *Engine) Handle(label string, h HandlerFunc) {
	e.root.Handle(label, h)
}

// OnScreen registers a callback run whenever the active menu changes.
func (e *Engine) OnScreen(fn func(name string)) {
	e.screen = append(e.screen, fn)
}

// Run shows the main menu until the user picks Exit or input runs out.
func (e *Engine) Run() error {
	e.enter(e.root.Name)
	err := e.loop(e.root, true)
	if errors.Is(err, ErrInputClosed) {
		return nil
	}
	return err
}

func (e *Engine) enter(name string) {
	for _, fn := range e.screen {
		fn(name)
	}
}

func (e *Engine) loop(g *Group, root bool) error {
	c := &Context{engine: e}
	for {
		e.display(g, root)

		choice, err := c.PromptInt("\nEnter your choice: ")
		if errors.Is(err, ErrInputClosed) {
			return err
		}
		if err != nil || choice < 1 || choice > len(g.entries)+1 {
			c.Println("Invalid choice! Please try again.")
			continue
		}

		if choice == len(g.entries)+1 {
			return nil
		}

		en := g.entries[choice-1]
		if en.group != nil {
			e.enter(en.group.Name)
			if err := e.loop(en.group, false); err != nil {
				return err
			}
			e.enter(g.Name)
			continue
		}

		if err := e.dispatch(en, c); err != nil {
			return err
		}
	}
}

func (e *Engine) dispatch(en entry, c *Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e.logger != nil {
				e.logger.Printf("panic in %q: %v", en.label, r)
			}
			c.Println("Unexpected error, action aborted.")
			err = nil
		}
	}()
	c.closed = false
	en.handler(c)
	if c.closed {
		return ErrInputClosed
	}
	return nil
}

func (e *Engine) display(g *Group, root bool) {
	if root {
		banner := strings.Repeat("=", 50)
		fmt.Fprintf(e.out, "\n%s\n     %s\n%s\n", banner, e.Title, banner)
	} else {
		fmt.Fprintf(e.out, "\n--- %s ---\n", strings.ToUpper(g.Name))
	}

	for i, en := range g.entries {
		fmt.Fprintf(e.out, "%d. %s\n", i+1, en.label)
	}
	if root {
		fmt.Fprintf(e.out, "%d. Exit\n", len(g.entries)+1)
		fmt.Fprintln(e.out, strings.Repeat("=", 50))
	} else {
		fmt.Fprintf(e.out, "%d. Back to Main Menu\n", len(g.entries)+1)
	}
}

// Context is handed to every action. Prompts read one line each.
type Context struct {
	engine *Engine
	closed bool
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.engine.out, format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.engine.out, args...)
}

// Prompt prints label and returns the next input line without surrounding space.
func (c *Context) Prompt(label string) (string, error) {
	fmt.Fprint(c.engine.out, label)
	line, err := c.engine.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		c.closed = true
		return "", ErrInputClosed
	}
	return strings.TrimSpace(line), nil
}

func (c *Context) PromptInt(label string) (int, error) {
	s, err := c.Prompt(label)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(s)
}

func (c *Context) Print(args ...any) {
	fmt.Fprint(c.engine.out, args...)
}
