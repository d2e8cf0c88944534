// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/friendgraph/social"
)

// Menu choices.
const (
	choiceFriends = iota + 1
	choiceConnection
	choiceReach
	choiceCircles
	choiceExit
)

var menuItems = []struct {
	label  string
	choice int
}{
	{"Get friend list", choiceFriends},
	{"Get connection", choiceConnection},
	{"Get reachable accounts", choiceReach},
	{"List friend circles", choiceCircles},
	{"Exit", choiceExit},
}

// errNotNumber is returned by a prompter when the answer is not an integer.
var errNotNumber = errors.New("not a number")

// prompter asks the user for input. io.EOF or huh.ErrUserAborted end the session.
type prompter interface {
	Path() (string, error)
	Choice() (int, error)
	ID(title string) (int, error)
}

func newMenuCmd(a *app) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu: load a graph, then query it until Exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var p prompter
			if !plain && isTerminal(a.stdin) {
				p = huhPrompter{}
			} else {
				p = newLinePrompter(a.stdin, a.stdout)
			}
			return a.runMenu(p)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "use plain line prompts even on a terminal")
	return cmd
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// endOfSession reports whether err means the user left the menu.
func endOfSession(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, huh.ErrUserAborted)
}

// runMenu loads a graph (retrying on failure) and dispatches menu choices
// until the user exits.
func (a *app) runMenu(p prompter) error {
	var net *social.Network
	tryLoad := func(path string) {
		n, err := a.load(path)
		if err != nil {
			a.errorf(describeError(err))
			a.out.line("Please try again.")
			return
		}
		net = n
		a.out.line(a.out.success.Render("Graph loaded!"))
	}

	if a.cfg.Input.Path != "" {
		tryLoad(a.cfg.Input.Path)
	}

	for {
		if net == nil {
			path, err := p.Path()
			if endOfSession(err) {
				return nil
			}
			if err != nil {
				return err
			}
			tryLoad(path)
			continue
		}

		choice, err := p.Choice()
		switch {
		case endOfSession(err):
			return nil
		case errors.Is(err, errNotNumber):
			a.errorf("Invalid choice! Try again")
			continue
		case err != nil:
			return err
		}

		if choice == choiceExit {
			a.out.line("\nGoodbye!")
			return nil
		}
		if err := a.menuQuery(p, net, choice); err != nil {
			if endOfSession(err) {
				return nil
			}
			if errors.Is(err, errNotNumber) {
				a.errorf("Invalid input! Please enter a number.")
				continue
			}
			a.errorf(describeError(err))
		}
	}
}

// menuQuery runs one menu choice against net and prints the result.
func (a *app) menuQuery(p prompter, net *social.Network, choice int) error {
	switch choice {
	case choiceFriends:
		id, err := p.ID("Enter ID of person")
		if err != nil {
			return err
		}
		friends, err := net.Friends(id)
		if err != nil {
			return err
		}
		a.out.line("")
		a.out.friends(id, friends)

	case choiceConnection:
		from, err := p.ID("Enter ID of first person")
		if err != nil {
			return err
		}
		to, err := p.ID("Enter ID of second person")
		if err != nil {
			return err
		}
		conn, err := net.ShortestPath(from, to)
		if err != nil {
			return err
		}
		a.out.connection(conn)

	case choiceReach:
		id, err := p.ID("Enter ID of person")
		if err != nil {
			return err
		}
		ids, err := net.ReachableFrom(id)
		if err != nil {
			return err
		}
		a.out.reachable(id, ids)

	case choiceCircles:
		a.out.components(net.Components())

	default:
		a.errorf("Invalid choice! Try again")
	}
	return nil
}

// linePrompter reads one answer per line; used when stdin is not a terminal.
type linePrompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

func newLinePrompter(in io.Reader, out io.Writer) *linePrompter {
	return &linePrompter{sc: bufio.NewScanner(in), out: out}
}

func (l *linePrompter) readLine(prompt string) (string, error) {
	fmt.Fprint(l.out, prompt)
	if !l.sc.Scan() {
		if err := l.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(l.sc.Text()), nil
}

func (l *linePrompter) readInt(prompt string) (int, error) {
	s, err := l.readLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errNotNumber
	}
	return n, nil
}

func (l *linePrompter) Path() (string, error) {
	return l.readLine("Input file path: ")
}

func (l *linePrompter) Choice() (int, error) {
	fmt.Fprintln(l.out, "\nMAIN MENU")
	for _, it := range menuItems {
		fmt.Fprintf(l.out, "[%d]%s\n", it.choice, it.label)
	}
	return l.readInt("\nEnter your choice: ")
}

func (l *linePrompter) ID(title string) (int, error) {
	return l.readInt(title + ": ")
}

// huhPrompter drives the menu with huh forms on a terminal.
type huhPrompter struct{}

func (huhPrompter) Path() (string, error) {
	var path string
	err := huh.NewInput().
		Title("Input file path").
		Value(&path).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("a file path is required")
			}
			return nil
		}).
		Run()
	return strings.TrimSpace(path), err
}

func (huhPrompter) Choice() (int, error) {
	opts := make([]huh.Option[int], 0, len(menuItems))
	for _, it := range menuItems {
		opts = append(opts, huh.NewOption(it.label, it.choice))
	}
	var choice int
	err := huh.NewSelect[int]().
		Title("MAIN MENU").
		Options(opts...).
		Value(&choice).
		Run()
	return choice, err
}

func (huhPrompter) ID(title string) (int, error) {
	var raw string
	err := huh.NewInput().
		Title(title).
		Value(&raw).
		Validate(func(s string) error {
			_, err := parseID(s)
			return err
		}).
		Run()
	if err != nil {
		return 0, err
	}
	return parseID(raw)
}
