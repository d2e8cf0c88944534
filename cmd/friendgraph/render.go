// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/friendgraph/social"
)

// Palette.
var (
	colorTitle   = lipgloss.Color("#2CD7C7")
	colorSuccess = lipgloss.Color("#20B9B4")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#2C4A54")
)

// printer writes styled text to one stream. Styles come from a renderer bound
// to that stream, so color is dropped automatically when it is not a terminal.
type printer struct {
	w       io.Writer
	title   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
	muted   lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:       w,
		title:   r.NewStyle().Bold(true).Foreground(colorTitle),
		success: r.NewStyle().Foreground(colorSuccess),
		warning: r.NewStyle().Foreground(colorWarning),
		err:     r.NewStyle().Foreground(colorError),
		muted:   r.NewStyle().Foreground(colorMuted),
	}
}

func (p *printer) line(s string) {
	fmt.Fprintln(p.w, s)
}

func (p *printer) errorLine(s string) {
	fmt.Fprintln(p.w, p.err.Render(s))
}

// joinIDs renders ids separated by single spaces.
func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, " ")
}

// friends prints a friend list.
func (p *printer) friends(id int, friends []int) {
	p.line(p.title.Render(fmt.Sprintf("Person %d has %d friends!", id, len(friends))))
	p.line("List of friends: " + joinIDs(friends))
}

// connection prints the outcome of a shortest-path query, one friendship per line.
func (p *printer) connection(c social.Connection) {
	if !c.Found() {
		p.line(p.warning.Render(fmt.Sprintf("Cannot find a connection between %d and %d", c.From, c.To)))
		return
	}
	p.line(p.success.Render(fmt.Sprintf("There is a connection from %d to %d!", c.From, c.To)))
	for _, link := range c.Links() {
		p.line(fmt.Sprintf("%d is friends with %d", link.From, link.To))
	}
}

// reachable prints the accounts reachable from id.
func (p *printer) reachable(id int, ids []int) {
	p.line(p.title.Render(fmt.Sprintf("Person %d can reach %d people!", id, len(ids))))
	if len(ids) > 0 {
		p.line("Reachable: " + joinIDs(ids))
	}
}

// components prints every friend circle.
func (p *printer) components(comps [][]int) {
	p.line(p.title.Render(fmt.Sprintf("Found %d friend circles", len(comps))))
	for i, c := range comps {
		p.line(fmt.Sprintf("Circle %d (%d): %s", i+1, len(c), joinIDs(c)))
	}
}

// stats prints summary counts.
func (p *printer) stats(st social.Stats) {
	p.line(p.title.Render("Network summary"))
	rows := []struct {
		label string
		value int
	}{
		{"Accounts", st.Nodes},
		{"Declared friendships", st.DeclaredEdges},
		{"Distinct friendships", st.Edges},
		{"Friend circles", st.Components},
		{"Largest circle", st.LargestComponent},
		{"Accounts without friends", st.Isolated},
	}
	for _, r := range rows {
		p.line(fmt.Sprintf("  %-26s %s", r.label+":", p.muted.Render(strconv.Itoa(r.value))))
	}
}
