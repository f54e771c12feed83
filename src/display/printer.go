package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/apimgr/employee-tracker/src/common/terminal"
)

// Dracula colors
var (
	comment = lipgloss.Color("#6272a4")
	cyan    = lipgloss.Color("#8be9fd")
	green   = lipgloss.Color("#50fa7b")
	orange  = lipgloss.Color("#ffb86c")
	purple  = lipgloss.Color("#bd93f9")
	red     = lipgloss.Color("#ff5555")
	yellow  = lipgloss.Color("#f1fa8c")
)

// Printer writes user-facing output
type Printer struct {
	out     io.Writer
	symbols terminal.Symbols

	success lipgloss.Style
	info    lipgloss.Style
	warn    lipgloss.Style
	err     lipgloss.Style
	title   lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
	border  lipgloss.Style
}

// NewPrinter creates a printer on out. With color false every style renders
// plain text.
func NewPrinter(out io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(out)
	if color {
		r.SetColorProfile(termenv.TrueColor)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		out:     out,
		symbols: terminal.GetSymbols(),
		success: r.NewStyle().Foreground(green),
		info:    r.NewStyle().Foreground(yellow),
		warn:    r.NewStyle().Foreground(orange),
		err:     r.NewStyle().Foreground(red),
		title:   r.NewStyle().Foreground(purple).Bold(true),
		header:  r.NewStyle().Foreground(cyan).Bold(true).Padding(0, 1),
		cell:    r.NewStyle().Padding(0, 1),
		border:  r.NewStyle().Foreground(comment),
	}
}

// Success prints a confirmation line
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.out, p.success.Render(p.symbols.Success+" "+msg))
}

// Info prints guidance such as empty-list notices
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.out, p.info.Render(msg))
}

// Warn prints a caution the user can act on
func (p *Printer) Warn(msg string) {
	fmt.Fprintln(p.out, p.warn.Render(p.symbols.Warning+" "+msg))
}

// Error prints a failure line
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.out, p.err.Render(p.symbols.Error+" "+msg))
}

// Println prints a plain line
func (p *Printer) Println(msg string) {
	fmt.Fprintln(p.out, msg)
}

// Title prints a bold heading above a table
func (p *Printer) Title(msg string) {
	fmt.Fprintln(p.out, p.title.Render(msg))
}

// Table prints rows as an aligned, bordered table
func (p *Printer) Table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.header
			}
			return p.cell
		})

	fmt.Fprintln(p.out, t.Render())
}
