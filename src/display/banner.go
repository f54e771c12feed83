package display

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/apimgr/employee-tracker/src/common/terminal"
)

const boxWidth = terminal.CompactWidth

// BannerTitle is the heading shown when the menu starts
const BannerTitle = "EMPLOYEE MANAGER"

// Banner holds what the startup banner shows
type Banner struct {
	Version  string
	Database string // driver and host, never credentials
}

// PrintBanner prints the boxed banner, or a single line on narrow terminals
func (p *Printer) PrintBanner(b Banner, size terminal.Size) {
	if size.Compact() {
		p.printCompact(b)
		return
	}
	p.printFull(b)
}

func (p *Printer) printFull(b Banner) {
	hLine := strings.Repeat("═", boxWidth-2)

	lines := []string{
		"╔" + hLine + "╗",
		boxLine(""),
		boxLine(centered(BannerTitle, boxWidth-2)),
		boxLine(""),
	}
	if b.Version != "" || b.Database != "" {
		lines = append(lines, "╠"+hLine+"╣")
		if b.Version != "" {
			lines = append(lines, boxLine("   Version:  "+b.Version))
		}
		if b.Database != "" {
			lines = append(lines, boxLine("   Database: "+b.Database))
		}
	}
	lines = append(lines, "╚"+hLine+"╝")

	for _, l := range lines {
		fmt.Fprintln(p.out, p.title.Render(l))
	}
	fmt.Fprintln(p.out)
}

func (p *Printer) printCompact(b Banner) {
	line := BannerTitle
	if b.Version != "" {
		line += " " + b.Version
	}
	fmt.Fprintln(p.out, p.title.Render(line))
	if b.Database != "" {
		fmt.Fprintln(p.out, b.Database)
	}
	fmt.Fprintln(p.out)
}

// boxLine pads content between the vertical borders, truncating when too long
func boxLine(content string) string {
	inner := boxWidth - 2
	content = runewidth.Truncate(content, inner, "…")
	return "║" + runewidth.FillRight(content, inner) + "║"
}

func centered(s string, width int) string {
	pad := (width - runewidth.StringWidth(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
