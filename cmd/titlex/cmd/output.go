package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

var (
	okStyle      = color.New(color.FgGreen, color.OpBold)
	headingStyle = color.New(color.FgCyan, color.OpBold)
	dimStyle     = color.New(color.FgGray)
)

// setColor turns ANSI styling on or off for every style above.
func setColor(enabled bool) {
	color.Enable = enabled
}

// colorEnabled reports whether styled output should be written to w: colour
// must be wanted, NO_COLOR unset, and w a terminal.
func colorEnabled(w io.Writer, want bool) bool {
	if !want || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printHeader prints a formatted header
func printHeader(w io.Writer, format string, args ...interface{}) {
	title := fmt.Sprintf(format, args...)
	width := runewidth.StringWidth(title) + 4
	fmt.Fprintln(w, strings.Repeat("=", width))
	fmt.Fprintf(w, "  %s\n", headingStyle.Sprint(title))
	fmt.Fprintln(w, strings.Repeat("=", width))
}

// printSection prints a section header
func printSection(w io.Writer, title string) {
	fmt.Fprintf(w, "[%s]\n", title)
	fmt.Fprintln(w, strings.Repeat("-", runewidth.StringWidth(title)+2))
}

// printTable prints rows in columns padded to their widest cell. Widths are
// terminal cells, so CJK names line up with ASCII ones.
func printTable(w io.Writer, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	printRow := func(cells []string) {
		var sb strings.Builder
		sb.WriteString("  ")
		for i, cell := range cells {
			if i == len(cells)-1 {
				sb.WriteString(cell)
				break
			}
			sb.WriteString(runewidth.FillRight(cell, widths[i]))
			sb.WriteString("  ")
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	}

	printRow(header)
	seps := make([]string, len(header))
	for i := range header {
		seps[i] = strings.Repeat("-", widths[i])
	}
	printRow(seps)
	for _, row := range rows {
		printRow(row)
	}
}
