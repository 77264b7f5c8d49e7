package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"surge/internal/diag"
	"surge/internal/source"
)

// Pretty writes every diagnostic in bag to w as a terminal-friendly report,
// with source context lines and a wide-rune-aware underline beneath the
// offending span.
func Pretty(w io.Writer, fs *source.FileSet, bag *diag.Bag, opts PrettyOpts) error {
	width := opts.TermWidth
	if width <= 0 {
		width = 100
	}
	for _, d := range bag.Sorted() {
		if err := prettyOne(w, fs, d, opts, width); err != nil {
			return err
		}
	}
	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(w, "(%d further diagnostics suppressed)\n", n)
	}
	return nil
}

func prettyOne(w io.Writer, fs *source.FileSet, d diag.Diagnostic, opts PrettyOpts, width int) error {
	f := fs.Get(d.Span.File)
	start, end := fs.Resolve(d.Span)

	sevText, sevColor := severityLabel(d.Severity)
	header := fmt.Sprintf("%s[%s]: %s", sevText, d.Code, wrapMessage(d.Message, width))
	if opts.Color {
		header = sevColor.Sprint(header)
	}
	fmt.Fprintln(w, header)
	fmt.Fprintf(w, "  --> %s:%d:%d\n", renderPath(f.Path, opts.PathMode), start.Line, start.Col)

	lo := clampLine(f, int(start.Line)-opts.ContextLines)
	hi := clampLine(f, int(end.Line)+opts.ContextLines)
	if hi-lo+1 > opts.MaxRangeLines && opts.MaxRangeLines > 0 {
		half := opts.MaxRangeLines / 2
		renderLines(w, f, lo, lo+half-1)
		fmt.Fprintln(w, "   … …")
		renderLines(w, f, hi-half+1, hi)
	} else {
		renderLines(w, f, lo, hi)
	}

	printUnderline(w, f, d.Span, start, end, opts)
	fmt.Fprintln(w)
	return nil
}

func severityLabel(s diag.Severity) (string, *color.Color) {
	switch s {
	case diag.SeverityError:
		return "error", color.New(color.FgRed, color.Bold)
	case diag.SeverityWarning:
		return "warning", color.New(color.FgYellow, color.Bold)
	default:
		return "note", color.New(color.FgCyan)
	}
}

func renderPath(path string, mode PathMode) string {
	switch mode {
	case PathAbsolute:
		abs, err := filepath.Abs(path)
		if err != nil {
			return path
		}
		return abs
	case PathBase:
		return filepath.Base(path)
	default:
		return path
	}
}

func clampLine(f *source.File, line int) int {
	if line < 1 {
		return 1
	}
	if n := int(f.LineCount()); line > n {
		return n
	}
	return line
}

func renderLines(w io.Writer, f *source.File, lo, hi int) {
	for ln := lo; ln <= hi; ln++ {
		fmt.Fprintf(w, "%4d | %s\n", ln, f.GetLine(uint32(ln)))
	}
}

// printUnderline draws a caret line beneath the diagnostic's start line,
// counting display width (not byte or rune count) so underlines stay
// aligned under wide (e.g. CJK) characters.
func printUnderline(w io.Writer, f *source.File, span source.Span, start, end source.LineCol, opts PrettyOpts) {
	line := f.GetLine(start.Line)
	lineStartCol := start.Col
	underlineLen := 1
	if start.Line == end.Line && end.Col > start.Col {
		underlineLen = int(end.Col - start.Col)
	}

	prefix := line
	if int(lineStartCol)-1 <= len(prefix) {
		prefix = line[:clampIdx(int(lineStartCol)-1, len(line))]
	}
	pad := runewidth.StringWidth(prefix)

	var b strings.Builder
	b.WriteString("     | ")
	b.WriteString(strings.Repeat(" ", pad))
	carets := strings.Repeat("^", clampIdx(underlineLen, 200))
	if opts.Color {
		carets = color.New(color.FgRed, color.Bold).Sprint(carets)
	}
	b.WriteString(carets)
	fmt.Fprintln(w, b.String())
}

func clampIdx(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}

// wrapMessage word-wraps msg to width columns, joining wrapped lines with a
// continuation indent so multi-line messages stay readable in a narrow
// terminal.
func wrapMessage(msg string, width int) string {
	if width <= 0 || runewidth.StringWidth(msg) <= width {
		return msg
	}
	words := strings.Fields(msg)
	var lines []string
	var cur strings.Builder
	curWidth := 0
	for _, word := range words {
		ww := runewidth.StringWidth(word)
		if curWidth > 0 && curWidth+1+ww > width {
			lines = append(lines, cur.String())
			cur.Reset()
			curWidth = 0
		}
		if curWidth > 0 {
			cur.WriteByte(' ')
			curWidth++
		}
		cur.WriteString(word)
		curWidth += ww
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return strings.Join(lines, "\n         ")
}
