package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"cmakecheck/internal/diag"
	"cmakecheck/internal/source"
)

const indent = "  "

// Pretty renders diagnostics in the human-readable report form. The bag is
// expected to be sorted already. Each diagnostic prints as
//
//	error: <path>:<line>:<col>: <message>
//	  Context:
//	    NN | <source line>
//	  Replace with:
//	    <suggestion>
//	  Example:
//	       | <snippet>
//	  More information:
//	    <links>
//
// with blank lines between entries.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := prettyPrinter{w: w, fs: fs, opts: opts}
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		p.diagnostic(&d)
	}
	if bag.Truncated() {
		fmt.Fprintln(w, "reached error limit, stopping.")
	}
}

// Summary prints the run's closing line.
func Summary(w io.Writer, issues, files int) {
	fmt.Fprintf(w, "found %d %s in %d %s.\n",
		issues, plural(issues, "error", "errors"),
		files, plural(files, "file", "files"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

type prettyPrinter struct {
	w    io.Writer
	fs   *source.FileSet
	opts PrettyOpts
}

func (p *prettyPrinter) diagnostic(d *diag.Diagnostic) {
	start, end := p.fs.Resolve(d.Primary)
	f := p.fs.Get(d.Primary.File)
	path := f.FormatPath(p.opts.PathMode.key(), p.opts.BaseDir)

	label := d.Severity.Label() + ":"
	loc := fmt.Sprintf("%s:%d:%d:", path, start.Line, start.Col)
	if p.opts.Color {
		c := color.New(color.FgRed, color.Bold)
		if d.Severity == diag.SevWarning {
			c = color.New(color.FgYellow, color.Bold)
		}
		label = c.Sprint(label)
		loc = color.New(color.Bold).Sprint(loc)
	}
	fmt.Fprintf(p.w, "%s %s %s\n", label, loc, d.Message)

	p.context(f, d.Primary, start, end)

	for _, n := range d.Notes {
		nStart, _ := p.fs.Resolve(n.Span)
		nf := p.fs.Get(n.Span.File)
		npath := nf.FormatPath(p.opts.PathMode.key(), p.opts.BaseDir)
		fmt.Fprintf(p.w, "%s%s %s:%d:%d: %s\n", indent, p.heading("Note:"),
			npath, nStart.Line, nStart.Col, n.Msg)
	}

	if d.Remedy == nil {
		return
	}
	if d.Remedy.ReplaceWith != nil {
		fmt.Fprintf(p.w, "%s%s\n%s%s\n", indent, p.heading("Replace with:"), indent+indent, d.Remedy.ReplaceWith.String())
	}
	if d.Remedy.Example != "" {
		fmt.Fprintf(p.w, "%s%s\n", indent, p.heading("Example:"))
		for _, line := range strings.Split(d.Remedy.Example, "\n") {
			fmt.Fprintf(p.w, "%s   | %s\n", indent+indent, expandTabs(line))
		}
	}
	if len(d.Remedy.MoreInfo) > 0 {
		fmt.Fprintf(p.w, "%s%s\n", indent, p.heading("More information:"))
		for _, l := range d.Remedy.MoreInfo {
			fmt.Fprintf(p.w, "%s%s\n", indent+indent, l.String())
		}
	}
}

func (p *prettyPrinter) heading(s string) string {
	if p.opts.Color {
		return color.New(color.Bold).Sprint(s)
	}
	return s
}

// context prints the source lines the span touches with a line-number
// gutter, highlighting the span itself when color is on.
func (p *prettyPrinter) context(f *source.File, sp source.Span, start, end source.LineCol) {
	if sp.Empty() {
		return
	}
	fmt.Fprintf(p.w, "%s%s\n", indent, p.heading("Context:"))

	width := len(fmt.Sprintf("%d", end.Line))
	if width < 2 {
		width = 2
	}
	for line := start.Line; line <= end.Line; line++ {
		raw := f.GetLine(line)

		var rendered string
		if p.opts.Color {
			// Highlight bounds are byte offsets within the line, taken from
			// the span itself; resolved columns count characters.
			ls := lineStartOffset(f, line)
			hlStart := 0
			if line == start.Line {
				hlStart = int(sp.Start) - ls
			}
			hlEnd := len(raw)
			if line == end.Line {
				hlEnd = int(sp.End) - ls
			}
			rendered = highlightLine(raw, hlStart, hlEnd)
		} else {
			rendered = expandTabs(raw)
			if p.opts.Width > 0 {
				rendered = runewidth.Truncate(rendered, p.opts.Width, "...")
			}
		}
		fmt.Fprintf(p.w, "%s%*d | %s\n", indent+indent, width, line, rendered)
	}
}

func lineStartOffset(f *source.File, line uint32) int {
	if line <= 1 {
		return 0
	}
	return int(f.LineIdx[line-2] + 1)
}

// highlightLine colors raw[hlStart:hlEnd] red, expanding tabs around the
// range. Byte columns are clamped to the line.
func highlightLine(raw string, hlStart, hlEnd int) string {
	if hlStart < 0 {
		hlStart = 0
	}
	if hlEnd > len(raw) {
		hlEnd = len(raw)
	}
	if hlEnd <= hlStart {
		return expandTabs(raw)
	}
	red := color.New(color.FgRed)
	return expandTabs(raw[:hlStart]) +
		red.Sprint(expandTabs(raw[hlStart:hlEnd])) +
		expandTabs(raw[hlEnd:])
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
