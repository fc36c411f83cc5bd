package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const Usage = `Usage: grepc <pattern> <path> [OPTIONS]
Options:
-l: Show line numbers
-n: Don't highlight pattern
-r Use regex (unimplemented)
-h: Print this usage message
`

const escape = "\x1b"

// Highlight is the pair of markers written around every match.
type Highlight struct {
	Prefix string
	Suffix string
}

// NewHighlight returns bold red markers, or empty ones when highlighting is off.
func NewHighlight(opts Options) Highlight {
	if opts.Contains(NoHighlight) {
		return Highlight{}
	}
	// built from the raw attributes, not color.New: only -n may turn highlighting off
	return Highlight{
		Prefix: fmt.Sprintf("%s[%d;%dm", escape, color.Bold, color.FgRed),
		Suffix: fmt.Sprintf("%s[%dm", escape, color.Reset),
	}
}

func (h Highlight) Wrap(s string) string {
	return h.Prefix + s + h.Suffix
}

type Grep struct {
	options   Options
	pattern   string
	lines     []string
	highlight Highlight
	out       io.Writer
}

func NewGrep(opts Options, pattern string, lines []string, out io.Writer) *Grep {
	return &Grep{
		options:   opts,
		pattern:   pattern,
		lines:     lines,
		highlight: NewHighlight(opts),
		out:       out,
	}
}

// Filter writes every matching line and returns how many lines matched.
func (g *Grep) Filter() (int, error) {
	matchedIdxs := g.findMatches()
	if err := g.printResult(matchedIdxs); err != nil {
		return 0, err
	}
	return len(matchedIdxs), nil
}

func (g *Grep) findMatches() []int {
	var matchedIdxs []int
	for i, line := range g.lines {
		if strings.Contains(line, g.pattern) {
			matchedIdxs = append(matchedIdxs, i)
		}
	}
	return matchedIdxs
}

// printResult prints the storage index as the line number: the counter starts
// at 1 and the printed value is counter-1. Scripts depend on this numbering.
func (g *Grep) printResult(idxs []int) error {
	replacement := g.highlight.Wrap(g.pattern)
	for _, idx := range idxs {
		line := strings.ReplaceAll(g.lines[idx], g.pattern, replacement)

		var err error
		if g.options.Contains(ShowLineNumbers) {
			_, err = fmt.Fprintf(g.out, "%d| %s\n", idx, line)
		} else {
			_, err = fmt.Fprintln(g.out, line)
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
	}
	return nil
}
