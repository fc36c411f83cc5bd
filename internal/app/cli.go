package app

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

// CLI runs one search: parse, optional usage, load, scan.
type CLI struct {
	log         *zap.Logger
	stdout      io.Writer
	stderr      io.Writer
	colorErrors bool
}

// NewCLI builds a CLI; colorErrors decides whether stderr messages are red.
func NewCLI(log *zap.Logger, stdout, stderr io.Writer, colorErrors bool) *CLI {
	return &CLI{
		log:         log,
		stdout:      stdout,
		stderr:      stderr,
		colorErrors: colorErrors,
	}
}

// Main runs the tool and returns the process exit code.
func (c *CLI) Main(args []string) int {
	if err := c.Run(args); err != nil {
		// user mistakes are reported on stderr below, the log only gets a debug trail
		c.log.Debug("run failed", zap.Error(err))
		if _, werr := fmt.Fprintln(c.stderr, c.errorColor().Sprintf("Error: %v", err)); werr != nil {
			c.log.Warn("failed to write error", zap.Error(werr))
		}
		return 1
	}
	return 0
}

func (c *CLI) errorColor() *color.Color {
	red := color.New(color.FgRed)
	if c.colorErrors {
		red.EnableColor()
	} else {
		red.DisableColor()
	}
	return red
}

func (c *CLI) Run(args []string) error {
	parsed, err := ParseArgs(args)
	if err != nil {
		return err
	}
	c.log.Debug("arguments parsed",
		zap.Strings("positional", parsed.Positional),
		zap.Strings("options", parsed.Options.Strings()),
	)

	// regex wins over help and is rejected before any file access
	if parsed.Options.Contains(UseRegex) {
		return ErrRegexUnsupported
	}

	if parsed.Options.Contains(PrintUsage) {
		if _, err := fmt.Fprint(c.stdout, Usage); err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
		return nil
	}

	lines, err := ReadLines(parsed.Path())
	if err != nil {
		return err
	}
	c.log.Debug("file loaded", zap.String("path", parsed.Path()), zap.Int("lines", len(lines)))

	grep := NewGrep(parsed.Options, parsed.Pattern(), lines, c.stdout)
	matched, err := grep.Filter()
	if err != nil {
		return err
	}
	c.log.Debug("scan finished", zap.Int("matches", matched))
	return nil
}
