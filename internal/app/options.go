package app

import (
	"fmt"
	"strings"
)

type Option int

const (
	ShowLineNumbers Option = iota
	NoHighlight
	PrintUsage
	UseRegex
)

func (o Option) String() string {
	switch o {
	case ShowLineNumbers:
		return "ShowLineNumbers"
	case NoHighlight:
		return "NoHighlight"
	case PrintUsage:
		return "PrintUsage"
	case UseRegex:
		return "UseRegex"
	}
	return fmt.Sprintf("Option(%d)", int(o))
}

// Options keeps flags in order of appearance, duplicates included.
type Options []Option

func (opts Options) Contains(o Option) bool {
	for _, v := range opts {
		if v == o {
			return true
		}
	}
	return false
}

func (opts Options) Strings() []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.String())
	}
	return out
}

// ParsedArgs holds the positional tokens (pattern, path) and the collected options.
type ParsedArgs struct {
	Positional []string
	Options    Options
}

func (p *ParsedArgs) Pattern() string {
	return p.Positional[0]
}

func (p *ParsedArgs) Path() string {
	return p.Positional[1]
}

var optionChars = map[rune]Option{
	'l': ShowLineNumbers,
	'h': PrintUsage,
	'n': NoHighlight,
	'r': UseRegex,
}

// ParseOptionCluster maps every character of a token like "-ln" to its option.
// '-' is a no-op. Nothing from the token is kept if any character is unknown.
func ParseOptionCluster(token string) (Options, error) {
	var opts Options
	invalid := false
	for _, r := range token {
		if r == '-' {
			continue
		}
		o, ok := optionChars[r]
		if !ok {
			invalid = true
			continue
		}
		opts = append(opts, o)
	}
	if invalid {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOption, token)
	}
	return opts, nil
}

// ParseArgs consumes the full argument list; args[0] is the program name and is skipped.
func ParseArgs(args []string) (*ParsedArgs, error) {
	parsed := &ParsedArgs{}
	for i, arg := range args {
		if i == 0 {
			continue
		}
		if strings.HasPrefix(arg, "-") {
			opts, err := ParseOptionCluster(arg)
			if err != nil {
				return nil, err
			}
			parsed.Options = append(parsed.Options, opts...)
			continue
		}
		parsed.Positional = append(parsed.Positional, arg)
	}

	// -h must work without pattern and path
	if len(parsed.Positional) != 2 && !parsed.Options.Contains(PrintUsage) {
		return nil, ErrInvalidUsage
	}
	return parsed, nil
}
