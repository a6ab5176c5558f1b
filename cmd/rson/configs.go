package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/rson-format/go-rson/debug"
	"github.com/signadot/rson-format/go-rson/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
)

func ParseFormat(v string) (Format, error) {
	switch v {
	case "json", "j":
		return JSONFormat, nil
	case "yaml", "y":
		return YAMLFormat, nil
	default:
		return 0, fmt.Errorf("unknown format %q", v)
	}
}

type MainConfig struct {
	Color   bool `cli:"name=color desc='color output'"`
	Verbose bool `cli:"name=v desc='verbose logging'"`

	OutFormat Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp *Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = f
		return f, nil
	})
}

// debugOpt turns on the debug switches named in a comma separated list,
// overriding the RSON_DEBUG_* environment.
func debugOpt(_ *cli.Context, a string) (any, error) {
	var tokens, parsing, refs bool
	for _, sw := range strings.Split(a, ",") {
		switch strings.TrimSpace(sw) {
		case "tokens":
			tokens = true
		case "parse":
			parsing = true
		case "refs":
			refs = true
		case "all":
			tokens, parsing, refs = true, true, true
		default:
			return nil, fmt.Errorf("%w: unknown debug switch %q", cli.ErrUsage, sw)
		}
	}
	debug.Set(tokens, parsing, refs)
	return a, nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) parseOpts(file string) []parse.ParseOption {
	if file == "-" {
		return nil
	}
	return []parse.ParseOption{parse.ParseFilename(file)}
}

// colors returns the palette for output to w: colored if -color was given,
// plain if -color=false was, and otherwise colored if w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) *Colors {
	if cfg.Color {
		return NewColors()
	}
	colorsSet := false
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			colorsSet = opt.Value != nil
			break
		}
	}
	if colorsSet {
		return NoColors()
	}
	f, ok := w.(*os.File)
	if !ok {
		return NoColors()
	}
	if isatty.IsTerminal(f.Fd()) {
		return NewColors()
	}
	return NoColors()
}

type TokensConfig struct {
	*MainConfig

	Tokens *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Strict bool `cli:"name=strict desc='reject content after the top level value'"`

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}

type SelectConfig struct {
	*MainConfig
	Ref   string `cli:"name=ref desc='name of the definition members must refer to'"`
	Field string `cli:"name=field desc='member field holding the reference (default role)'"`
	Where string `cli:"name=where desc='expression members must also satisfy'"`

	Select *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
