package main

import (
	"fmt"

	"github.com/signadot/rson-format/go-rson/ir"
	"github.com/signadot/rson-format/go-rson/parse"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var opts []parse.ParseOption
	if cfg.Strict {
		opts = append(opts, parse.ParseStrict())
	}
	colors := cfg.colors(cc.Out)
	failed := 0
	for _, arg := range files(args) {
		defs := map[string]*ir.Node{}
		_, err := parseArg(cfg.MainConfig, cc, arg, append(opts, parse.ParseDefinitions(defs))...)
		if err != nil {
			failed++
			fmt.Fprintf(cc.Out, "%s: %s\n", arg, colors.Attr(ErrColor, err.Error()))
			continue
		}
		fmt.Fprintf(cc.Out, "%s: %s\n", arg, colors.Attr(OKColor, "ok"))
		theLog.Debug("checked", "file", arg, "definitions", len(defs))
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
