package main

import (
	"fmt"
	"io"

	"github.com/signadot/rson-format/go-rson/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 arguments", cli.ErrUsage)
	}
	if args[0] == "-" && args[1] == "-" {
		return fmt.Errorf("%w: at most one argument may be stdin", cli.ErrUsage)
	}
	from, err := parseArg(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", args[0], err)
	}
	to, err := parseArg(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", args[1], err)
	}
	changes := libdiff.Diff(from, to)
	if err := writeChanges(cc.Out, changes, cfg.colors(cc.Out)); err != nil {
		return err
	}
	theLog.Debug("diffed", "from", args[0], "to", args[1], "changes", len(changes))
	if len(changes) != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func writeChanges(w io.Writer, changes []libdiff.Change, colors *Colors) error {
	for i := range changes {
		c := &changes[i]
		var err error
		switch c.Op {
		case libdiff.Insert:
			_, err = fmt.Fprintf(w, "%s %s: %s\n", colors.Op(c.Op, c.Op.String()),
				colors.Attr(PathColor, c.Path), colors.Op(c.Op, c.To.Dump()))
		case libdiff.Delete:
			_, err = fmt.Fprintf(w, "%s %s: %s\n", colors.Op(c.Op, c.Op.String()),
				colors.Attr(PathColor, c.Path), colors.Op(c.Op, c.From.Dump()))
		default:
			_, err = fmt.Fprintf(w, "%s %s: %s -> %s\n", colors.Op(c.Op, c.Op.String()),
				colors.Attr(PathColor, c.Path),
				colors.Op(libdiff.Delete, c.From.Dump()), colors.Op(libdiff.Insert, c.To.Dump()))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
