package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/signadot/rson-format/go-rson/ir"
	"github.com/signadot/rson-format/go-rson/parse"

	"github.com/scott-cotton/cli"
)

func rsonMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// files returns the inputs named on the command line, standard input if
// there are none.
func files(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func openArg(cc *cli.Context, arg string) (io.ReadCloser, error) {
	if arg == "-" {
		return io.NopCloser(cc.In), nil
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", arg, err)
	}
	return f, nil
}

// parseArg parses the file arg, or standard input if arg is "-".
func parseArg(cfg *MainConfig, cc *cli.Context, arg string, opts ...parse.ParseOption) (*ir.Node, error) {
	r, err := openArg(cc, arg)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	opts = append(cfg.parseOpts(arg), opts...)
	start := time.Now()
	y, err := parse.Parse(r, opts...)
	if err != nil {
		return nil, err
	}
	theLog.Debug("parsed", "file", arg, "type", y.Type, "elapsed", time.Since(start))
	return y, nil
}
