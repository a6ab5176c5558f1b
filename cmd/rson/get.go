package main

import (
	"fmt"

	"github.com/signadot/rson-format/go-rson/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, args, err := pathArg("get", args)
	if err != nil {
		return err
	}
	for _, arg := range files(args) {
		if err := queryArg(cfg.MainConfig, cc, arg, path, false); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, args, err := pathArg("list", args)
	if err != nil {
		return err
	}
	for _, arg := range files(args) {
		if err := queryArg(cfg.MainConfig, cc, arg, path, true); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}

func pathArg(cmd string, args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%w: %s requires one argument, a path", cli.ErrUsage, cmd)
	}
	path := args[0]
	if path == "" {
		return "", nil, fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	if _, err := ir.ParsePath(path); err != nil {
		return "", nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return path, args[1:], nil
}

func queryArg(cfg *MainConfig, cc *cli.Context, arg, query string, list bool) error {
	target, err := parseArg(cfg, cc, arg)
	if err != nil {
		return err
	}
	if list {
		res, err := target.ListPath(nil, query)
		if err != nil {
			return fmt.Errorf("error executing list on %s: %w", arg, err)
		}
		return writeValue(cfg, cc.Out, ir.FromSlice(res))
	}
	res, err := target.GetPath(query)
	if err != nil {
		return fmt.Errorf("error executing get on %s: %w", arg, err)
	}
	if res == nil {
		// missing field: nothing to write
		return nil
	}
	return writeValue(cfg, cc.Out, res)
}
