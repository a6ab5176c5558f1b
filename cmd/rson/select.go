package main

import (
	"fmt"

	"github.com/signadot/rson-format/go-rson/ir"
	"github.com/signadot/rson-format/go-rson/parse"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

func selectRefs(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		cfg.Select.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Ref == "" {
		return fmt.Errorf("%w: select requires -ref", cli.ErrUsage)
	}
	if cfg.Field == "" {
		return fmt.Errorf("%w: empty -field", cli.ErrUsage)
	}
	path, args, err := pathArg("select", args)
	if err != nil {
		return err
	}
	var where *vm.Program
	if cfg.Where != "" {
		where, err = expr.Compile(cfg.Where, expr.AllowUndefinedVariables(), expr.AsBool())
		if err != nil {
			return fmt.Errorf("%w: -where: %w", cli.ErrUsage, err)
		}
	}
	for _, arg := range files(args) {
		res, err := selectArg(cfg, cc, arg, path, where)
		if err != nil {
			return fmt.Errorf("error selecting from %s: %w", arg, err)
		}
		if err := writeValue(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}

func selectArg(cfg *SelectConfig, cc *cli.Context, arg, path string, where *vm.Program) (*ir.Node, error) {
	defs := map[string]*ir.Node{}
	doc, err := parseArg(cfg.MainConfig, cc, arg, parse.ParseDefinitions(defs))
	if err != nil {
		return nil, err
	}
	def, ok := defs[cfg.Ref]
	if !ok {
		return nil, fmt.Errorf("no definition (%s)", cfg.Ref)
	}
	arr, err := doc.GetPath(path)
	if err != nil {
		return nil, err
	}
	if arr == nil || arr.Type != ir.ArrayType {
		return nil, fmt.Errorf("%s is not an array", path)
	}
	return Select(arr, cfg.Field, def, where)
}

// Select returns the elements of arr whose field is def itself, rather
// than a value equal to it. If where is not nil, elements must also
// satisfy it.
func Select(arr *ir.Node, field string, def *ir.Node, where *vm.Program) (*ir.Node, error) {
	res := ir.NewArray()
	for _, elt := range arr.Values {
		if !elt.Get(field).Is(def) {
			continue
		}
		if where != nil {
			ok, err := matches(where, elt)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		res.Append(elt)
	}
	return res, nil
}

// matches runs where with the fields of elt as variables, and elt itself
// as "it".
func matches(where *vm.Program, elt *ir.Node) (bool, error) {
	v, err := ir.ToAny(elt)
	if err != nil {
		return false, err
	}
	env := map[string]any{}
	if m, ok := v.(map[string]any); ok {
		for k, fv := range m {
			env[k] = fv
		}
	}
	env["it"] = v
	out, err := expr.Run(where, env)
	if err != nil {
		return false, err
	}
	ok, _ := out.(bool)
	return ok, nil
}
