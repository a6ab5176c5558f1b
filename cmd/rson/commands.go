package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format for values: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}, &cli.Opt{
			Name:        "debug",
			Description: "library debug logging to stderr: tokens,parse,refs",
			Type:        cli.NamedFuncOpt(debugOpt, "(switches)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "rson").
		WithSynopsis("rson [opts] command [opts]").
		WithDescription("rson is a tool for working with RSON documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rsonMain(cfg, cc, args)
		}).
		WithSubs(
			TokensCommand(cfg),
			CheckCommand(cfg),
			GetCommand(cfg),
			ListCommand(cfg),
			SelectCommand(cfg),
			DiffCommand(cfg))
}

func TokensCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TokensConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Tokens, "tokens").
		WithAliases("t", "tok").
		WithSynopsis("tokens [files]").
		WithDescription("print the tokens of files, one per line").
		WithRun(func(cc *cli.Context, args []string) error {
			return tokens(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-strict] [files]").
		WithDescription("parse files and report errors, resolving all references").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("print the value at path, such as $.roles[0]").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l").
		WithSynopsis("list <path> [files]").
		WithDescription("print all values matching path, such as $.members[*].role or $...name").
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

func SelectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SelectConfig{MainConfig: mainCfg, Field: "role"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Select, "select").
		WithAliases("s", "sel").
		WithSynopsis("select -ref name [-field f] [-where expr] <path> [files]").
		WithDescription("print the elements of the array at path whose field refers to the value defined as (name)").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return selectRefs(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff <file1> <file2>").
		WithDescription("print the differences between the values of two files").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
