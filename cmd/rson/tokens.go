package main

import (
	"fmt"
	"io"

	"github.com/signadot/rson-format/go-rson/token"

	"github.com/scott-cotton/cli"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		cfg.Tokens.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	colors := cfg.colors(cc.Out)
	for _, arg := range files(args) {
		if err := tokensArg(cc, cc.Out, arg, colors); err != nil {
			return fmt.Errorf("error tokenizing %s: %w", arg, err)
		}
	}
	return nil
}

func tokensArg(cc *cli.Context, w io.Writer, arg string, colors *Colors) error {
	r, err := openArg(cc, arg)
	if err != nil {
		return err
	}
	defer r.Close()
	var opts []token.TokenOpt
	if arg != "-" {
		opts = append(opts, token.TokenFilename(arg))
	}
	tk, err := token.NewTokenizer(r, opts...)
	if err != nil {
		return err
	}
	n := 0
	for {
		tok := tk.Token()
		if err := writeToken(w, &tok, colors); err != nil {
			return err
		}
		n++
		if tok.Type == token.TEOF {
			break
		}
		if _, err := tk.Next(); err != nil {
			return err
		}
	}
	theLog.Debug("tokenized", "file", arg, "tokens", n)
	return nil
}

// writeToken writes tok as "Type (line:col-line:col): text".
func writeToken(w io.Writer, tok *token.Token, colors *Colors) error {
	span := fmt.Sprintf("(%d:%d-%d:%d)", tok.Start.Line, tok.Start.Col, tok.End.Line, tok.End.Col)
	_, err := fmt.Fprintf(w, "%s %s: %s\n",
		colors.Token(tok.Type, tok.Type.String()),
		colors.Attr(PosColor, span),
		colors.Token(tok.Type, tok.Text))
	return err
}
