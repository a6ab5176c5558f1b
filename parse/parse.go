package parse

import (
	"bytes"
	"io"
	"maps"
	"strconv"
	"strings"

	"github.com/signadot/rson-format/go-rson/debug"
	"github.com/signadot/rson-format/go-rson/ir"
	"github.com/signadot/rson-format/go-rson/token"
)

// Parse reads one RSON value from r. Content after that value is ignored
// unless ParseStrict is given.
func Parse(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	tk, err := token.NewTokenizer(r, pOpts.TokenizeOpts()...)
	if err != nil {
		return nil, err
	}
	p := &parser{
		tk:   tk,
		opts: pOpts,
		refs: map[string]*ir.Node{},
	}
	return p.parse()
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse(strings.NewReader(s), opts...)
}

func ParseBytes(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return Parse(bytes.NewReader(d), opts...)
}

type parser struct {
	tk   *token.Tokenizer
	opts *parseOpts
	refs map[string]*ir.Node
	late []patch
}

// patch records a reference used before its definition. The slot owner.Values[slot]
// holds hole until the reference is resolved.
type patch struct {
	owner *ir.Node
	slot  int
	hole  *ir.Node
	name  string
	pos   token.Pos
}

func (p *parser) parse() (*ir.Node, error) {
	res, err := p.value()
	if err != nil {
		return nil, err
	}
	if p.opts.strict && !p.tk.EOF() {
		return nil, syntaxErr(token.TEOF.Describe(), p.tk.Token())
	}
	if err := p.resolve(); err != nil {
		return nil, err
	}
	if p.opts.defs != nil {
		maps.Copy(p.opts.defs, p.refs)
	}
	return res, nil
}

func (p *parser) next() error {
	_, err := p.tk.Next()
	return err
}

func (p *parser) expect(tt token.TokenType) error {
	tok := p.tk.Token()
	if tok.Type != tt {
		return syntaxErr(tt.Describe(), tok)
	}
	return p.next()
}

func (p *parser) value() (*ir.Node, error) {
	tok := p.tk.Token()
	var (
		v   *ir.Node
		err error
	)
	switch tok.Type {
	case token.TLCurl:
		v, err = p.object()
	case token.TLSquare:
		v, err = p.array()
	case token.TString:
		v, err = ir.FromString(tok.Text), p.next()
	case token.TNumber:
		v, err = p.number(tok)
	case token.TTrue:
		v, err = ir.FromBool(true), p.next()
	case token.TFalse:
		v, err = ir.FromBool(false), p.next()
	case token.TNull:
		v, err = ir.Null(), p.next()
	default:
		return nil, syntaxErr("value", tok)
	}
	if err != nil {
		return nil, err
	}
	if p.opts.positions != nil {
		p.opts.positions[v] = tok.Start
	}
	if debug.Parse() {
		debug.Logf("value %s at %s\n", debug.RSON{Node: v}, tok.Start)
	}
	def := p.tk.Token()
	if def.Type != token.TDef {
		return v, nil
	}
	if prev, ok := p.refs[def.Text]; ok && debug.Refs() {
		debug.Logf("redefining (%s) at %s, was %s\n", def.Text, def.Start, debug.RSON{Node: prev})
	}
	p.refs[def.Text] = v
	return v, p.next()
}

func (p *parser) number(tok token.Token) (*ir.Node, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	// "007" lexes as the numbers 0, 0 and 7
	if nt := p.tk.Token(); nt.Type == token.TNumber && nt.Start.Offset == tok.End.Offset {
		return nil, syntaxErr("delimiter after number "+tok.Text, nt)
	}
	if token.IsInteger(tok.Text) {
		i, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, numberErr(tok, err)
		}
		return ir.FromInt(i), nil
	}
	f, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		return nil, numberErr(tok, err)
	}
	return ir.FromFloat(f), nil
}

// ref returns the value bound to a reference, or a new placeholder and
// true if the name is not yet defined.
func (p *parser) ref(tok token.Token) (*ir.Node, bool) {
	if v, ok := p.refs[tok.Text]; ok {
		return v, false
	}
	return &ir.Node{}, true
}

func (p *parser) later(owner *ir.Node, slot int, hole *ir.Node, tok token.Token) {
	if debug.Refs() {
		debug.Logf("forward reference $%s at %s\n", tok.Text, tok.Start)
	}
	p.late = append(p.late, patch{
		owner: owner,
		slot:  slot,
		hole:  hole,
		name:  tok.Text,
		pos:   tok.Start,
	})
}

func (p *parser) object() (*ir.Node, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	obj := ir.NewObject()
	if p.tk.Token().Type == token.TRCurl {
		return obj, p.next()
	}
	for {
		keyTok := p.tk.Token()
		if keyTok.Type != token.TString {
			return nil, syntaxErr("string key", keyTok)
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		if err := p.expect(token.TColon); err != nil {
			return nil, err
		}
		if tok := p.tk.Token(); tok.Type == token.TRef {
			if err := p.next(); err != nil {
				return nil, err
			}
			v, pending := p.ref(tok)
			slot := obj.Set(keyTok.Text, v)
			if pending {
				p.later(obj, slot, v, tok)
			}
		} else {
			v, err := p.value()
			if err != nil {
				return nil, err
			}
			obj.Set(keyTok.Text, v)
		}
		tok := p.tk.Token()
		switch tok.Type {
		case token.TComma:
			if err := p.next(); err != nil {
				return nil, err
			}
		case token.TRCurl:
			return obj, p.next()
		default:
			return nil, syntaxErr("',' or '}'", tok)
		}
	}
}

func (p *parser) array() (*ir.Node, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	arr := ir.NewArray()
	if p.tk.Token().Type == token.TRSquare {
		return arr, p.next()
	}
	for {
		if tok := p.tk.Token(); tok.Type == token.TRef {
			if err := p.next(); err != nil {
				return nil, err
			}
			v, pending := p.ref(tok)
			slot := arr.Append(v)
			if pending {
				p.later(arr, slot, v, tok)
			}
		} else {
			v, err := p.value()
			if err != nil {
				return nil, err
			}
			arr.Append(v)
		}
		tok := p.tk.Token()
		switch tok.Type {
		case token.TComma:
			if err := p.next(); err != nil {
				return nil, err
			}
		case token.TRSquare:
			return arr, p.next()
		default:
			return nil, syntaxErr("',' or ']'", tok)
		}
	}
}

// resolve fills the slots of forward references in the order they were
// recorded. A slot overwritten since, by a repeated object key, is left
// alone.
func (p *parser) resolve() error {
	if debug.Refs() && len(p.late) > 0 {
		names := make([]string, len(p.late))
		for i := range p.late {
			names[i] = p.late[i].name
		}
		debug.LogAny(names)
	}
	for i := range p.late {
		l := &p.late[i]
		v, ok := p.refs[l.name]
		if !ok {
			return &RefErr{Name: l.name, Pos: l.pos}
		}
		if l.owner.Values[l.slot] != l.hole {
			continue
		}
		l.owner.Values[l.slot] = v
	}
	p.late = nil
	return nil
}
