package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/rson-format/go-rson/ir"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// jsonObject is an object which keeps its key order when marshaled.
type jsonObject struct {
	keys []string
	vals []any
}

func (o *jsonObject) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kd, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kd)
		buf.WriteByte(':')
		vd, err := json.Marshal(o.vals[i])
		if err != nil {
			return nil, err
		}
		buf.Write(vd)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// plain converts y to values the encoder for f writes with object keys in
// document order. Aliased values are written at each occurrence.
func plain(y *ir.Node, f Format, path map[*ir.Node]struct{}) (any, error) {
	if y.Type.IsLeaf() {
		return ir.ToAny(y)
	}
	if _, ok := path[y]; ok {
		return nil, ir.ErrCycle
	}
	path[y] = struct{}{}
	defer delete(path, y)
	vals := make([]any, len(y.Values))
	for i, v := range y.Values {
		pv, err := plain(v, f, path)
		if err != nil {
			return nil, err
		}
		vals[i] = pv
	}
	if y.Type == ir.ArrayType {
		return vals, nil
	}
	if f == JSONFormat {
		return &jsonObject{keys: y.Fields, vals: vals}, nil
	}
	ms := make(yaml.MapSlice, len(vals))
	for i := range vals {
		ms[i] = yaml.MapItem{Key: y.Fields[i], Value: vals[i]}
	}
	return ms, nil
}

func writeValue(cfg *MainConfig, w io.Writer, y *ir.Node) error {
	v, err := plain(y, cfg.OutFormat, map[*ir.Node]struct{}{})
	if err != nil {
		return err
	}
	var d []byte
	switch cfg.OutFormat {
	case YAMLFormat:
		d, err = yaml.Marshal(v)
	default:
		d, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	if cfg.OutFormat != YAMLFormat {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}
