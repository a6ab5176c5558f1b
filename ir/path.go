package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path is a parsed path such as $.roles[0].name, $.members[*] or $..name.
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	for x != nil {
		if x.Subtree {
			buf.WriteString("..")
			x = x.Next
			continue
		}
		if x.IndexAll {
			buf.WriteString("[*]")
			x = x.Next
			continue
		}
		if x.Field != nil {
			buf.WriteString("." + QuoteField(*x.Field))
			x = x.Next
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
			x = x.Next
			continue
		}
		x = x.Next
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	err := parseFrag(p[1:], root)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			next := &Path{}
			err := parseFrag(frag[2:], next)
			if err != nil {
				return err
			}
			parent.Next = next
			return nil
		}
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		if len(rest) == 0 {
			return nil
		}
		next := &Path{}
		err = parseFrag(rest, next)
		if err != nil {
			return err
		}
		parent.Next = next
		return nil
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		if len(frag) == i+2 {
			return nil
		}
		next := &Path{}
		err = parseFrag(frag[i+2:], next)
		if err != nil {
			return err
		}
		parent.Next = next
		return nil
	default:
		return fmt.Errorf("expected '.' or '['")
	}
}

func parseIndex(is string) (index int, all bool, err error) {
	if len(is) == 1 && is[0] == '*' {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 32)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		if i == 0 {
			return "", "", fmt.Errorf("empty field")
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			if escaped {
				res = append(res, c)
			}
			escaped = !escaped
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// QuoteField renders f as a path field, quoting it when it contains path
// syntax.
func QuoteField(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]\\") == -1 {
		return f
	}
	f = strings.ReplaceAll(f, "\\", "\\\\")
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// GetPath returns the node at yPath, or nil if a field on the path is
// missing. The result is a node of y's graph, not a copy.
func (y *Node) GetPath(yPath string) (*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	res := y
	for yp != nil {
		if yp.IndexAll {
			return nil, fmt.Errorf("%w: any index in get", ErrPath)
		}
		if yp.Subtree {
			return nil, fmt.Errorf("%w: recurse .. in get", ErrPath)
		}
		if yp.Index != nil {
			if res.Type != ArrayType {
				return nil, fmt.Errorf("%w: expected array, got %s", ErrPath, res.Type)
			}
			index := *yp.Index
			if index >= len(res.Values) {
				return nil, fmt.Errorf("%w: index out of bounds %d (len %d)", ErrPath, index, len(res.Values))
			}
			res = res.Values[index]
			yp = yp.Next
			continue
		}
		if yp.Field != nil {
			if res.Type != ObjectType {
				return nil, fmt.Errorf("%w: expected object got %s", ErrPath, res.Type)
			}
			next := res.Get(*yp.Field)
			if next == nil {
				return nil, nil
			}
			res = next
			yp = yp.Next
			continue
		}
		if yp.Next != nil {
			return nil, fmt.Errorf("%w: unexpected next w/out index or field", ErrPath)
		}
		return res, nil
	}
	return res, nil
}

// ListPath appends to dst all nodes matching yPath. Below a ".." each node
// of the graph is considered once, even if it is reachable along several
// paths.
func (y *Node) ListPath(dst []*Node, yPath string) ([]*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	return y.listPath(dst, yp), nil
}

func (y *Node) listPath(dst []*Node, yp *Path) []*Node {
	if yp == nil {
		return append(dst, y)
	}
	if yp.Subtree {
		_ = y.Visit(func(node *Node, isPost bool) (bool, error) {
			if isPost {
				return false, nil
			}
			if node.Type.IsLeaf() {
				return false, nil
			}
			dst = node.listPath(dst, yp.Next)
			return true, nil
		})
		return dst
	}
	switch y.Type {
	case ObjectType:
		if yp.IndexAll || yp.Index != nil {
			return dst
		}
		if yp.Field == nil {
			if yp.Next == nil {
				return append(dst, y)
			}
			return dst
		}
		if v := y.Get(*yp.Field); v != nil {
			dst = v.listPath(dst, yp.Next)
		}
		return dst

	case ArrayType:
		if yp.Field != nil {
			return dst
		}
		if yp.Index == nil && !yp.IndexAll && yp.Next == nil {
			return append(dst, y)
		}
		if yp.Index != nil {
			idx := *yp.Index
			if idx < len(y.Values) {
				dst = y.Values[idx].listPath(dst, yp.Next)
			}
			return dst
		}
		if !yp.IndexAll {
			return dst
		}
		for _, yv := range y.Values {
			dst = yv.listPath(dst, yp.Next)
		}
		return dst

	default:
		if yp.Field != nil || yp.Index != nil || yp.IndexAll {
			return dst
		}
		if yp.Next == nil {
			dst = append(dst, y)
		}
		return dst
	}
}
