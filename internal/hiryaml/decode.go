package hiryaml

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/forsight/internal/hir"
)

// Decode parses a whole dump document into its root node.
func Decode(data []byte) (hir.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse dump document: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, fmt.Errorf("dump must hold exactly one root node")
	}

	return decodeNode(doc.Content[0])
}

func decodeNode(n *yaml.Node) (hir.Node, error) {
	f, err := nodeFields(n)
	if err != nil {
		return nil, err
	}

	kind, err := f.str("kind")
	if err != nil {
		return nil, err
	}
	span, err := f.span()
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", kind, err)
	}

	res, err := decodeKind(kind, span, f)
	if err != nil {
		return nil, fmt.Errorf("node %q at line %d: %w", kind, n.Line, err)
	}

	return res, nil
}

func decodeKind(kind string, span hir.Span, f fields) (hir.Node, error) {
	switch kind {
	case "droptemps":
		x, err := f.expr("expr")
		if err != nil {
			return nil, err
		}
		return &hir.DropTemps{Span: span, X: x}, nil

	case "match":
		subject, err := f.expr("subject")
		if err != nil {
			return nil, err
		}
		arms, err := f.arms("arms")
		if err != nil {
			return nil, err
		}
		return &hir.Match{Span: span, Subject: subject, Arms: arms}, nil

	case "call":
		fun, err := f.expr("fun")
		if err != nil {
			return nil, err
		}
		args, err := f.exprs("args")
		if err != nil {
			return nil, err
		}
		return &hir.Call{Span: span, Fun: fun, Args: args}, nil

	case "path":
		name, err := f.str("name")
		if err != nil {
			return nil, err
		}
		return &hir.Path{Span: span, Name: name}, nil

	case "struct":
		name, err := f.str("name")
		if err != nil {
			return nil, err
		}
		inits, err := f.fieldInits("fields")
		if err != nil {
			return nil, err
		}
		return &hir.StructLit{Span: span, Name: name, Fields: inits}, nil

	case "lit":
		value, err := f.str("value")
		if err != nil {
			return nil, err
		}
		return &hir.Lit{Span: span, Value: value}, nil

	case "loop":
		body, err := f.block("block")
		if err != nil {
			return nil, err
		}
		return &hir.Loop{Span: span, Label: f.optStr("label"), Body: body}, nil

	case "break":
		return &hir.Break{Span: span, Label: f.optStr("label")}, nil

	case "if":
		cond, err := f.expr("cond")
		if err != nil {
			return nil, err
		}
		then, err := f.block("then")
		if err != nil {
			return nil, err
		}
		els, err := f.optExpr("else")
		if err != nil {
			return nil, err
		}
		return &hir.If{Span: span, Cond: cond, Then: then, Else: els}, nil

	case "block":
		stmts, err := f.stmts("stmts")
		if err != nil {
			return nil, err
		}
		tail, err := f.optExpr("tail")
		if err != nil {
			return nil, err
		}
		return &hir.Block{Span: span, Stmts: stmts, Tail: tail}, nil

	case "assign":
		lhs, err := f.expr("lhs")
		if err != nil {
			return nil, err
		}
		rhs, err := f.expr("rhs")
		if err != nil {
			return nil, err
		}
		return &hir.Assign{Span: span, Lhs: lhs, Rhs: rhs}, nil

	case "local":
		pat, err := f.pat("pat")
		if err != nil {
			return nil, err
		}
		init, err := f.optExpr("init")
		if err != nil {
			return nil, err
		}
		return &hir.Local{Span: span, Pat: pat, Init: init}, nil

	case "expr":
		x, err := f.expr("x")
		if err != nil {
			return nil, err
		}
		return &hir.ExprStmt{Span: span, X: x}, nil

	case "binding":
		name, err := f.str("name")
		if err != nil {
			return nil, err
		}
		mut, err := f.boolean("mut")
		if err != nil {
			return nil, err
		}
		return &hir.BindingPat{Span: span, Name: name, Mut: mut}, nil

	case "enum":
		name, err := f.str("name")
		if err != nil {
			return nil, err
		}
		elems, err := f.pats("elems")
		if err != nil {
			return nil, err
		}
		return &hir.EnumPat{Span: span, Name: name, Elems: elems}, nil

	case "wildcard":
		return &hir.WildcardPat{Span: span}, nil

	default:
		return nil, fmt.Errorf("unknown node kind")
	}
}

// fields is a key → value view over one mapping node.
type fields map[string]*yaml.Node

func nodeFields(n *yaml.Node) (fields, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("node mapping expected at line %d", n.Line)
	}

	f := make(fields, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		f[n.Content[i].Value] = n.Content[i+1]
	}

	return f, nil
}

func (f fields) str(key string) (string, error) {
	v, ok := f[key]
	if !ok {
		return "", fmt.Errorf("missing %q field", key)
	}
	if v.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("field %q must be a scalar", key)
	}

	return v.Value, nil
}

func (f fields) optStr(key string) string {
	v, ok := f[key]
	if !ok || v.Kind != yaml.ScalarNode {
		return ""
	}
	return v.Value
}

func (f fields) boolean(key string) (bool, error) {
	v, ok := f[key]
	if !ok {
		return false, nil
	}
	var res bool
	if err := v.Decode(&res); err != nil {
		return false, fmt.Errorf("field %q: %w", key, err)
	}

	return res, nil
}

func (f fields) span() (hir.Span, error) {
	v, ok := f["span"]
	if !ok {
		return hir.Span{}, nil
	}
	var pair [2]int
	if err := v.Decode(&pair); err != nil {
		return hir.Span{}, fmt.Errorf("span must be a [start, end] pair: %w", err)
	}

	return hir.Span{Start: pair[0], End: pair[1]}, nil
}

func (f fields) expr(key string) (hir.Expr, error) {
	v, ok := f[key]
	if !ok {
		return nil, fmt.Errorf("missing %q field", key)
	}
	return decodeExpr(v, key)
}

func (f fields) optExpr(key string) (hir.Expr, error) {
	v, ok := f[key]
	if !ok {
		return nil, nil
	}
	return decodeExpr(v, key)
}

func (f fields) exprs(key string) ([]hir.Expr, error) {
	items, err := f.seq(key)
	if err != nil || items == nil {
		return nil, err
	}

	out := make([]hir.Expr, 0, len(items))
	for i, item := range items {
		x, err := decodeExpr(item, fmt.Sprintf("%s[%d]", key, i))
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}

	return out, nil
}

func (f fields) stmts(key string) ([]hir.Stmt, error) {
	items, err := f.seq(key)
	if err != nil || items == nil {
		return nil, err
	}

	out := make([]hir.Stmt, 0, len(items))
	for i, item := range items {
		node, err := decodeNode(item)
		if err != nil {
			return nil, err
		}
		s, ok := node.(hir.Stmt)
		if !ok {
			return nil, fmt.Errorf("%s[%d] must be a statement", key, i)
		}
		out = append(out, s)
	}

	return out, nil
}

func (f fields) pat(key string) (hir.Pat, error) {
	v, ok := f[key]
	if !ok {
		return nil, fmt.Errorf("missing %q field", key)
	}
	node, err := decodeNode(v)
	if err != nil {
		return nil, err
	}
	p, ok := node.(hir.Pat)
	if !ok {
		return nil, fmt.Errorf("field %q must be a pattern", key)
	}

	return p, nil
}

func (f fields) pats(key string) ([]hir.Pat, error) {
	items, err := f.seq(key)
	if err != nil || items == nil {
		return nil, err
	}

	out := make([]hir.Pat, 0, len(items))
	for i, item := range items {
		node, err := decodeNode(item)
		if err != nil {
			return nil, err
		}
		p, ok := node.(hir.Pat)
		if !ok {
			return nil, fmt.Errorf("%s[%d] must be a pattern", key, i)
		}
		out = append(out, p)
	}

	return out, nil
}

func (f fields) block(key string) (*hir.Block, error) {
	v, ok := f[key]
	if !ok {
		return nil, fmt.Errorf("missing %q field", key)
	}
	node, err := decodeNode(v)
	if err != nil {
		return nil, err
	}
	b, ok := node.(*hir.Block)
	if !ok {
		return nil, fmt.Errorf("field %q must be a block", key)
	}

	return b, nil
}

func (f fields) arms(key string) ([]hir.Arm, error) {
	items, err := f.seq(key)
	if err != nil || items == nil {
		return nil, err
	}

	out := make([]hir.Arm, 0, len(items))
	for i, item := range items {
		af, err := nodeFields(item)
		if err != nil {
			return nil, err
		}
		span, err := af.span()
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		pat, err := af.pat("pat")
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		body, err := af.expr("body")
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		out = append(out, hir.Arm{Span: span, Pat: pat, Body: body})
	}

	return out, nil
}

func (f fields) fieldInits(key string) ([]hir.FieldInit, error) {
	items, err := f.seq(key)
	if err != nil || items == nil {
		return nil, err
	}

	out := make([]hir.FieldInit, 0, len(items))
	for i, item := range items {
		ff, err := nodeFields(item)
		if err != nil {
			return nil, err
		}
		span, err := ff.span()
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		name, err := ff.str("name")
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		value, err := ff.expr("value")
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		out = append(out, hir.FieldInit{Span: span, Name: name, Value: value})
	}

	return out, nil
}

// seq returns sequence items under key, nil for a missing key.
func (f fields) seq(key string) ([]*yaml.Node, error) {
	v, ok := f[key]
	if !ok {
		return nil, nil
	}
	if v.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("field %q must be a sequence", key)
	}

	return v.Content, nil
}

func decodeExpr(v *yaml.Node, what string) (hir.Expr, error) {
	node, err := decodeNode(v)
	if err != nil {
		return nil, err
	}
	x, ok := node.(hir.Expr)
	if !ok {
		return nil, fmt.Errorf("%s must be an expression", what)
	}

	return x, nil
}
