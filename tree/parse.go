// Package tree: recursive-descent reader for the parentheses grammar.
package tree

import (
	"errors"
	"fmt"
)

// Sentinel errors for parsing.
var (
	// ErrMalformed is returned when a parentheses string violates the
	// grammar or the label mapper rejects a label.
	ErrMalformed = errors.New("tree: malformed parentheses string")

	// ErrNilMapper is returned when ParseFunc is given a nil label mapper.
	ErrNilMapper = errors.New("tree: nil label mapper")
)

// Parse reads a tree from its parentheses representation
//
//	node := label ( '(' node (',' node)* ')' )?
//
// where label is any non-empty substring free of '(', ')' and ','.
// A string like "mul(div(2,x),y)" parses into the corresponding
// three-level tree. Returns ErrMalformed on unbalanced parentheses,
// empty labels, or trailing garbage; no partial tree is returned.
func Parse(s string) (*Node[string], error) {
	p := parser{input: s}
	n, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	if p.pos != len(s) {
		return nil, fmt.Errorf("%w: unexpected %q at position %d", ErrMalformed, s[p.pos], p.pos)
	}
	return n, nil
}

// ParseFunc reads a tree like Parse and converts every label with mapper.
// Mapper failures surface as ErrMalformed; no partial tree is returned.
func ParseFunc[T any](s string, mapper func(string) (T, error)) (*Node[T], error) {
	if mapper == nil {
		return nil, ErrNilMapper
	}
	raw, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return mapNode(raw, mapper)
}

func mapNode[T any](n *Node[string], mapper func(string) (T, error)) (*Node[T], error) {
	v, err := mapper(n.value)
	if err != nil {
		return nil, fmt.Errorf("%w: label %q: %v", ErrMalformed, n.value, err)
	}
	out := New(v)
	for _, c := range n.children {
		mc, err := mapNode(c, mapper)
		if err != nil {
			return nil, err
		}
		out.children = append(out.children, mc)
	}
	return out, nil
}

// parser holds the cursor state of one Parse call.
type parser struct {
	input string
	pos   int
}

// parseNode reads one node production at the cursor.
func (p *parser) parseNode() (*Node[string], error) {
	label := p.readLabel()
	if label == "" {
		return nil, fmt.Errorf("%w: empty label at position %d", ErrMalformed, p.pos)
	}
	n := New(label)
	if p.pos >= len(p.input) || p.input[p.pos] != '(' {
		return n, nil
	}
	p.pos++ // consume '('
	for {
		child, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		n.Attach(child)

		if p.pos >= len(p.input) {
			return nil, fmt.Errorf("%w: unbalanced parentheses", ErrMalformed)
		}
		switch p.input[p.pos] {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return n, nil
		default:
			return nil, fmt.Errorf("%w: expected ',' or ')' at position %d", ErrMalformed, p.pos)
		}
	}
}

// readLabel advances the cursor over the longest run of non-special
// characters and returns it. May be empty.
func (p *parser) readLabel() string {
	start := p.pos
	for p.pos < len(p.input) && !special(p.input[p.pos]) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func special(b byte) bool {
	return b == '(' || b == ')' || b == ','
}
