package tree_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malvaren/gentree/tree"
)

// TestParse_Simple covers a leaf and a flat node list.
func TestParse_Simple(t *testing.T) {
	leaf, err := tree.Parse("x")
	require.NoError(t, err)
	assert.Equal(t, "x", leaf.Value())
	assert.True(t, leaf.IsLeaf())

	n, err := tree.Parse("mul(2,x)")
	require.NoError(t, err)
	assert.Equal(t, 3, n.Size())
	assert.Equal(t, "mul", n.Value())
	assert.Equal(t, 2, n.ChildCount())
}

// TestParse_Nested parses a deep tree and checks it via the writer.
func TestParse_Nested(t *testing.T) {
	const s = "0(1(4,5),2(6),3(7(10,11),8,9))"
	n, err := tree.Parse(s)
	require.NoError(t, err)
	assert.Equal(t, 12, n.Size())
	assert.Equal(t, s, n.String(), "writer must reproduce the input")
}

// TestParse_RoundTrip verifies Parse(ParenthesesString(t)) == t structurally.
func TestParse_RoundTrip(t *testing.T) {
	orig := buildExpr()
	parsed, err := tree.Parse(tree.ParenthesesString[string](orig))
	require.NoError(t, err)
	assert.True(t, tree.Equal[string](orig, parsed))
}

// TestParse_Malformed walks the grammar's failure cases.
func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"leading paren", "(a)"},
		{"empty label child", "a()"},
		{"missing close", "a(b"},
		{"missing close after comma", "a(b,"},
		{"extra close", "a(b,c))"},
		{"double comma", "a(b,,c)"},
		{"trailing garbage", "a(b,c)x"},
		{"bare comma", ","},
		{"garbage after child group", "a(b(c)d)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tree.Parse(tc.input)
			assert.ErrorIs(t, err, tree.ErrMalformed, "input %q", tc.input)
		})
	}
}

// TestParseFunc_Mapper covers label conversion and mapper failure.
func TestParseFunc_Mapper(t *testing.T) {
	n, err := tree.ParseFunc("1(2,3)", strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, 1, n.Value())
	c, err := n.ChildNode(1)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Value())

	// Mapper rejection surfaces as ErrMalformed, no partial tree.
	bad, err := tree.ParseFunc("1(2,x)", strconv.Atoi)
	assert.Nil(t, bad)
	assert.ErrorIs(t, err, tree.ErrMalformed)

	_, err = tree.ParseFunc[int]("1", nil)
	assert.True(t, errors.Is(err, tree.ErrNilMapper))
}
