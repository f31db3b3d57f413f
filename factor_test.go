package lz77

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactor(t *testing.T) {
	lit := NewLiteral('x', 4)
	assert.Equal(t, 5, lit.NextIndex)
	assert.Equal(t, 0, lit.Len())
	assert.Equal(t, 1, lit.Covered())
	assert.Equal(t, "x", lit.String())

	cp := NewCopy(2, 7, 10)
	assert.Equal(t, 17, cp.NextIndex)
	assert.Equal(t, 7, cp.Len())
	assert.Equal(t, 7, cp.Covered())
	assert.Equal(t, "(2, 7)", cp.String())

	assert.Equal(t, "literal", Literal.String())
	assert.Equal(t, "copy", Copy.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
	assert.Panics(t, func() { Factor{Kind: 9}.Covered() })
}

func TestRender(t *testing.T) {
	factors := []Factor{
		NewLiteral('a', 0),
		NewLiteral('(', 1),
		NewCopy(0, 2, 2),
	}
	assert.Equal(t, "a((0, 2)", Render(factors))
	assert.Empty(t, Render(nil))
	assert.Equal(t, "Kind(4)(1, 2)", Factor{Kind: 4, Pos: 1, Length: 2}.String())
}
