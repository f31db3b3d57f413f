// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package lz77

import (
	"fmt"
	"strings"
)

// Kind tags the variant of a Factor.
type Kind uint8

const (
	// Literal is a single symbol without an earlier occurrence.
	Literal Kind = iota
	// Copy repeats Length bytes of the output starting at Pos.
	Copy
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Copy:
		return "copy"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Factor is one element of an LZ77 factorization.
//
// A Literal carries Symbol and its output position Pos. A Copy carries the
// source start Pos and Length. NextIndex is the output position of the next
// factor in both cases.
type Factor struct {
	Kind      Kind
	Symbol    byte
	Pos       int
	Length    int
	NextIndex int
}

// NewLiteral returns a Literal factor for symbol b at output position pos.
func NewLiteral(b byte, pos int) Factor {
	return Factor{Kind: Literal, Symbol: b, Pos: pos, NextIndex: pos + 1}
}

// NewCopy returns a Copy factor of length bytes from start, placed at output
// position current.
func NewCopy(start, length, current int) Factor {
	return Factor{Kind: Copy, Pos: start, Length: length, NextIndex: current + length}
}

// Len returns the copy length, 0 for a Literal.
func (f Factor) Len() int {
	switch f.Kind {
	case Literal:
		return 0
	case Copy:
		return f.Length
	default:
		panic(fmt.Sprintf("lz77: unknown factor kind %d", f.Kind))
	}
}

// Covered returns the number of output bytes the factor produces.
func (f Factor) Covered() int {
	switch f.Kind {
	case Literal:
		return 1
	case Copy:
		return f.Length
	default:
		panic(fmt.Sprintf("lz77: unknown factor kind %d", f.Kind))
	}
}

// String renders a Literal as its raw symbol and a Copy as (start, length).
func (f Factor) String() string {
	switch f.Kind {
	case Literal:
		return string([]byte{f.Symbol})
	case Copy:
		return fmt.Sprintf("(%d, %d)", f.Pos, f.Length)
	default:
		return fmt.Sprintf("%v(%d, %d)", f.Kind, f.Pos, f.Length)
	}
}

// Render concatenates the textual forms of factors. It is meant for reading
// and debugging, not as an encoding.
func Render(factors []Factor) string {
	var sb strings.Builder
	for _, f := range factors {
		sb.WriteString(f.String())
	}
	return sb.String()
}
