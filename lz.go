// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package lz77

import (
	"fmt"
	"math"
)

// DefaultSentinel terminates texts factorized by Factorize. Texts containing
// it are factorized incorrectly.
const DefaultSentinel byte = 0x00

// LCPLen returns the length of the longest common prefix of the suffixes
// starting at a and b, not counting the sentinel.
//
// The cost is linear in the rank distance of a and b.
func (idx *Index) LCPLen(a, b int) int {
	n := idx.SentinelPos()
	if a >= n || b >= n {
		return 0
	}
	if a == b {
		return n - a
	}
	ra, rb := idx.isa[a], idx.isa[b]
	lo, hi := min(ra, rb), max(ra, rb)

	// The LCP of two suffixes is the minimum LCP entry strictly after the
	// smaller rank up to the larger one.
	m := int32(math.MaxInt32)
	for r := lo + 1; r <= hi && m > 0; r++ {
		m = min(m, idx.lcp[r])
	}
	return int(max(m, 0))
}

// Select returns the factor at position k given the text positions of its
// previous and next smaller values. The longer match wins; on a tie the next
// candidate is taken. Without a match the byte at k becomes a Literal.
func (idx *Index) Select(k, prev, next int) Factor {
	prevLen := idx.LCPLen(k, prev)
	nextLen := idx.LCPLen(k, next)

	src, length := next, nextLen
	if prevLen > nextLen {
		src, length = prev, prevLen
	}
	if length == 0 {
		return NewLiteral(idx.text[k], k)
	}
	return NewCopy(src, length, k)
}

// Factorize returns the LZ77 factorization of the indexed text.
func (idx *Index) Factorize() []Factor {
	var factors []Factor
	for k := 0; k < idx.Len(); {
		r := idx.Rank(k)
		prev := idx.Position(idx.PSV(r))
		next := idx.Position(idx.NSV(r))
		f := idx.Select(k, prev, next)
		factors = append(factors, f)
		k = f.NextIndex
	}
	// The last factor is the sentinel.
	return factors[:len(factors)-1]
}

// Factorize returns the LZ77 factorization of text. text must not contain
// DefaultSentinel.
func Factorize(text []byte) []Factor {
	return NewIndex(text, DefaultSentinel, nil).Factorize()
}

// FactorizeWith is Factorize with the suffix and LCP arrays built by b.
func FactorizeWith(text []byte, b Builder) []Factor {
	return NewIndex(text, DefaultSentinel, b).Factorize()
}

// FactorizeString returns the LZ77 factorization of s.
func FactorizeString(s string) []Factor {
	return Factorize([]byte(s))
}

// Reconstruct replays factors and returns the text they describe.
//
// Copies are performed one byte at a time so that a source overlapping the
// bytes being produced repeats them. A Copy reaching past the produced output
// panics; see Validate.
func Reconstruct(factors []Factor) []byte {
	var size int
	for _, f := range factors {
		size += f.Covered()
	}
	out := make([]byte, 0, size)
	for _, f := range factors {
		switch f.Kind {
		case Literal:
			out = append(out, f.Symbol)
		case Copy:
			for i := 0; i < f.Length; i++ {
				out = append(out, out[f.Pos+i])
			}
		default:
			panic(fmt.Sprintf("lz77: unknown factor kind %d", f.Kind))
		}
	}
	return out
}
