// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package lz77 computes the LZ77 factorization of a text from its suffix array
// and reconstructs texts from factorizations.
package lz77

import (
	"fmt"

	"github.com/nekitakamenev/lz77/suffixarr"
)

const (
	// NoPrevious is the PSV entry of a rank without an earlier rank holding a
	// smaller text position. It is the rank of the sentinel suffix, which
	// shares no prefix with any other suffix. The rank of text position 0 also
	// keeps it as its NSV entry.
	NoPrevious = 0

	// UndefinedLCP is the LCP entry at rank 0.
	UndefinedLCP = int(suffixarr.Undefined)

	// flushPosition is the text position read for the rank one past the end
	// of the suffix array while the PSV/NSV tables are built. Every rank still
	// waiting for its NSV receives NoNext, except the rank of position 0.
	flushPosition = 0
)

// Builder constructs the suffix array and the LCP array of a text that ends
// with a unique smallest sentinel.
//
// sa is a permutation of the positions of text in lexicographical order of
// their suffixes. lcp[i] is the longest common prefix of the suffixes at
// sa[i-1] and sa[i]; lcp[0] is ignored.
type Builder interface {
	Build(text []byte) (sa, lcp []int32)
}

// Index is a text augmented with a sentinel, its suffix array, inverse suffix
// array, LCP array and the PSV/NSV tables. It is immutable once built.
type Index struct {
	text     []byte // text followed by the sentinel
	sentinel byte
	sa, isa  []int32
	lcp      []int32
	psv, nsv []int32
}

// NewIndex appends sentinel to text and builds the index. The sentinel must
// not occur in text and must be smaller than every byte of it; this is not
// checked. A nil builder selects suffixarr.SAIS.
func NewIndex(text []byte, sentinel byte, b Builder) *Index {
	if b == nil {
		b = suffixarr.SAIS{}
	}
	s := make([]byte, len(text)+1)
	copy(s, text)
	s[len(text)] = sentinel

	sa, lcp := b.Build(s)
	idx := &Index{
		text:     s,
		sentinel: sentinel,
		sa:       sa,
		isa:      invert(sa),
		lcp:      lcp,
	}
	idx.psv, idx.nsv = smallerValues(sa)
	return idx
}

func invert(sa []int32) []int32 {
	isa := make([]int32, len(sa))
	for r, p := range sa {
		isa[p] = int32(r)
	}
	return isa
}

// smallerValues computes, for every rank i, psv[i], the nearest rank before i
// whose suffix starts earlier in the text, and nsv[i], the nearest such rank
// after i.
//
// Ranks are scanned left to right. Ranks still waiting for their NSV form a
// chain linked through psv with decreasing text positions, so every rank is
// pushed and popped once. Rank 0 is the bottom of the chain and never popped.
func smallerValues(sa []int32) (psv, nsv []int32) {
	m := len(sa)
	psv = make([]int32, m)
	nsv = make([]int32, m)

	at := func(r int) int32 {
		if r >= m {
			return flushPosition
		}
		return sa[r]
	}

	for i := 1; i <= m; i++ {
		j := i - 1
		for at(i) < sa[j] {
			nsv[j] = int32(i)
			j = int(psv[j])
			if j == NoPrevious {
				break
			}
		}
		if i < m {
			psv[i] = int32(j)
		}
	}
	return psv, nsv
}

// Len returns the length of the augmented text, sentinel included.
func (idx *Index) Len() int { return len(idx.text) }

// SentinelPos returns the text position of the sentinel.
func (idx *Index) SentinelPos() int { return len(idx.text) - 1 }

// EmptySuffix returns the position of the conceptually empty suffix that
// follows the sentinel. Out-of-range ranks resolve to it.
func (idx *Index) EmptySuffix() int { return len(idx.text) }

// NoNext returns the NSV entry of ranks without a later rank holding a smaller
// text position: the rank one past the end of the suffix array.
func (idx *Index) NoNext() int { return len(idx.sa) }

// Text returns the text without the sentinel.
func (idx *Index) Text() []byte { return idx.text[:len(idx.text)-1] }

// Sentinel returns the sentinel symbol.
func (idx *Index) Sentinel() byte { return idx.sentinel }

// Rank returns the suffix array index of the suffix starting at pos.
func (idx *Index) Rank(pos int) int { return int(idx.isa[pos]) }

// Position returns the text position of the suffix at rank. Ranks outside the
// suffix array resolve to EmptySuffix.
func (idx *Index) Position(rank int) int {
	if rank < 0 || rank >= len(idx.sa) {
		return idx.EmptySuffix()
	}
	return int(idx.sa[rank])
}

// LCP returns the LCP array entry at rank.
func (idx *Index) LCP(rank int) int { return int(idx.lcp[rank]) }

// PSV returns the previous smaller value of rank.
func (idx *Index) PSV(rank int) int { return int(idx.psv[rank]) }

// NSV returns the next smaller value of rank.
func (idx *Index) NSV(rank int) int { return int(idx.nsv[rank]) }

// Suffix returns the suffix at rank, sentinel included. It is empty for ranks
// outside the suffix array.
func (idx *Index) Suffix(rank int) []byte {
	return idx.text[idx.Position(rank):]
}

func (idx *Index) String() string {
	return fmt.Sprintf("%q, SA: %v, ISA: %v, LCP: %v, PSV: %v, NSV: %v",
		idx.text, idx.sa, idx.isa, idx.lcp, idx.psv, idx.nsv)
}
