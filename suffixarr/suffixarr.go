// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package suffixarr builds suffix arrays and LCP arrays of byte strings.
package suffixarr

import (
	"bytes"
	"slices"
	"sort"
)

// SuffixArray holds a text, its suffix array and its LCP array.
type SuffixArray struct {
	text    []byte
	sa, lcp []int32
}

// New creates the suffix array and LCP array of text.
// The text is not copied and must not be modified afterwards.
func New(text []byte) *SuffixArray {
	sa := sais(symbols(text))
	return &SuffixArray{text, sa, LCP(text, sa)}
}

// SA returns the start positions of the suffixes in lexicographical order.
func (sa *SuffixArray) SA() []int32 { return sa.sa }

// LCP returns the LCP array. See the package level LCP function.
func (sa *SuffixArray) LCP() []int32 { return sa.lcp }

// Len returns the length of the text.
func (sa *SuffixArray) Len() int { return len(sa.text) }

// symbols widens text to the int32 alphabet sais works on.
func symbols(text []byte) []int32 {
	out := make([]int32, len(text))
	for i, b := range text {
		out[i] = int32(b)
	}
	return out
}

// comparePrefix compares a suffix with a prefix, treating a suffix that
// starts with prefix as equal.
func comparePrefix(suf, prefix []byte) int {
	if bytes.HasPrefix(suf, prefix) {
		return 0
	}
	return bytes.Compare(suf, prefix)
}

// lookup returns the range of sa whose suffixes start with prefix.
func lookup(text []byte, sa []int32, prefix []byte) []int32 {
	if len(prefix) == 0 {
		return sa
	}
	if len(sa) == 0 {
		return []int32{}
	}
	l := sort.Search(len(sa), func(i int) bool {
		return comparePrefix(text[sa[i]:], prefix) >= 0
	})
	r := l + sort.Search(len(sa)-l, func(i int) bool {
		return comparePrefix(text[sa[l+i]:], prefix) > 0
	})
	return sa[l:r]
}

// Lookup returns the start positions of the suffixes beginning with prefix,
// in lexicographical order. The result aliases the suffix array.
func (sa *SuffixArray) Lookup(prefix []byte) []int32 {
	return lookup(sa.text, sa.sa, prefix)
}

// LookupTextOrder returns the start positions of all occurrences of prefix in
// ascending text order.
func (sa *SuffixArray) LookupTextOrder(prefix []byte) []int32 {
	occ := slices.Clone(lookup(sa.text, sa.sa, prefix))
	slices.Sort(occ)
	return occ
}

// SAIS builds suffix arrays with SA-IS and LCP arrays with Kasai's algorithm.
// The zero value is ready to use and safe for concurrent use.
type SAIS struct{}

// Build returns the suffix array and LCP array of text.
func (SAIS) Build(text []byte) (sa, lcp []int32) {
	sa = sais(symbols(text))
	return sa, LCP(text, sa)
}
