// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarr

// Undefined is the LCP entry at rank 0, whose suffix has no predecessor.
const Undefined int32 = -1

// LCP computes the LCP array of text with Kasai's algorithm: lcp[i] is the
// length of the longest common prefix of the suffixes at sa[i-1] and sa[i],
// and lcp[0] is Undefined.
func LCP(text []byte, sa []int32) []int32 {
	n := len(sa)
	lcp := make([]int32, n)
	if n == 0 {
		return lcp
	}
	rank := make([]int32, n)
	for i, p := range sa {
		rank[p] = int32(i)
	}
	lcp[0] = Undefined

	// h drops by at most one between consecutive text positions.
	var h int
	for i := 0; i < n; i++ {
		r := rank[i]
		if r == 0 {
			h = 0
			continue
		}
		j := int(sa[r-1])
		for i+h < n && j+h < n && text[i+h] == text[j+h] {
			h++
		}
		lcp[r] = int32(h)
		if h > 0 {
			h--
		}
	}
	return lcp
}
