// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarr

// sais sorts the suffixes of text with SA-IS and returns their start positions
// in lexicographical order.
func sais(text []int32) []int32 {
	switch len(text) {
	case 0:
		return []int32{}
	case 1:
		return []int32{0}
	}
	return saisInto(text, nil, nil, 0)
}

// saisInto is the recursive step of sais.
//   - sa receives the result; nil allocates it.
//   - scratch holds the frequency and bucket tables, reused when large enough.
//   - alpha is the alphabet size scratch was laid out for.
//
// Reduced strings are named with integers up to the number of LMS substrings,
// which may exceed the alphabet of the parent text. The tables are then
// reallocated for the wider alphabet.
func saisInto(text, sa, scratch []int32, alpha int32) []int32 {
	var (
		minChar, maxChar = text[0], text[0]
		l, r, numLMS     int32
		s                bool
	)
	for i := len(text) - 1; i >= 0; i-- {
		l, r = text[i], l
		minChar = min(minChar, l)
		maxChar = max(maxChar, l)
		if l < r {
			s = true
		} else if l > r && s {
			s = false
			numLMS++
		}
	}
	span := maxChar - minChar + 1
	if sa == nil {
		sa = make([]int32, len(text))
		alpha = span
	}
	if span > alpha {
		alpha, scratch = span, nil
	}
	if len(scratch) < int(alpha)*2 {
		scratch = make([]int32, alpha*2)
	}
	ind := induction{
		text:    text,
		sa:      sa,
		freq:    scratch[:span],
		bucket:  scratch[alpha : alpha+span],
		minChar: minChar,
	}
	return ind.sort(numLMS, scratch, alpha)
}

// induction carries the state shared by the induced sorting passes.
// Negative entries in sa mark suffixes that were already induced and still
// have to be restored by the opposite pass.
type induction struct {
	text, sa     []int32
	freq, bucket []int32
	minChar      int32
}

func (ind *induction) sort(numLMS int32, scratch []int32, alpha int32) []int32 {
	ind.count()
	ind.insertLMS()
	if numLMS > 1 {
		// Sort LMS substrings, name them and sort the reduced string.
		ind.induceSubL()
		ind.induceSubS()
		summary := ind.sa[len(ind.sa)-int(numLMS):]
		maxName := summarise(ind.text, ind.sa, summary, numLMS)

		summarySA := ind.sa[:numLMS]
		if maxName < numLMS {
			saisInto(summary, summarySA, scratch, alpha)
			unmap(ind.text, ind.sa, summarySA, summary)
		} else {
			// Every LMS substring is unique: their order is already final.
			copy(summarySA, summary)
			clear(ind.sa[numLMS:])
		}
		ind.expand(summarySA)
	}
	ind.induceL()
	ind.induceS()
	return ind.sa
}

// count fills freq with the number of occurrences of every character.
func (ind *induction) count() {
	clear(ind.freq)
	for _, c := range ind.text {
		ind.freq[c-ind.minChar]++
	}
}

// heads points every non-empty bucket at its first slot.
func (ind *induction) heads() {
	var offset int32
	for c, n := range ind.freq {
		if n > 0 {
			ind.bucket[c] = offset
			offset += n
		}
	}
}

// tails points every non-empty bucket at its last slot.
func (ind *induction) tails() {
	var offset int32
	for c, n := range ind.freq {
		if n > 0 {
			offset += n
			ind.bucket[c] = offset - 1
		}
	}
}

func (ind *induction) pushHead(c, v int32) {
	b := c - ind.minChar
	ind.sa[ind.bucket[b]] = v
	ind.bucket[b]++
}

func (ind *induction) pushTail(c, v int32) {
	b := c - ind.minChar
	ind.sa[ind.bucket[b]] = v
	ind.bucket[b]--
}

// seedLast places the last suffix at the head of its bucket, negated when the
// suffix before it is S-type.
func (ind *induction) seedLast() {
	k := int32(len(ind.text) - 1)
	c := ind.text[k]
	if ind.text[k-1] < c {
		ind.pushHead(c, -k)
		return
	}
	ind.pushHead(c, k)
}

// insertLMS drops every LMS suffix at the tail of its bucket. The leftmost one
// is cleared again when there are several; only the remaining ones seed the
// LMS substring sort.
func (ind *induction) insertLMS() {
	ind.tails()
	var (
		l, r, last int32
		n          int
		s          bool
	)
	for i := int32(len(ind.text) - 1); i >= 0; i-- {
		l, r = ind.text[i], l
		if l < r {
			s = true
		} else if l > r && s {
			s = false
			last = ind.bucket[r-ind.minChar]
			ind.pushTail(r, i+1)
			n++
		}
	}
	if n > 1 {
		ind.sa[last] = 0
	}
}

// induceSubL induces L-type suffixes while sorting LMS substrings.
func (ind *induction) induceSubL() {
	ind.heads()
	ind.seedLast()
	for i := 0; i < len(ind.sa); i++ {
		j := ind.sa[i]
		if j == 0 {
			continue
		}
		if j < 0 {
			ind.sa[i] = -j
			continue
		}
		ind.sa[i] = 0
		k := j - 1
		l, r := ind.text[k-1], ind.text[k]
		if l < r {
			k = -k
		}
		ind.pushHead(r, k)
	}
}

// induceSubS induces S-type suffixes while sorting LMS substrings. Sorted LMS
// positions are collected at the top of sa.
func (ind *induction) induceSubS() {
	ind.tails()
	top := len(ind.sa)
	for i := len(ind.sa) - 1; i >= 0; i-- {
		j := ind.sa[i]
		if j == 0 {
			continue
		}
		ind.sa[i] = 0
		if j < 0 {
			top--
			ind.sa[top] = -j
			continue
		}
		k := j - 1
		l, r := ind.text[k-1], ind.text[k]
		if l > r {
			k = -k
		}
		ind.pushTail(r, k)
	}
}

// induceL induces the final order of L-type suffixes.
func (ind *induction) induceL() {
	ind.heads()
	ind.seedLast()
	for i := 0; i < len(ind.sa); i++ {
		j := ind.sa[i]
		if j <= 0 {
			continue
		}
		k := j - 1
		r := ind.text[k]
		if k > 0 && ind.text[k-1] < r {
			k = -k
		}
		ind.pushHead(r, k)
	}
}

// induceS induces the final order of S-type suffixes.
func (ind *induction) induceS() {
	ind.tails()
	for i := len(ind.sa) - 1; i >= 0; i-- {
		j := ind.sa[i]
		if j >= 0 {
			continue
		}
		j = -j
		ind.sa[i] = j
		k := j - 1
		r := ind.text[k]
		if k > 0 && ind.text[k-1] <= r {
			k = -k
		}
		ind.pushTail(r, k)
	}
}

// expand moves the sorted LMS suffixes to the tails of their buckets.
func (ind *induction) expand(summarySA []int32) {
	ind.count()
	ind.tails()
	for i := len(summarySA) - 1; i >= 0; i-- {
		p := summarySA[i]
		summarySA[i] = 0
		ind.pushTail(ind.text[p], p)
	}
}

// unmap translates the suffix array of the reduced string back to LMS
// positions of text. lms is scratch space of the reduced string's length.
func unmap(text, sa, summarySA, lms []int32) {
	var (
		j    = int32(len(lms))
		l, r int32
		s    bool
	)
	for i := len(text) - 1; i >= 0; i-- {
		l, r = text[i], l
		if l < r {
			s = true
		} else if l > r && s {
			s = false
			j--
			lms[j] = int32(i) + 1
		}
	}
	for i := range lms {
		j = summarySA[i]
		sa[i] = lms[j]
		lms[j] = 0
	}
}

// lengthLMS stores the length of the LMS substring starting at p in sa[p/2].
func lengthLMS(text, sa []int32) {
	var (
		l, r int32
		end  = int32(len(text)) - 1
		s    bool
	)
	for i := len(text) - 1; i >= 0; i-- {
		l, r = text[i], l
		if l < r {
			s = true
		} else if l > r && s {
			s = false
			sa[(i+1)/2] = end - int32(i)
			end = int32(i)
		}
	}
}

func equalLMS(text []int32, a, b, aLen, bLen int32) bool {
	if aLen != bLen {
		return false
	}
	for ; aLen > 0; aLen-- {
		if text[a] != text[b] {
			return false
		}
		a++
		b++
	}
	return true
}

// summarise names the sorted LMS substrings in summary, equal substrings
// sharing a name, and writes the reduced string over summary when some names
// repeat. Returns the largest name.
func summarise(text, sa, summary []int32, numLMS int32) int32 {
	lengthLMS(text, sa)
	name := int32(1)
	prevLen := sa[summary[0]/2]
	sa[summary[0]/2] = name
	for i := 1; i < len(summary); i++ {
		prev, curr := summary[i-1], summary[i]
		currLen := sa[curr/2]
		if !equalLMS(text, prev, curr, prevLen, currLen) {
			name++
		}
		prevLen = currLen
		sa[curr/2] = name
	}
	if name >= numLMS {
		return name
	}
	var j int
	for i := 0; i < len(sa)/2; i++ {
		if n := sa[i]; n > 0 {
			sa[i], summary[j] = 0, n
			j++
		}
	}
	return name
}
