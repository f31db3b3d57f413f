package suffixarr

import (
	"bytes"
	"math/rand"
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genRandText(size int, alpha int) []byte {
	input := make([]byte, size)
	for i := 0; i < size; i++ {
		input[i] = byte(rand.Intn(alpha))
	}
	return input
}

func makeSA(text []byte) []int32 {
	sa := make([]int32, len(text))
	for i := 0; i < len(text); i++ {
		sa[i] = int32(i)
	}
	sort.Slice(sa, func(i int, j int) bool {
		return bytes.Compare(text[sa[i]:], text[sa[j]:]) < 0
	})
	return sa
}

func makeLCP(text []byte, sa []int32) []int32 {
	lcp := make([]int32, len(sa))
	for i := range sa {
		if i == 0 {
			lcp[i] = Undefined
			continue
		}
		a, b := text[sa[i-1]:], text[sa[i]:]
		var h int32
		for int(h) < len(a) && int(h) < len(b) && a[h] == b[h] {
			h++
		}
		lcp[i] = h
	}
	return lcp
}

func TestSAIS(t *testing.T) {
	tests := map[string]struct {
		input []byte
	}{
		"empty string": {
			input: []byte{},
		},
		"single character": {
			input: []byte{100},
		},
		"same characters": {
			input: []byte("aaaaaaaaaaaaaaaaaaaaa"),
		},
		"1 LMS": {
			input: []byte("aabab"),
		},
		"2 LMS": {
			input: []byte("aababab"),
		},
		"banana": {
			input: []byte("banana"),
		},
		"banana with sentinel": {
			input: []byte("banana\x00"),
		},
		"repeated pattern": {
			input: []byte{1, 2, 1, 2, 1, 2, 1, 2},
		},
		"reverse sorted": {
			input: []byte{5, 4, 3, 2, 1},
		},
		"abracadabra": {
			input: []byte("abracadabra"),
		},
		"ACGTGCCTAGCCTACCGTGCC": {
			input: []byte("ACGTGCCTAGCCTACCGTGCC"),
		},
		"min/max edges": {
			input: []byte{0, 255},
		},
		"alternating pattern": {
			input: []byte{3, 1, 3, 1, 3, 1},
		},
		"zero characters": {
			input: []byte{0, 0, 0, 1, 1, 1},
		},
		"long random string binary": {
			input: genRandText(1000, 2),
		},
		"long random string 4": {
			input: genRandText(1000, 4),
		},
		"long random string 8": {
			input: genRandText(1000, 255),
		},
		"long random string 256": {
			input: append(genRandText(4000, 256), 0),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, makeSA(tc.input), sais(symbols(tc.input)))
		})
	}
}

func TestLCP(t *testing.T) {
	tests := map[string]struct {
		text []byte
		exp  []int32
	}{
		"empty": {
			text: []byte{},
			exp:  []int32{},
		},
		"single": {
			text: []byte("a"),
			exp:  []int32{Undefined},
		},
		"banana$": {
			text: []byte("banana$"),
			exp:  []int32{Undefined, 0, 1, 3, 0, 0, 2},
		},
		"abcabb$": {
			text: []byte("abcabb$"),
			exp:  []int32{Undefined, 0, 2, 0, 1, 1, 0},
		},
		"aaaa$": {
			text: []byte("aaaa$"),
			exp:  []int32{Undefined, 0, 1, 2, 3},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.exp, LCP(tc.text, makeSA(tc.text)))
		})
	}
}

func TestLCPRandom(t *testing.T) {
	for _, alpha := range []int{1, 2, 3, 26, 256} {
		text := genRandText(500, alpha)
		sa := makeSA(text)
		assert.Equal(t, makeLCP(text, sa), LCP(text, sa), "alphabet %d", alpha)
	}
}

func TestBuild(t *testing.T) {
	assert := require.New(t)

	text := []byte("mississippi\x00")
	sa, lcp := SAIS{}.Build(text)
	assert.Equal([]int32{11, 10, 7, 4, 1, 0, 9, 8, 6, 3, 5, 2}, sa)
	assert.Equal([]int32{Undefined, 0, 1, 1, 4, 0, 0, 1, 0, 2, 1, 3}, lcp)

	s := New(text)
	assert.Equal(sa, s.SA())
	assert.Equal(lcp, s.LCP())
	assert.Equal(len(text), s.Len())
}

func TestLookup(t *testing.T) {
	tests := map[string]struct {
		text,
		prefix []byte
		lexOrdExp,
		textOrdExp []int32
	}{
		"empty text": {
			text:       []byte{},
			prefix:     []byte("a"),
			lexOrdExp:  []int32{},
			textOrdExp: []int32{},
		},
		"empty prefix": {
			text:       []byte("aaaaaaa"),
			prefix:     []byte{},
			lexOrdExp:  []int32{6, 5, 4, 3, 2, 1, 0},
			textOrdExp: []int32{0, 1, 2, 3, 4, 5, 6},
		},
		"same characters": {
			text:       []byte("aaaaaaa"),
			prefix:     []byte("a"),
			lexOrdExp:  []int32{6, 5, 4, 3, 2, 1, 0},
			textOrdExp: []int32{0, 1, 2, 3, 4, 5, 6},
		},
		"banana": {
			text:       []byte("banana"),
			prefix:     []byte("banana"),
			lexOrdExp:  []int32{0},
			textOrdExp: []int32{0},
		},
		"ana": {
			text:       []byte("banana"),
			prefix:     []byte("ana"),
			lexOrdExp:  []int32{3, 1},
			textOrdExp: []int32{1, 3},
		},
		"na": {
			text:       []byte("banana"),
			prefix:     []byte("na"),
			lexOrdExp:  []int32{4, 2},
			textOrdExp: []int32{2, 4},
		},
		"a": {
			text:       []byte("banana"),
			prefix:     []byte("a"),
			lexOrdExp:  []int32{5, 3, 1},
			textOrdExp: []int32{1, 3, 5},
		},
		"longer than text": {
			text:       []byte("banana"),
			prefix:     []byte("bananas"),
			lexOrdExp:  []int32{},
			textOrdExp: []int32{},
		},
		"not found": {
			text:       []byte("banana"),
			prefix:     []byte("ab"),
			lexOrdExp:  []int32{},
			textOrdExp: []int32{},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			s := New(tc.text)
			assert.Equal(t, tc.lexOrdExp, s.Lookup(tc.prefix))
			assert.Equal(t, tc.textOrdExp, s.LookupTextOrder(tc.prefix))
		})
	}
}

func BenchmarkSAIS(b *testing.B) {
	for _, size := range []int{1 << 10, 1 << 16, 1 << 20} {
		text := genRandText(size, 4)
		b.Run(strconv.Itoa(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			for i := 0; i < b.N; i++ {
				SAIS{}.Build(text)
			}
		})
	}
}
