package lz77

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := map[string]struct {
		factors []Factor
		err     error
	}{
		"empty": {
			factors: nil,
		},
		"banana": {
			factors: FactorizeString("banana"),
		},
		"self overlap": {
			factors: []Factor{NewLiteral('a', 0), NewCopy(0, 5, 1)},
		},
		"literal out of place": {
			factors: []Factor{NewLiteral('a', 0), NewLiteral('b', 2)},
			err:     ErrPosition,
		},
		"empty copy": {
			factors: []Factor{NewLiteral('a', 0), NewCopy(0, 0, 1)},
			err:     ErrEmptyCopy,
		},
		"copy before output": {
			factors: []Factor{NewCopy(0, 1, 0)},
			err:     ErrSourceRange,
		},
		"copy from the future": {
			factors: []Factor{NewLiteral('a', 0), NewCopy(1, 2, 1)},
			err:     ErrSourceRange,
		},
		"negative source": {
			factors: []Factor{NewLiteral('a', 0), NewCopy(-1, 2, 1)},
			err:     ErrSourceRange,
		},
		"wrong next index": {
			factors: []Factor{NewLiteral('a', 0), NewCopy(0, 2, 4)},
			err:     ErrNext,
		},
		"unknown kind": {
			factors: []Factor{NewLiteral('a', 0), {Kind: Kind(7)}},
			err:     ErrUnknownKind,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := Validate(tc.factors)
			if tc.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.err)
		})
	}
}
