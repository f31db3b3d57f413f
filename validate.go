// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package lz77

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownKind = errors.New("lz77: unknown factor kind")
	ErrPosition    = errors.New("lz77: literal is not at the end of the output")
	ErrEmptyCopy   = errors.New("lz77: copy without length")
	ErrSourceRange = errors.New("lz77: copy source is not inside the produced output")
	ErrNext        = errors.New("lz77: next index does not follow the factor")
)

// Validate checks that factors can be replayed by Reconstruct: every Literal
// sits at the current end of the output, every Copy starts inside the output
// produced so far and has a positive length, and every NextIndex points just
// past its factor.
func Validate(factors []Factor) error {
	var produced int
	for i, f := range factors {
		switch f.Kind {
		case Literal:
			if f.Pos != produced {
				return fmt.Errorf("factor %d: position %d, output at %d: %w", i, f.Pos, produced, ErrPosition)
			}
		case Copy:
			if f.Length <= 0 {
				return fmt.Errorf("factor %d: length %d: %w", i, f.Length, ErrEmptyCopy)
			}
			if f.Pos < 0 || f.Pos >= produced {
				return fmt.Errorf("factor %d: source %d, output at %d: %w", i, f.Pos, produced, ErrSourceRange)
			}
		default:
			return fmt.Errorf("factor %d: %v: %w", i, f.Kind, ErrUnknownKind)
		}
		produced += f.Covered()
		if f.NextIndex != produced {
			return fmt.Errorf("factor %d: next index %d, expected %d: %w", i, f.NextIndex, produced, ErrNext)
		}
	}
	return nil
}
