// SPDX-License-Identifier: MIT

package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName is returned by New when the name is blank.
	ErrEmptyName = errors.New("transform: name must be non-empty")

	// ErrNilOperation is returned by New for a nil operation and by Apply on
	// the zero Transform.
	ErrNilOperation = errors.New("transform: operation is nil")

	// ErrEmptyPipeline is returned by Compose and Pipeline without stages.
	ErrEmptyPipeline = errors.New("transform: pipeline has no stages")

	// ErrDuplicate is returned by Register when the name is already taken.
	ErrDuplicate = errors.New("transform: duplicate name")

	// ErrUnknownTransform is returned by Lookup for an unregistered name.
	ErrUnknownTransform = errors.New("transform: unknown transform")
)

// transformErrorf wraps err with a stage or method tag.
func transformErrorf(tag string, err error) error {
	return fmt.Errorf("transform.%s: %w", tag, err)
}
