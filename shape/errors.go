// SPDX-License-Identifier: MIT

package shape

import "errors"

var (
	// ErrEmptyName indicates a dimension without a name.
	ErrEmptyName = errors.New("shape: dimension name is empty")

	// ErrDuplicateDim indicates the same dimension name appears twice.
	ErrDuplicateDim = errors.New("shape: duplicate dimension name")

	// ErrBadLength indicates a dimension length below 1.
	ErrBadLength = errors.New("shape: dimension length must be positive")

	// ErrBadElemSize indicates an element byte width below 1.
	ErrBadElemSize = errors.New("shape: element size must be positive")

	// ErrUnknownDType indicates a dtype string with no known byte width.
	ErrUnknownDType = errors.New("shape: unknown dtype")

	// ErrBadDimSpec indicates a malformed "name=length" list.
	ErrBadDimSpec = errors.New("shape: malformed dimension spec")

	// ErrBadMetadata indicates an unreadable or inconsistent array metadata document.
	ErrBadMetadata = errors.New("shape: invalid array metadata")
)
