// SPDX-License-Identifier: MIT

package ratio

import "strings"

// Unchunked marks a dimension that must stay whole (chunk length = length).
const Unchunked = -1

// MaxRatio bounds ratio values so that they convert to int on every platform.
const MaxRatio = 1 << 30

// AspectRatio is the caller-facing ratio map. Values are float64 so that a
// non-integer request can be represented and rejected rather than silently
// truncated.
type AspectRatio map[string]float64

// Clone returns a shallow copy of a.
func (a AspectRatio) Clone() AspectRatio {
	out := make(AspectRatio, len(a))
	for k, v := range a {
		out[k] = v
	}

	return out
}

// Kind classifies a Diagnostic.
type Kind int

const (
	// Defaulted reports dataset dimensions that received the default ratio.
	Defaulted Kind = iota + 1

	// Trimmed reports ratio entries dropped because the dataset lacks them.
	Trimmed
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Defaulted:
		return "defaulted"
	case Trimmed:
		return "trimmed"
	default:
		return "unknown"
	}
}

// Diagnostic is one non-fatal finding of Normalize.
type Diagnostic struct {
	Kind    Kind
	Dims    []string // sorted
	Message string
}

// Diagnostics is the side channel returned next to a normalized ratio.
type Diagnostics []Diagnostic

// Strings returns the messages in order.
func (d Diagnostics) Strings() []string {
	out := make([]string, len(d))
	for i, x := range d {
		out[i] = x.Message
	}

	return out
}

// String joins all messages with "; ".
func (d Diagnostics) String() string {
	return strings.Join(d.Strings(), "; ")
}
