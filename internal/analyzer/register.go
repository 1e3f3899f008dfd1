package analyzer

import "fmt"

// Placeholder is the reserved label that marks "no ancestor/sibling here".
// It fills freshly created registers and pads sibling windows at both ends
// of a child list. It is never a valid node label.
const Placeholder = "*"

// ShiftRegister is a fixed-capacity FIFO window over labels. It serves both
// as the ancestor window and the sibling window during profile construction.
//
// A register must never be shared across recursive branches: use Copy before
// handing it to a child traversal so that sibling subtrees cannot observe
// each other's shifts.
type ShiftRegister struct {
	labels []string
}

// NewShiftRegister creates a register of the given capacity with every slot
// holding the placeholder label.
func NewShiftRegister(capacity int) (*ShiftRegister, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: register capacity must be >= 1, got %d", ErrInvalidParameter, capacity)
	}

	labels := make([]string, capacity)
	for i := range labels {
		labels[i] = Placeholder
	}
	return &ShiftRegister{labels: labels}, nil
}

// Capacity returns the fixed capacity of the register.
func (r *ShiftRegister) Capacity() int {
	return len(r.labels)
}

// Shift removes the oldest (leftmost) label and appends the new label on the
// right. The register length is invariant under Shift.
func (r *ShiftRegister) Shift(label string) {
	copy(r.labels, r.labels[1:])
	r.labels[len(r.labels)-1] = label
}

// Concatenate returns the contents of this register followed by the contents
// of the other as a fresh slice. Neither register is mutated, and the result
// does not alias either backing array.
func (r *ShiftRegister) Concatenate(other *ShiftRegister) []string {
	out := make([]string, 0, len(r.labels)+len(other.labels))
	out = append(out, r.labels...)
	out = append(out, other.labels...)
	return out
}

// Copy returns an independent register with the same contents. Mutating the
// copy never affects the original.
func (r *ShiftRegister) Copy() *ShiftRegister {
	labels := make([]string, len(r.labels))
	copy(labels, r.labels)
	return &ShiftRegister{labels: labels}
}

// Contents returns a copy of the current register contents, oldest first.
func (r *ShiftRegister) Contents() []string {
	out := make([]string, len(r.labels))
	copy(out, r.labels)
	return out
}
