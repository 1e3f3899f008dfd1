package analyzer

import (
	"fmt"
	"strings"
)

// gramKeySeparator joins gram labels into a multiset map key. The unit
// separator cannot appear in labels read from the tree notation, and even a
// hostile label only degrades counting, never correctness of bounds.
const gramKeySeparator = "\x1f"

// Gram is an ordered sequence of exactly p+q labels: p labels of a node's
// ancestor chain followed by a q-wide window over its children. Placeholders
// stand in for missing context near the root and at child-list boundaries.
type Gram []string

// String renders the gram as a parenthesized label list, e.g. "(*, a, b)".
func (g Gram) String() string {
	return "(" + strings.Join(g, ", ") + ")"
}

// key returns the multiset map key for the gram.
func (g Gram) key() string {
	return strings.Join(g, gramKeySeparator)
}

// Profile is the pq-gram profile of one tree: an unordered,
// duplicate-preserving multiset of grams for a fixed (p, q). Profiles are
// immutable once built and are only meaningfully comparable against profiles
// built with the same (p, q); enforcing that match is the caller's job.
type Profile struct {
	p, q   int
	grams  []Gram
	counts map[string]int
}

// BuildProfile walks the tree rooted at root and returns its pq-gram profile.
// p is the ancestor window size and q the sibling window size; both must be
// >= 1. The walk fails fast with ErrMalformedTree if it reaches the same
// node twice, which would otherwise loop forever on a cyclic input.
func BuildProfile(root *TreeNode, p, q int) (*Profile, error) {
	if p < 1 || q < 1 {
		return nil, fmt.Errorf("%w: p and q must be >= 1, got p=%d q=%d", ErrInvalidParameter, p, q)
	}
	if root == nil {
		return nil, fmt.Errorf("%w: root must not be nil", ErrInvalidParameter)
	}

	ancestors, err := NewShiftRegister(p)
	if err != nil {
		return nil, err
	}

	profile := &Profile{
		p:      p,
		q:      q,
		counts: make(map[string]int),
	}

	visited := make(map[*TreeNode]bool)
	if err := profile.walk(root, ancestors, visited); err != nil {
		return nil, err
	}
	return profile, nil
}

// walk emits the grams contributed by n and its descendants.
//
// The ancestor register is copied at entry, so the shift of n's label is
// confined to this branch: two sibling subtrees never observe each other's
// ancestor context. This copy-on-branch discipline is the central
// correctness invariant of the construction.
func (pr *Profile) walk(n *TreeNode, ancestors *ShiftRegister, visited map[*TreeNode]bool) error {
	if visited[n] {
		return fmt.Errorf("%w: node %q is reachable through more than one path", ErrMalformedTree, n.Label)
	}
	visited[n] = true

	ancestors = ancestors.Copy()
	ancestors.Shift(n.Label)

	siblings, err := NewShiftRegister(pr.q)
	if err != nil {
		return err
	}

	// A leaf contributes exactly one gram: its ancestor chain against an
	// all-placeholder sibling window.
	if n.IsLeaf() {
		pr.add(ancestors.Concatenate(siblings))
		return nil
	}

	for _, child := range n.Children {
		siblings.Shift(child.Label)
		pr.add(ancestors.Concatenate(siblings))
		if err := pr.walk(child, ancestors, visited); err != nil {
			return err
		}
	}

	// Trailing boundary grams: q-1 placeholder shifts after the last child
	// balance the boundary contributions on both ends of the sibling list.
	for i := 0; i < pr.q-1; i++ {
		siblings.Shift(Placeholder)
		pr.add(ancestors.Concatenate(siblings))
	}
	return nil
}

// add records one gram in the multiset, preserving duplicates.
func (pr *Profile) add(labels []string) {
	gram := Gram(labels)
	pr.grams = append(pr.grams, gram)
	pr.counts[gram.key()]++
}

// P returns the ancestor window size the profile was built with.
func (pr *Profile) P() int { return pr.p }

// Q returns the sibling window size the profile was built with.
func (pr *Profile) Q() int { return pr.q }

// Len returns the total gram count, with multiplicity.
func (pr *Profile) Len() int {
	return len(pr.grams)
}

// Grams returns the grams in emission order. The slice is a copy; the grams
// themselves are shared and must not be mutated.
func (pr *Profile) Grams() []Gram {
	out := make([]Gram, len(pr.grams))
	copy(out, pr.grams)
	return out
}

// Count returns the multiplicity of the given gram in the profile.
func (pr *Profile) Count(g Gram) int {
	return pr.counts[g.key()]
}

// Overlap returns the multiset-intersection cardinality of the two profiles:
// the sum over all distinct grams of min(count here, count there).
func (pr *Profile) Overlap(other *Profile) int {
	overlap := 0
	for key, count := range pr.counts {
		if theirs := other.counts[key]; theirs < count {
			overlap += theirs
		} else {
			overlap += count
		}
	}
	return overlap
}

// EditDistance returns the normalized pq-gram distance between the two
// profiles:
//
//	1 - 2*|A ∩ B| / (|A| + |B|)
//
// where the intersection is taken with multiplicity. The result is symmetric,
// always within [0, 1], zero for identical profiles, and satisfies the
// triangle inequality across profiles built with the same (p, q). Comparing
// profiles built with different gram shapes yields a meaningless number; the
// caller is responsible for keeping (p, q) consistent.
func (pr *Profile) EditDistance(other *Profile) float64 {
	total := pr.Len() + other.Len()
	if total == 0 {
		return 0.0
	}
	return 1.0 - (2.0*float64(pr.Overlap(other)))/float64(total)
}

// Similarity returns 1 - EditDistance(other).
func (pr *Profile) Similarity(other *Profile) float64 {
	return 1.0 - pr.EditDistance(other)
}
