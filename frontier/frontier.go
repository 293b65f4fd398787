// Package frontier keeps the K highest scoring candidates seen during a search.
package frontier

import (
	"errors"
	"fmt"
	"golang.org/x/exp/slices"
	"math"
)

var ErrBadWidth = errors.New("frontier width must be > 0")

// Entry is a ranked candidate. Slots that have never been filled hold an
// Entry with Valid == false and a score of -Inf.
type Entry[T any] struct {
	Score float64
	Value T
	Valid bool
}

// Frontier holds up to K entries in descending score order.
type Frontier[T any] struct {
	entries []Entry[T]
}

// New returns a Frontier of width k with every slot unset.
func New[T any](k int) (*Frontier[T], error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadWidth, k)
	}
	f := &Frontier[T]{entries: make([]Entry[T], k)}
	for i := range f.entries {
		f.entries[i].Score = math.Inf(-1)
	}
	return f, nil
}

// Add inserts v if score is strictly greater than the Kth best score, evicting
// the previous Kth entry. A candidate that ties an entry already held is ranked
// after it. Returns true if v was kept.
func (f *Frontier[T]) Add(score float64, v T) bool {
	if math.IsNaN(score) || score <= f.Worst() {
		return false
	}

	k := len(f.entries)
	i := k - 1
	for i > 0 && score > f.entries[i-1].Score {
		i--
	}
	f.entries = slices.Insert(f.entries[:k-1], i, Entry[T]{Score: score, Value: v, Valid: true})
	return true
}

// Worst is the score of the Kth entry.
func (f *Frontier[T]) Worst() float64 {
	return f.entries[len(f.entries)-1].Score
}

// Best returns the top entry, and false if nothing has been added.
func (f *Frontier[T]) Best() (Entry[T], bool) {
	return f.entries[0], f.entries[0].Valid
}

// Width is K.
func (f *Frontier[T]) Width() int {
	return len(f.entries)
}

// Len is the number of filled slots.
func (f *Frontier[T]) Len() int {
	var n int
	for i := range f.entries {
		if f.entries[i].Valid {
			n++
		}
	}
	return n
}

// Snapshot returns a copy of all K slots in rank order, unset slots included.
func (f *Frontier[T]) Snapshot() []Entry[T] {
	return slices.Clone(f.entries)
}

// Values returns the filled entries' values in rank order.
func (f *Frontier[T]) Values() []T {
	ans := make([]T, 0, len(f.entries))
	for i := range f.entries {
		if f.entries[i].Valid {
			ans = append(ans, f.entries[i].Value)
		}
	}
	return ans
}
