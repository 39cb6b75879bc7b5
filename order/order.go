// Package order implements the batting order: a permutation of a roster's player ids.
package order

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/milk9111/battingorder/roster"
)

var (
	ErrWrongLength = errors.New("order: wrong length")
	ErrUnknownID   = errors.New("order: unknown player id")
	ErrDuplicateID = errors.New("order: duplicate player id")
)

// Order is a sequence of player ids; index 0 bats first.
type Order struct {
	ids []roster.ID
}

// Validate reports whether ids is a permutation of the roster's ids.
func Validate(ids []roster.ID, r *roster.Roster) error {
	if len(ids) != r.Len() {
		return fmt.Errorf("%w: got %d, want %d", ErrWrongLength, len(ids), r.Len())
	}
	seen := make(map[roster.ID]struct{}, len(ids))
	for i, id := range ids {
		if !r.Contains(id) {
			return fmt.Errorf("%w %q at position %d", ErrUnknownID, id, i+1)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w %q at position %d", ErrDuplicateID, id, i+1)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// New validates ids against the roster and returns an order holding a copy of them.
func New(ids []roster.ID, r *roster.Roster) (Order, error) {
	if err := Validate(ids, r); err != nil {
		return Order{}, err
	}
	return Order{ids: append([]roster.ID(nil), ids...)}, nil
}

// Default is the roster's creation order.
func Default(r *roster.Roster) Order {
	return Order{ids: r.DefaultOrder()}
}

func (o Order) Len() int { return len(o.ids) }

func (o Order) IDs() []roster.ID {
	return append([]roster.ID(nil), o.ids...)
}

func (o Order) At(i int) roster.ID {
	if i < 0 || i >= len(o.ids) {
		return ""
	}
	return o.ids[i]
}

// Index returns the batting position (0-based) of id, or -1.
func (o Order) Index(id roster.ID) int {
	for i, v := range o.ids {
		if v == id {
			return i
		}
	}
	return -1
}

func (o Order) Clone() Order {
	return Order{ids: o.IDs()}
}

func (o Order) Equal(other Order) bool {
	if len(o.ids) != len(other.ids) {
		return false
	}
	for i := range o.ids {
		if o.ids[i] != other.ids[i] {
			return false
		}
	}
	return true
}

// Swap exchanges positions i and j. Out-of-range or equal indices are a no-op.
func (o Order) Swap(i, j int) bool {
	n := len(o.ids)
	if i < 0 || j < 0 || i >= n || j >= n || i == j {
		return false
	}
	o.ids[i], o.ids[j] = o.ids[j], o.ids[i]
	return true
}

// MoveUp swaps position i with the one before it. No-op at the top.
func (o Order) MoveUp(i int) bool {
	if i <= 0 || i >= len(o.ids) {
		return false
	}
	return o.Swap(i, i-1)
}

// MoveDown swaps position i with the one after it. No-op at the bottom.
func (o Order) MoveDown(i int) bool {
	if i < 0 || i >= len(o.ids)-1 {
		return false
	}
	return o.Swap(i, i+1)
}

// Shuffle permutes the order in place with a Fisher-Yates pass.
func (o Order) Shuffle(rng *rand.Rand) {
	for n := len(o.ids) - 1; n > 0; n-- {
		k := rng.Intn(n + 1)
		o.ids[k], o.ids[n] = o.ids[n], o.ids[k]
	}
}

func (o Order) String() string {
	return fmt.Sprint(o.ids)
}
