// Package roster holds the fixed set of players that a batting order is built from.
package roster

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Size is the number of players on every roster.
const Size = 11

const idPrefix = "P"

var (
	ErrNameCount = errors.New("roster: wrong number of player names")
	ErrBlankName = errors.New("roster: blank player name")
)

// ID is a stable player identifier such as "P01".
type ID string

// NewID returns the identifier for the 1-based player number n.
func NewID(n int) ID {
	return ID(fmt.Sprintf("%s%02d", idPrefix, n))
}

// Number parses the 1-based player number out of the identifier.
func (id ID) Number() (int, bool) {
	s, ok := strings.CutPrefix(string(id), idPrefix)
	if !ok || s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

type Player struct {
	ID          ID
	DisplayName string
}

// Roster is immutable once built. Accessors hand out copies.
type Roster struct {
	players []Player
	index   map[ID]int
}

// New builds the default roster: P01..P11 named "Player 1".."Player 11".
func New() *Roster {
	names := make([]string, Size)
	for i := range names {
		names[i] = fmt.Sprintf("Player %d", i+1)
	}
	r, _ := NewNamed(names)
	return r
}

// NewNamed builds a roster whose display names come from names, in creation order.
func NewNamed(names []string) (*Roster, error) {
	if len(names) != Size {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrNameCount, len(names), Size)
	}

	r := &Roster{
		players: make([]Player, 0, Size),
		index:   make(map[ID]int, Size),
	}
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w at position %d", ErrBlankName, i+1)
		}
		id := NewID(i + 1)
		r.index[id] = len(r.players)
		r.players = append(r.players, Player{ID: id, DisplayName: name})
	}
	return r, nil
}

func (r *Roster) Len() int {
	if r == nil {
		return 0
	}
	return len(r.players)
}

func (r *Roster) Players() []Player {
	if r == nil {
		return nil
	}
	return append([]Player(nil), r.players...)
}

func (r *Roster) IDs() []ID {
	if r == nil {
		return nil
	}
	ids := make([]ID, 0, len(r.players))
	for _, p := range r.players {
		ids = append(ids, p.ID)
	}
	return ids
}

// DefaultOrder returns the identifiers in creation order.
func (r *Roster) DefaultOrder() []ID {
	return r.IDs()
}

func (r *Roster) Lookup(id ID) (Player, bool) {
	if r == nil {
		return Player{}, false
	}
	i, ok := r.index[id]
	if !ok {
		return Player{}, false
	}
	return r.players[i], true
}

func (r *Roster) Contains(id ID) bool {
	_, ok := r.Lookup(id)
	return ok
}

// AvatarIndex maps a player to one of n avatar slots: (number-1) % n.
// It returns -1 when n is not positive or the id has no number.
func AvatarIndex(id ID, n int) int {
	if n <= 0 {
		return -1
	}
	num, ok := id.Number()
	if !ok {
		return -1
	}
	return (num - 1) % n
}
