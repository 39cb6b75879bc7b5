package board

import (
	"context"

	"github.com/milk9111/battingorder/lineup"
)

// Editor routes row commands to the manager and mirrors them on the board.
// The manager is updated first; the panels follow once the swap animation ends.
type Editor struct {
	manager *lineup.Manager
	board   *Board
}

func NewEditor(m *lineup.Manager, b *Board) *Editor {
	e := &Editor{manager: m, board: b}
	m.Observe(func(ev lineup.Event) {
		switch ev.Type {
		case lineup.EventLoaded, lineup.EventShuffled, lineup.EventDiscarded:
			b.Reset(m.Current().IDs())
		}
	})
	return e
}

func (e *Editor) Manager() *lineup.Manager { return e.manager }
func (e *Editor) Board() *Board            { return e.board }

// MoveUp is ignored while a swap is animating.
func (e *Editor) MoveUp(i int) bool {
	if !e.board.CanMoveUp(i) || !e.manager.MoveUp(i) {
		return false
	}
	return e.board.RequestSwap(i, i-1)
}

// MoveDown is ignored while a swap is animating.
func (e *Editor) MoveDown(i int) bool {
	if !e.board.CanMoveDown(i) || !e.manager.MoveDown(i) {
		return false
	}
	return e.board.RequestSwap(i, i+1)
}

func (e *Editor) Shuffle() error {
	return e.manager.Shuffle()
}

func (e *Editor) Save(ctx context.Context) error {
	return e.manager.Save(ctx)
}

func (e *Editor) Discard(ctx context.Context) error {
	return e.manager.Discard(ctx)
}

func (e *Editor) Update() {
	e.board.Update()
}

// InSync reports whether the panels show the working order. It is false
// only while a swap is animating.
func (e *Editor) InSync() bool {
	cur := e.manager.Current().IDs()
	panels := e.board.IDs()
	if len(cur) != len(panels) {
		return false
	}
	for i := range cur {
		if cur[i] != panels[i] {
			return false
		}
	}
	return true
}
