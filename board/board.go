// Package board keeps the 11 on-screen panels in step with the batting order
// and animates the swap of two panels.
package board

import (
	"github.com/milk9111/battingorder/roster"
)

// Layout places panel slots top to bottom.
type Layout struct {
	Top       float64
	RowHeight float64
	Spacing   float64
}

func (l Layout) SlotY(i int) float64 {
	return l.Top + float64(i)*(l.RowHeight+l.Spacing)
}

type swap struct {
	a, b  int
	frame int
	tween Tween
}

// Board maps panel slots to players. A swap moves two panels toward each
// other's slot; their players are exchanged only when the tween finishes.
type Board struct {
	layout Layout
	frames int
	ease   Ease

	panels        []roster.ID
	playerToPanel map[roster.ID]int
	active        *swap
	onSwapped     func(a, b int)
}

func NewBoard(ids []roster.ID, layout Layout, frames int, ease Ease) *Board {
	if ease == nil {
		ease = Linear
	}
	b := &Board{
		layout: layout,
		frames: frames,
		ease:   ease,
	}
	b.Reset(ids)
	return b
}

// OnSwapped registers a callback fired when a swap animation completes.
func (b *Board) OnSwapped(fn func(a, b int)) {
	b.onSwapped = fn
}

// Reset reassigns every panel from ids and cancels a running swap.
func (b *Board) Reset(ids []roster.ID) {
	b.panels = append(b.panels[:0], ids...)
	b.playerToPanel = make(map[roster.ID]int, len(ids))
	for i, id := range ids {
		b.playerToPanel[id] = i
	}
	b.active = nil
}

func (b *Board) Len() int { return len(b.panels) }

func (b *Board) Layout() Layout { return b.layout }

func (b *Board) Animating() bool { return b.active != nil }

// RequestSwap starts animating panels i and j. It refuses while another swap
// is running or when either index is out of range.
func (b *Board) RequestSwap(i, j int) bool {
	if b.active != nil || i == j || !b.inRange(i) || !b.inRange(j) {
		return false
	}
	b.active = &swap{
		a: i,
		b: j,
		tween: Tween{
			From:   0,
			To:     b.layout.SlotY(j) - b.layout.SlotY(i),
			Frames: b.frames,
			Ease:   b.ease,
		},
	}
	if b.frames <= 0 {
		b.finish()
	}
	return true
}

// Update advances a running swap by one frame.
func (b *Board) Update() {
	if b.active == nil {
		return
	}
	b.active.frame++
	if b.active.tween.Done(b.active.frame) {
		b.finish()
	}
}

func (b *Board) finish() {
	s := b.active
	b.active = nil

	idA, idB := b.panels[s.a], b.panels[s.b]
	b.panels[s.a], b.panels[s.b] = idB, idA
	b.playerToPanel[idA] = s.b
	b.playerToPanel[idB] = s.a

	if b.onSwapped != nil {
		b.onSwapped(s.a, s.b)
	}
}

// Offset is the animated displacement of panel i from its slot.
func (b *Board) Offset(i int) float64 {
	if b.active == nil {
		return 0
	}
	d := b.active.tween.At(b.active.frame)
	switch i {
	case b.active.a:
		return d
	case b.active.b:
		return -d
	default:
		return 0
	}
}

// Swapping reports whether panel i is one of the two panels in the running swap.
func (b *Board) Swapping(i int) bool {
	return b.active != nil && (i == b.active.a || i == b.active.b)
}

// PanelY is where panel i is drawn this frame.
func (b *Board) PanelY(i int) float64 {
	return b.layout.SlotY(i) + b.Offset(i)
}

func (b *Board) PlayerAt(i int) roster.ID {
	if !b.inRange(i) {
		return ""
	}
	return b.panels[i]
}

func (b *Board) PanelOf(id roster.ID) (int, bool) {
	i, ok := b.playerToPanel[id]
	return i, ok
}

// IDs lists the players in panel order.
func (b *Board) IDs() []roster.ID {
	return append([]roster.ID(nil), b.panels...)
}

func (b *Board) CanMoveUp(i int) bool {
	return b.active == nil && i > 0 && i < len(b.panels)
}

func (b *Board) CanMoveDown(i int) bool {
	return b.active == nil && i >= 0 && i < len(b.panels)-1
}

// PanelAt returns the slot whose row contains y, ignoring animation.
func (b *Board) PanelAt(y float64) (int, bool) {
	step := b.layout.RowHeight + b.layout.Spacing
	if step <= 0 || y < b.layout.Top {
		return -1, false
	}
	i := int((y - b.layout.Top) / step)
	if !b.inRange(i) || y > b.layout.SlotY(i)+b.layout.RowHeight {
		return -1, false
	}
	return i, true
}

func (b *Board) inRange(i int) bool {
	return i >= 0 && i < len(b.panels)
}
