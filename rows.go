package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/battingorder/board"
	"github.com/milk9111/battingorder/roster"
	"go.uber.org/zap"
)

const (
	rowX      = 24
	rowWidth  = baseWidth - 2*rowX
	avatarW   = 28
	arrowBtnW = 28
	arrowX    = rowX + rowWidth - arrowBtnW - 6
)

var rowLayout = board.Layout{Top: 48, RowHeight: 44, Spacing: 6}

// RowPanel draws the 11 player rows and turns clicks on their up/down
// buttons into editor moves.
type RowPanel struct {
	editor   *board.Editor
	logger   *zap.Logger
	selected int
}

func NewRowPanel(editor *board.Editor, logger *zap.Logger) *RowPanel {
	return &RowPanel{editor: editor, logger: logger}
}

func (rp *RowPanel) Selected() int { return rp.selected }

// Update handles mouse and keyboard input for the rows.
func (rp *RowPanel) Update() {
	rp.updateKeys()

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := cursorPosition()
	idx, ok := rp.editor.Board().PanelAt(my)
	if !ok {
		return
	}

	y := rowLayout.SlotY(idx)
	switch {
	case upArrowRect(y).Contains(mx, my):
		rp.logger.Debug("row up click", zap.Int("panel", idx))
		rp.moveUp(idx)
		return
	case downArrowRect(y).Contains(mx, my):
		rp.logger.Debug("row down click", zap.Int("panel", idx))
		rp.moveDown(idx)
		return
	case !rowRect(y).Contains(mx, my):
		return
	}
	rp.selected = idx
}

func (rp *RowPanel) updateKeys() {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		if shift {
			rp.moveUp(rp.selected)
		} else if rp.selected > 0 {
			rp.selected--
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		if shift {
			rp.moveDown(rp.selected)
		} else if rp.selected < rp.editor.Board().Len()-1 {
			rp.selected++
		}
	}
}

func (rp *RowPanel) moveUp(i int) {
	if rp.editor.MoveUp(i) && rp.selected == i {
		rp.selected = i - 1
	}
}

func (rp *RowPanel) moveDown(i int) {
	if rp.editor.MoveDown(i) && rp.selected == i {
		rp.selected = i + 1
	}
}

// Draw renders the rows at their animated positions; input is handled in Update.
func (rp *RowPanel) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, "Batting order", rowX, 16)

	b := rp.editor.Board()
	r := rp.editor.Manager().Roster()

	// Draw resting rows first so the two moving panels pass over them.
	for pass := 0; pass < 2; pass++ {
		for i := 0; i < b.Len(); i++ {
			moving := b.Swapping(i)
			if moving != (pass == 1) {
				continue
			}
			rp.drawRow(screen, i, r, moving)
		}
	}
}

func (rp *RowPanel) drawRow(screen *ebiten.Image, i int, r *roster.Roster, moving bool) {
	b := rp.editor.Board()
	y := float32(b.PanelY(i))
	h := float32(rowLayout.RowHeight)

	bg := rowColor
	switch {
	case moving:
		bg = rowMovingColor
	case i == rp.selected:
		bg = rowSelectColor
	}
	vector.FillRect(screen, rowX, y, rowWidth, h, bg, false)

	id := b.PlayerAt(i)
	if idx := roster.AvatarIndex(id, len(avatarTints)); idx >= 0 {
		vector.FillRect(screen, rowX+44, y+8, avatarW, h-16, avatarTints[idx], false)
	}

	name := string(id)
	if p, ok := r.Lookup(id); ok {
		name = p.DisplayName
	}
	// The number labels the slot, so it stays put while the panel slides.
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%2d.", i+1), rowX+8, int(rowLayout.SlotY(i)+rowLayout.RowHeight/2-8))
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  (%s)", name, id), rowX+44+avatarW+12, int(y+h/2-8))

	rp.drawArrow(screen, arrowX, y+2, "^", b.CanMoveUp(i))
	rp.drawArrow(screen, arrowX, y+h/2+1, "v", b.CanMoveDown(i))
}

func (rp *RowPanel) drawArrow(screen *ebiten.Image, x, y float32, label string, enabled bool) {
	var c color.Color = arrowColor
	if !enabled {
		c = arrowOffColor
	}
	vector.FillRect(screen, x, y, arrowBtnW, float32(rowLayout.RowHeight/2)-3, c, false)
	if enabled {
		ebitenutil.DebugPrintAt(screen, label, int(x)+arrowBtnW/2-3, int(y)+2)
	}
}

// cursorPosition maps the cursor into the fixed base resolution.
func cursorPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}
