package main

import (
	"context"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/battingorder/board"
	"github.com/milk9111/battingorder/config"
	"github.com/milk9111/battingorder/lineup"
	"github.com/milk9111/battingorder/prefs"
	"go.uber.org/zap"
)

const (
	baseWidth  = 480
	baseHeight = 720

	toastSaved = "Layout Saved"
	toastReset = "Order Reset"
)

type Game struct {
	ctx    context.Context
	cfg    config.Config
	logger *zap.Logger

	editor  *board.Editor
	rows    *RowPanel
	bottom  *BottomUI
	watcher *prefs.Watcher

	clipboardOK bool
}

func NewGame(ctx context.Context, cfg config.Config, manager *lineup.Manager, watcher *prefs.Watcher, logger *zap.Logger) *Game {
	b := board.NewBoard(manager.Current().IDs(), rowLayout, cfg.SwapFrames, board.EaseByName(cfg.Easing))
	editor := board.NewEditor(manager, b)

	g := &Game{
		ctx:         ctx,
		cfg:         cfg,
		logger:      logger,
		editor:      editor,
		rows:        NewRowPanel(editor, logger),
		watcher:     watcher,
		clipboardOK: initClipboard(logger),
	}
	g.bottom = NewBottomUI(g)
	return g
}

func (g *Game) Update() error {
	g.pollWatcher()
	g.editor.Update()
	g.bottom.Update(g.clipboardOK)

	if g.bottom.ToastActive() {
		return nil
	}

	g.rows.Update()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.save()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.shuffle()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.discard()
	}
	return nil
}

// pollWatcher reloads the order when the prefs file changes on disk, unless
// there are unsaved edits, a swap is still animating, or the change is our
// own save.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case name, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		m := g.editor.Manager()
		if m.Dirty() || g.editor.Board().Animating() {
			g.logger.Debug("prefs changed on disk, keeping unsaved edits", zap.String("file", name))
			return
		}
		stale, err := m.Stale(g.ctx)
		if err != nil {
			g.logger.Warn("reading prefs after change failed", zap.Error(err))
			return
		}
		if !stale {
			return
		}
		if err := m.Reload(g.ctx); err != nil {
			g.logger.Warn("reload after prefs change failed", zap.Error(err))
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.logger.Warn("prefs watcher error", zap.Error(err))
		}
	default:
	}
}

func (g *Game) shuffle() {
	if g.editor.Board().Animating() {
		return
	}
	if err := g.editor.Shuffle(); err != nil {
		g.logger.Error("shuffle failed", zap.Error(err))
	}
}

func (g *Game) save() {
	if g.editor.Board().Animating() {
		return
	}
	if err := g.editor.Save(g.ctx); err != nil {
		g.logger.Error("save failed", zap.Error(err))
		g.bottom.ShowToast("Save failed", g.cfg.ToastFrames)
		return
	}
	g.bottom.ShowToast(toastSaved, g.cfg.ToastFrames)
}

func (g *Game) discard() {
	if err := g.editor.Discard(g.ctx); err != nil {
		g.logger.Error("discard failed", zap.Error(err))
		g.bottom.ShowToast("Reset failed", g.cfg.ToastFrames)
		return
	}
	g.bottom.ShowToast(toastReset, g.cfg.ToastFrames)
}

func (g *Game) copyLineup() {
	if !g.clipboardOK {
		return
	}
	text := formatLineup(g.editor.Manager())
	writeClipboard(text)
	g.logger.Debug("lineup copied to clipboard")
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.rows.Draw(screen)
	g.bottom.UI.Draw(screen)
	if g.editor.Manager().Dirty() {
		drawDirtyMarker(screen)
	}
}

func drawDirtyMarker(screen *ebiten.Image) {
	const size = 8
	vector.FillRect(screen, baseWidth-rowX-size, 20, size, size, color.RGBA{0xff, 0xc1, 0x07, 0xff}, false)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
