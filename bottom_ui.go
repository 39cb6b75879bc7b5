package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// BottomUI is the button bar under the rows plus the confirmation toast.
type BottomUI struct {
	UI *ebitenui.UI

	shuffleBtn *widget.Button
	saveBtn    *widget.Button
	discardBtn *widget.Button
	copyBtn    *widget.Button

	toast      *widget.Container
	toastText  *widget.Text
	toastTimer int
}

// NewBottomUI builds the Shuffle / Save / Discard / Copy bar anchored to the
// bottom edge and a hidden toast centered over the rows.
func NewBottomUI(g *Game) *BottomUI {
	var face ebtext.Face = uiFace()
	textColor := buttonTextColor()
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	b := &BottomUI{}
	newButton := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(buttonImage()),
			widget.ButtonOpts.Text(label, &face, textColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(96, 36)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	b.shuffleBtn = newButton("Shuffle", g.shuffle)
	b.saveBtn = newButton("Save", g.save)
	b.discardBtn = newButton("Discard", g.discard)
	b.copyBtn = newButton("Copy", g.copyLineup)
	if !g.clipboardOK {
		b.copyBtn.GetWidget().Disabled = true
	}

	bar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 16, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	bar.AddChild(b.shuffleBtn)
	bar.AddChild(b.saveBtn)
	bar.AddChild(b.discardBtn)
	bar.AddChild(b.copyBtn)

	b.toastText = widget.NewText(
		widget.TextOpts.Text("", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	b.toast = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(baseWidth/2, 64),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	b.toast.AddChild(b.toastText)
	b.toast.GetWidget().Visibility = widget.Visibility_Hide

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(bar)
	root.AddChild(b.toast)

	b.UI = &ebitenui.UI{Container: root}
	return b
}

// ShowToast displays message for frames ticks and locks the bar meanwhile.
func (b *BottomUI) ShowToast(message string, frames int) {
	b.toastText.Label = message
	b.toastTimer = frames
	b.toast.GetWidget().Visibility = widget.Visibility_Show
	b.setBarEnabled(false)
}

func (b *BottomUI) ToastActive() bool {
	return b.toastTimer > 0
}

// Update ticks the toast, then the widgets.
func (b *BottomUI) Update(clipboardOK bool) {
	if b.toastTimer > 0 {
		b.toastTimer--
		if b.toastTimer == 0 {
			b.toast.GetWidget().Visibility = widget.Visibility_Hide
			b.setBarEnabled(true)
			b.copyBtn.GetWidget().Disabled = !clipboardOK
		}
	}
	b.UI.Update()
}

func (b *BottomUI) setBarEnabled(enabled bool) {
	for _, btn := range []*widget.Button{b.shuffleBtn, b.saveBtn, b.discardBtn, b.copyBtn} {
		btn.GetWidget().Disabled = !enabled
	}
}
