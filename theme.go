package main

import (
	"image/color"

	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var (
	backgroundColor = color.RGBA{0x0b, 0x14, 0x2a, 0xff}
	rowColor        = color.RGBA{0x1d, 0x2b, 0x4a, 0xff}
	rowMovingColor  = color.RGBA{0x2c, 0x40, 0x6e, 0xff}
	rowSelectColor  = color.RGBA{0x3a, 0x55, 0x8c, 0xff}
	arrowColor      = color.RGBA{0x33, 0x33, 0x33, 0xff}
	arrowOffColor   = color.RGBA{0x22, 0x22, 0x22, 0x80}

	// One tint per avatar slot; players map onto them by number.
	avatarTints = []color.Color{
		colornames.Tomato,
		colornames.Gold,
		colornames.Mediumseagreen,
		colornames.Deepskyblue,
		colornames.Mediumpurple,
		colornames.Hotpink,
	}
)

// solidNineSlice returns a solid color nine-slice for widget backgrounds.
func solidNineSlice(c color.Color) *imageui.NineSlice {
	return imageui.NewNineSliceColor(c)
}

func uiFace() ebtext.Face {
	return ebtext.NewGoXFace(basicfont.Face7x13)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     solidNineSlice(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}),
		Hover:    solidNineSlice(color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 255}),
		Pressed:  solidNineSlice(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 255}),
		Disabled: solidNineSlice(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 160}),
	}
}

func buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Disabled: color.Gray{Y: 120},
	}
}
