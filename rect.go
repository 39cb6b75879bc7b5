package main

// Rect is a screen-space area in base resolution pixels.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// upArrowRect and downArrowRect are the click targets of the row at slot y.
func upArrowRect(y float64) Rect {
	return Rect{X: arrowX, Y: y, Width: arrowBtnW, Height: rowLayout.RowHeight / 2}
}

func downArrowRect(y float64) Rect {
	half := rowLayout.RowHeight / 2
	return Rect{X: arrowX, Y: y + half, Width: arrowBtnW, Height: half}
}

func rowRect(y float64) Rect {
	return Rect{X: rowX, Y: y, Width: rowWidth, Height: rowLayout.RowHeight}
}
