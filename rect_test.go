package main

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 15, 25, true},
		{"top left edge", 10, 20, true},
		{"right edge excluded", 40, 25, false},
		{"bottom edge excluded", 15, 60, false},
		{"left of rect", 9, 25, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Fatalf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestArrowRectsSplitRow(t *testing.T) {
	y := rowLayout.SlotY(3)
	up, down := upArrowRect(y), downArrowRect(y)

	if !up.Contains(arrowX+1, y+1) || up.Contains(arrowX+1, y+rowLayout.RowHeight-1) {
		t.Fatalf("up arrow should cover only the top half of the row")
	}
	if !down.Contains(arrowX+1, y+rowLayout.RowHeight-1) || down.Contains(arrowX+1, y+1) {
		t.Fatalf("down arrow should cover only the bottom half of the row")
	}
	if !rowRect(y).Contains(rowX+1, y+1) {
		t.Fatalf("row rect should contain its top left corner")
	}
}
