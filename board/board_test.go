package board

import (
	"testing"

	"github.com/milk9111/battingorder/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLayout = Layout{Top: 40, RowHeight: 40, Spacing: 8}

func TestTween(t *testing.T) {
	cases := []struct {
		name  string
		tween Tween
		frame int
		want  float64
	}{
		{"linear_start", Tween{From: 0, To: 48, Frames: 4, Ease: Linear}, 0, 0},
		{"linear_half", Tween{From: 0, To: 48, Frames: 4, Ease: Linear}, 2, 24},
		{"linear_end", Tween{From: 0, To: 48, Frames: 4, Ease: Linear}, 4, 48},
		{"clamped_past_end", Tween{From: 0, To: 48, Frames: 4}, 9, 48},
		{"clamped_before_start", Tween{From: 10, To: 20, Frames: 4}, -3, 10},
		{"eased_half", Tween{From: 0, To: 48, Frames: 4, Ease: EaseInOut}, 2, 24},
		{"eased_quarter", Tween{From: 0, To: 64, Frames: 4, Ease: EaseInOut}, 1, 10},
		{"negative_direction", Tween{From: 0, To: -48, Frames: 2}, 1, -24},
		{"zero_frames", Tween{From: 0, To: 5, Frames: 0}, 0, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, c.tween.At(c.frame), 1e-9)
		})
	}
}

func TestEaseByName(t *testing.T) {
	assert.InDelta(t, EaseInOut(0.25), EaseByName("ease-in-out")(0.25), 1e-12)
	assert.InDelta(t, 0.25, EaseByName("linear")(0.25), 1e-12)
	assert.InDelta(t, 0.25, EaseByName("bogus")(0.25), 1e-12)
	assert.InDelta(t, 0.25, EaseByName("smoothstep")(0.25), 1e-12)
}

func TestBoardSwapAnimation(t *testing.T) {
	ids := roster.New().DefaultOrder()
	b := NewBoard(ids, testLayout, 4, Linear)

	var swapped [][2]int
	b.OnSwapped(func(a, c int) { swapped = append(swapped, [2]int{a, c}) })

	require.True(t, b.RequestSwap(3, 2))
	assert.True(t, b.Animating())
	assert.Zero(t, b.Offset(3), "no displacement before the first tick")
	assert.True(t, b.Swapping(3))
	assert.True(t, b.Swapping(2))
	assert.False(t, b.Swapping(4))
	assert.False(t, b.RequestSwap(5, 6), "second swap refused while animating")
	assert.False(t, b.CanMoveUp(5))
	assert.False(t, b.CanMoveDown(5))

	b.Update()
	b.Update()
	// Halfway: panels 3 and 2 have each covered half of one row step.
	assert.InDelta(t, testLayout.SlotY(3)-24, b.PanelY(3), 1e-9)
	assert.InDelta(t, testLayout.SlotY(2)+24, b.PanelY(2), 1e-9)
	assert.InDelta(t, testLayout.SlotY(7), b.PanelY(7), 1e-9)
	// Players are not exchanged until the tween ends.
	assert.Equal(t, roster.ID("P04"), b.PlayerAt(3))

	b.Update()
	b.Update()
	assert.False(t, b.Animating())
	assert.False(t, b.Swapping(3))
	assert.Equal(t, roster.ID("P03"), b.PlayerAt(3))
	assert.Equal(t, roster.ID("P04"), b.PlayerAt(2))
	assert.Equal(t, [][2]int{{3, 2}}, swapped)

	i, ok := b.PanelOf("P04")
	require.True(t, ok)
	assert.Equal(t, 2, i)
	i, ok = b.PanelOf("P03")
	require.True(t, ok)
	assert.Equal(t, 3, i)
	assert.InDelta(t, testLayout.SlotY(3), b.PanelY(3), 1e-9)
}

func TestBoardRejectsBadSwaps(t *testing.T) {
	b := NewBoard(roster.New().DefaultOrder(), testLayout, 4, nil)
	assert.False(t, b.RequestSwap(0, 0))
	assert.False(t, b.RequestSwap(-1, 0))
	assert.False(t, b.RequestSwap(10, 11))
	assert.False(t, b.Animating())
}

func TestBoardInstantSwap(t *testing.T) {
	b := NewBoard(roster.New().DefaultOrder(), testLayout, 0, nil)
	require.True(t, b.RequestSwap(0, 1))
	assert.False(t, b.Animating())
	assert.Equal(t, roster.ID("P02"), b.PlayerAt(0))
}

func TestBoardResetCancelsSwap(t *testing.T) {
	ids := roster.New().DefaultOrder()
	b := NewBoard(ids, testLayout, 10, Linear)
	require.True(t, b.RequestSwap(0, 1))
	b.Update()

	reversed := make([]roster.ID, len(ids))
	for i, id := range ids {
		reversed[len(ids)-1-i] = id
	}
	b.Reset(reversed)
	assert.False(t, b.Animating())
	assert.Equal(t, roster.ID("P11"), b.PlayerAt(0))
	i, _ := b.PanelOf("P01")
	assert.Equal(t, 10, i)
}

func TestBoardButtonStates(t *testing.T) {
	b := NewBoard(roster.New().DefaultOrder(), testLayout, 4, Linear)
	assert.False(t, b.CanMoveUp(0))
	assert.True(t, b.CanMoveDown(0))
	assert.True(t, b.CanMoveUp(10))
	assert.False(t, b.CanMoveDown(10))
	assert.False(t, b.CanMoveUp(11))
	assert.Equal(t, roster.ID(""), b.PlayerAt(11))
}

func TestPanelAt(t *testing.T) {
	b := NewBoard(roster.New().DefaultOrder(), testLayout, 4, Linear)
	cases := []struct {
		y    float64
		want int
		ok   bool
	}{
		{39, -1, false},
		{40, 0, true},
		{80, 0, true},
		{84, -1, false}, // in the spacing gap
		{88, 1, true},
		{testLayout.SlotY(10) + 1, 10, true},
		{testLayout.SlotY(11) + 1, -1, false},
	}
	for _, c := range cases {
		i, ok := b.PanelAt(c.y)
		assert.Equal(t, c.ok, ok, "y=%v", c.y)
		assert.Equal(t, c.want, i, "y=%v", c.y)
	}
}
