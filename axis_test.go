package repeat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/repeat"
)

func TestAxisVertical(t *testing.T) {
	a := repeat.NewAxis(true)
	s := repeat.Size{Width: 10, Height: 20}

	assert.True(t, a.Vertical())
	assert.Equal(t, float32(20), a.Primary(s))
	assert.Equal(t, float32(10), a.Secondary(s))
	assert.Equal(t, float32(2), a.PrimaryOf(repeat.Vec2{X: 1, Y: 2}))
	assert.Equal(t, float32(1), a.SecondaryOf(repeat.Vec2{X: 1, Y: 2}))
	assert.Equal(t, repeat.Vec2{X: 6, Y: 3}, a.Point(3, 6))
	assert.Equal(t, repeat.Size{Width: 90, Height: 500}, a.ContentSize(500, 90))
}

func TestAxisHorizontal(t *testing.T) {
	a := repeat.NewAxis(false)
	s := repeat.Size{Width: 10, Height: 20}

	assert.False(t, a.Vertical())
	assert.Equal(t, float32(10), a.Primary(s))
	assert.Equal(t, float32(20), a.Secondary(s))
	assert.Equal(t, float32(1), a.PrimaryOf(repeat.Vec2{X: 1, Y: 2}))
	assert.Equal(t, repeat.Vec2{X: 3, Y: 6}, a.Point(3, 6))
	assert.Equal(t, repeat.Size{Width: 500, Height: 90}, a.ContentSize(500, 90))
}

func TestAxisTransformString(t *testing.T) {
	tests := []struct {
		vertical           bool
		primary, secondary float32
		want               string
	}{
		{true, 3, 6, "translate3d(6px,3px,0)"},
		{false, 3, 6, "translate3d(3px,6px,0)"},
		{true, -20, 0, "translate3d(0px,-20px,0)"},
		{true, 12.5, 0.25, "translate3d(0.25px,12.5px,0)"},
	}
	for _, tt := range tests {
		got := repeat.NewAxis(tt.vertical).TransformString(tt.primary, tt.secondary)
		assert.Equal(t, tt.want, got)
	}
}
