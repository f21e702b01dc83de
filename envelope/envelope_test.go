package envelope

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvelope_String(t *testing.T) {
	testCases := []struct {
		name     string
		input    Envelope
		expected string
	}{
		{"Zero", Envelope{}, "[0,0,0,0]"},
		{"Integers", Envelope{-1, 2, -3, 4}, "[-1,2,-3,4]"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.input.String())
		})
	}
}

func TestEnvelope_WidthHeightArea(t *testing.T) {
	testCases := []struct {
		name             string
		input            Envelope
		width, height    float64
		area, margin     float64
	}{
		{"Unit", Envelope{0, 0, 1, 1}, 1, 1, 1, 2},
		{"Rect", Envelope{-1, -2, 3, 4}, 4, 6, 24, 10},
		{"Point", Envelope{5, 5, 5, 5}, 0, 0, 0, 0},
		{"Empty", Empty, 0, 0, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.width, tc.input.Width())
			assert.Equal(t, tc.height, tc.input.Height())
			assert.Equal(t, tc.area, tc.input.Area())
			assert.Equal(t, tc.margin, tc.input.Margin())
		})
	}
}

func TestEnvelope_Centre(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		x, y := Empty.Centre()
		assert.True(t, math.IsNaN(x))
		assert.True(t, math.IsNaN(y))
	})

	x, y := Envelope{0, 0, 2, 4}.Centre()
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 2.0, y)
}

func TestEnvelope_Intersects(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     Envelope
		expected bool
	}{
		{"Zero", Envelope{}, Envelope{}, true},
		{"Empty", Empty, Empty, false},
		{"EmptyVsZero", Empty, Envelope{}, false},
		{"FullyContained", Envelope{-2, -2, 2, 2}, Envelope{-1, -1, 1, 1}, true},
		{"Touching", Envelope{0, 0, 1, 1}, Envelope{1, 1, 2, 2}, true},
		{"Disjoint", Envelope{0, 0, 1, 1}, Envelope{2, 2, 3, 3}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Intersects(tc.b))
			assert.Equal(t, tc.expected, tc.b.Intersects(tc.a))
		})
	}
}

func TestEnvelope_Contains(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     Envelope
		expected bool
	}{
		{"Identical", Envelope{0, 0, 1, 1}, Envelope{0, 0, 1, 1}, true},
		{"StrictlyInside", Envelope{-2, -2, 2, 2}, Envelope{-1, -1, 1, 1}, true},
		{"Outside", Envelope{0, 0, 1, 1}, Envelope{5, 5, 6, 6}, false},
		{"PartialOverlapNotContain", Envelope{0, 0, 1, 1}, Envelope{0.5, 0.5, 2, 2}, false},
		{"EmptyOuter", Empty, Envelope{0, 0, 1, 1}, false},
		{"EmptyInner", Envelope{0, 0, 1, 1}, Empty, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Contains(tc.b))
		})
	}
}

func TestEnvelope_Intersection(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     Envelope
		expected Envelope
	}{
		{"Overlap", Envelope{0, 0, 2, 2}, Envelope{1, 1, 3, 3}, Envelope{1, 1, 2, 2}},
		{"Disjoint", Envelope{0, 0, 1, 1}, Envelope{5, 5, 6, 6}, Empty},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Intersection(tc.b))
		})
	}
}

func TestEnvelope_ExpandToInclude(t *testing.T) {
	testCases := []struct {
		name     string
		e, other Envelope
		expected Envelope
	}{
		{"EmptyByUnit", Empty, Envelope{-1, -1, 1, 1}, Envelope{-1, -1, 1, 1}},
		{"UnitByEmpty", Envelope{-1, -1, 1, 1}, Empty, Envelope{-1, -1, 1, 1}},
		{"GrowMinX", Envelope{-1, -1, 1, 1}, Envelope{-2, 0, 0, 0}, Envelope{-2, -1, 1, 1}},
		{"GrowMaxY", Envelope{-1, -1, 1, 1}, Envelope{0, 0, 0, 2}, Envelope{-1, -1, 1, 2}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := tc.e
			e.ExpandToInclude(tc.other)
			assert.Equal(t, tc.expected, e)
		})
	}
}

func TestEnvelope_EnlargementOf(t *testing.T) {
	e := Envelope{0, 0, 2, 2}
	assert.Equal(t, 0.0, e.EnlargementOf(Envelope{0, 0, 1, 1}))
	assert.Equal(t, 4.0, e.EnlargementOf(Envelope{2, 0, 4, 2}))
}

func TestOf(t *testing.T) {
	assert.Equal(t, Envelope{0, 0, 1, 1}, Of(1, 1, 0, 0))
}
