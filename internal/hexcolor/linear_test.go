package hexcolor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	// The sRGB transfer pair is an exact inverse over every byte value
	// under half-away-from-zero rounding.
	for n := 0; n <= 255; n++ {
		assert.Equal(t, uint8(n), Encode(Decode(uint8(n))), "channel %d", n)
	}
}

func TestDecodeBoundaries(t *testing.T) {
	assert.Equal(t, 0.0, Decode(0))
	assert.InDelta(t, 1.0, Decode(255), 1e-12)

	// Below the linear-segment knee the transfer is a plain division.
	assert.InDelta(t, (10.0/255.0)/12.92, Decode(10), 1e-12)
}

func TestEncodeClampsInput(t *testing.T) {
	assert.Equal(t, uint8(0), Encode(-0.5))
	assert.Equal(t, uint8(255), Encode(1.5))
	assert.Equal(t, uint8(0), Encode(0.0))
	assert.Equal(t, uint8(255), Encode(1.0))
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  float64
		delta float64
	}{
		{"black", "#000000", 0.0, 1e-12},
		{"white", "#ffffff", 1.0, 1e-9},
		{"pure red weight", "#ff0000", 0.2126, 1e-9},
		{"pure green weight", "#00ff00", 0.7152, 1e-9},
		{"pure blue weight", "#0000ff", 0.0722, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Luminance(tt.color), tt.delta)
		})
	}
}

func TestContrastRatio(t *testing.T) {
	colors := []Color{"#000000", "#ffffff", "#cc241d", "#458588", "#fbf1c7"}

	t.Run("symmetric", func(t *testing.T) {
		for _, a := range colors {
			for _, b := range colors {
				assert.Equal(t, ContrastRatio(a, b), ContrastRatio(b, a))
			}
		}
	})

	t.Run("self contrast is one", func(t *testing.T) {
		for _, c := range colors {
			assert.InDelta(t, 1.0, ContrastRatio(c, c), 1e-12)
		}
	})

	t.Run("always at least one", func(t *testing.T) {
		for _, a := range colors {
			for _, b := range colors {
				assert.GreaterOrEqual(t, ContrastRatio(a, b), 1.0)
			}
		}
	})

	t.Run("black on white is the maximum", func(t *testing.T) {
		assert.InDelta(t, 21.0, ContrastRatio(Black, White), 1e-6)
	})
}
