package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig() Config {
	return Config{Type: TypeClassic, Color: "#FFD700", Thickness: 15, Opacity: 100, Style: "solid"}
}

func TestHexToRGBA(t *testing.T) {
	c, err := HexToRGBA("#FF8000", 0.5)
	require.NoError(t, err)
	assert.Equal(t, RGBA{R: 255, G: 128, B: 0, A: 0.5}, c)
	assert.Equal(t, "rgba(255, 128, 0, 0.5)", c.String())
}

func TestHexToRGBA_Invalid(t *testing.T) {
	for _, hex := range []string{"", "FFD700", "#FFD70", "#GGGGGG", "#FFD7000"} {
		_, err := HexToRGBA(hex, 1)
		assert.ErrorIs(t, err, ErrInvalidHex, hex)
	}
}

func TestLighten(t *testing.T) {
	got, err := Lighten("#FFD700", 30)
	require.NoError(t, err)
	// 2.55*30 rounds to 77; red and green saturate.
	assert.Equal(t, "#ffff4d", got)

	got, err = Lighten("#000000", 30)
	require.NoError(t, err)
	assert.Equal(t, "#4d4d4d", got)
}

func TestDecorate_BorderStyles(t *testing.T) {
	for _, style := range []string{"solid", "dashed", "dotted", "double", "groove"} {
		cfg := baseConfig()
		cfg.Style = style
		ov, err := Decorate(cfg)
		require.NoError(t, err)
		require.NotNil(t, ov.Border, style)
		assert.Equal(t, BorderStyle(style), ov.Border.Style)
		assert.Equal(t, 15, ov.Border.Width)
		assert.Equal(t, RGBA{R: 255, G: 215, B: 0, A: 1}, ov.Border.Color)
	}
}

func TestDecorate_UnknownStyleHasNoBorder(t *testing.T) {
	cfg := baseConfig()
	cfg.Style = "ridge"
	ov, err := Decorate(cfg)
	require.NoError(t, err)
	assert.Nil(t, ov.Border)
	assert.Contains(t, ov.CSS(), "border: none;")
}

func TestDecorate_OpacityFraction(t *testing.T) {
	cfg := baseConfig()
	cfg.Opacity = 40
	ov, err := Decorate(cfg)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, ov.Border.Color.A, 1e-9)
}

func TestDecorate_FrameTypes(t *testing.T) {
	cfg := baseConfig()

	cfg.Type = TypeRoyal
	ov, err := Decorate(cfg)
	require.NoError(t, err)
	require.NotNil(t, ov.Shadow)
	assert.True(t, ov.Shadow.Inset)
	assert.Equal(t, 7.5, ov.Shadow.Spread)
	assert.Contains(t, ov.CSS(), "box-shadow: 0 0 0 7.5px rgba(255, 215, 0, 0.3) inset;")

	cfg.Type = TypeHeart
	ov, err = Decorate(cfg)
	require.NoError(t, err)
	assert.True(t, ov.Circular)
	assert.Equal(t, "50%", ov.Radius)

	cfg.Type = TypeFloral
	ov, err = Decorate(cfg)
	require.NoError(t, err)
	require.NotNil(t, ov.Shadow)
	assert.False(t, ov.Shadow.Inset)
	assert.Equal(t, 20.0, ov.Shadow.Blur)

	cfg.Type = TypeDiamond
	ov, err = Decorate(cfg)
	require.NoError(t, err)
	require.NotNil(t, ov.Pattern)
	assert.Contains(t, ov.CSS(), "repeating-linear-gradient(45deg, #FFD700, transparent 10px) 30")
}

func TestDecorate_UnknownTypeNoDecoration(t *testing.T) {
	cfg := baseConfig()
	cfg.Type = "sparkle"
	ov, err := Decorate(cfg)
	require.NoError(t, err)
	assert.Nil(t, ov.Shadow)
	assert.Nil(t, ov.Pattern)
	assert.False(t, ov.Circular)
	assert.Equal(t, "15px", ov.Radius)
}

func TestDecorate_InvalidColor(t *testing.T) {
	cfg := baseConfig()
	cfg.Color = "gold"
	_, err := Decorate(cfg)
	assert.Error(t, err)
}
