package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldMirror(t *testing.T) {
	assert.True(t, ShouldMirror(MirrorAuto, FacingFront))
	assert.False(t, ShouldMirror(MirrorAuto, FacingBack))
	assert.True(t, ShouldMirror(MirrorOn, FacingFront))
	assert.True(t, ShouldMirror(MirrorOn, FacingBack))
	assert.False(t, ShouldMirror(MirrorOff, FacingFront))
	assert.False(t, ShouldMirror(MirrorOff, FacingBack))
}

func TestMirrorMode_Next(t *testing.T) {
	assert.Equal(t, MirrorOn, MirrorAuto.Next())
	assert.Equal(t, MirrorOff, MirrorOn.Next())
	assert.Equal(t, MirrorAuto, MirrorOff.Next())
}

func TestParseMirrorMode(t *testing.T) {
	m, err := ParseMirrorMode("no-mirror")
	require.NoError(t, err)
	assert.Equal(t, MirrorOff, m)
	assert.Equal(t, "OFF", m.Label())

	_, err = ParseMirrorMode("flip")
	assert.ErrorIs(t, err, ErrMirrorMode)
}
