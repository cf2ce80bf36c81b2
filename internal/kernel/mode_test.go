package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/colorconv-mcp/internal/tensor"
)

func TestModes(t *testing.T) {
	all := Modes()
	require.Len(t, all, 21)
	assert.Equal(t, RGB2BGR, all[0])
	assert.Equal(t, GRAY2BGR, all[len(all)-1])

	for _, m := range all {
		assert.True(t, m.Valid(), m.String())
		assert.NotEqual(t, m.Source(), m.Target(), "%s must not be an identity", m)
		assert.NotEqual(t, tensor.Unknown, m.Source(), m.String())
		assert.NotEqual(t, tensor.Unknown, m.Target(), m.String())
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("lab2hsv")
	require.NoError(t, err)
	assert.Equal(t, LAB2HSV, m)
	assert.Equal(t, tensor.LAB, m.Source())
	assert.Equal(t, tensor.HSV, m.Target())

	_, err = ParseMode("RGB2CMYK")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestModeFor(t *testing.T) {
	m, ok := ModeFor(tensor.RGB, tensor.Gray)
	require.True(t, ok)
	assert.Equal(t, RGB2GRAY, m)

	_, ok = ModeFor(tensor.HSV, tensor.LAB)
	assert.False(t, ok)

	_, ok = ModeFor(tensor.RGB, tensor.RGB)
	assert.False(t, ok)
}

func TestModeString_Invalid(t *testing.T) {
	assert.Equal(t, "Mode(0)", Mode(0).String())
	assert.False(t, Mode(0).Valid())
}

func TestBackends(t *testing.T) {
	assert.Contains(t, Backends(), ColorfulName)

	k, err := ByName(ColorfulName)
	require.NoError(t, err)
	assert.Equal(t, ColorfulName, k.Name())

	_, err = ByName("nope")
	assert.ErrorIs(t, err, ErrUnknownBackend)

	assert.Equal(t, ColorfulName, Default().Name())
}
