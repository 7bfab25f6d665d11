package sfv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonDisplayStringEncodesPercentNotBackslash(t *testing.T) {
	ds, err := NewDisplayString(`50%\discount`)
	require.NoError(t, err)
	assert.Equal(t, `%"50%25\discount"`, canonBareValue(ds))
}

func TestDisplayStringRoundTripsThroughPercentSign(t *testing.T) {
	ds, err := NewDisplayString("50%")
	require.NoError(t, err)
	it := NewBareItem(ds)

	wire := SerializeItem(it)
	assert.Equal(t, `%"50%25"`, wire)

	parsed, err := ParseItem([]byte(wire))
	require.NoError(t, err)
	got, ok := parsed.BareValue().(DisplayString)
	require.True(t, ok)
	assert.Equal(t, "50%", got.Value())
}

func TestDisplayStringBackslashIsOrdinary(t *testing.T) {
	ds, err := NewDisplayString(`a\b`)
	require.NoError(t, err)
	it := NewBareItem(ds)

	wire := SerializeItem(it)
	assert.Equal(t, `%"a\b"`, wire)

	parsed, err := ParseItem([]byte(wire))
	require.NoError(t, err)
	got, ok := parsed.BareValue().(DisplayString)
	require.True(t, ok)
	assert.Equal(t, `a\b`, got.Value())
}
