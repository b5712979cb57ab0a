package rrand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roguesave/rsave/lbytes"
	"roguesave/rsave/rinfo"
	"roguesave/rsave/rversion"
)

func TestDecode(t *testing.T) {
	state := State{Place: 17}
	for i := range state.Table {
		state.Table[i] = uint32(i*2654435761) ^ 0xDEADBEEF
	}
	writer := lbytes.NewWriter()
	require.NoError(t, Encode(writer, rversion.Current, state))

	decoded, err := Decode(lbytes.NewBytesReader(writer.Bytes()), rversion.Current)
	require.NoError(t, err)
	assert.Equal(t, state, *decoded)
}

func TestDecode_ClampsPlace(t *testing.T) {
	writer := lbytes.NewWriter()
	require.NoError(t, Encode(writer, rversion.Current, State{Place: 500}))

	decoded, err := Decode(lbytes.NewBytesReader(writer.Bytes()), rversion.Current)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), decoded.Place)
}

func TestQuick_Deterministic(t *testing.T) {
	q1 := NewQuick(42)
	q2 := NewQuick(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, q1.Div(6), q2.Div(6))
	}
	assert.Equal(t, uint32(0), NewQuick(1).Div(1))
}

func TestArtifactNames(t *testing.T) {
	newArtifacts := func() []rinfo.Artifact {
		return []rinfo.Artifact{
			{},
			{Name: "the Phial of Galadriel"},
			{Name: "random blade", Random: true},
			{Name: "random shield", Random: true},
		}
	}
	first := newArtifacts()
	second := newArtifacts()
	ArtifactNames(1234, first)
	ArtifactNames(1234, second)

	assert.Equal(t, first, second)
	assert.Equal(t, "the Phial of Galadriel", first[1].Name)
	assert.NotEqual(t, "random blade", first[2].Name)
	assert.Regexp(t, `^'[A-Z][a-z]+'$`, first[2].Name)

	other := newArtifacts()
	ArtifactNames(4321, other)
	assert.NotEqual(t, first[2].Name+first[3].Name, other[2].Name+other[3].Name)
}
