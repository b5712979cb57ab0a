package rquest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roguesave/rsave/lbytes"
	"roguesave/rsave/rerr"
	"roguesave/rsave/rversion"
)

func sampleQuest() Quest {
	return Quest{
		Stage: 2,
		Flags: 1,
		Event: []Event{
			{Flags: 0x11, Dungeon: 1, Level: 5, Action: 3, Race: 1, Number: 2, Experience: 150, Gold: 300},
			{Flags: 0x22, Dungeon: 2, Level: 10, Feat: 12, Kind: 7, Artifact: 3, Power: 9, Experience: -1},
		},
	}
}

func TestDecode_Events(t *testing.T) {
	writer := lbytes.NewWriter()
	require.NoError(t, Encode(writer, rversion.Current, sampleQuest()))
	assert.Len(t, writer.Bytes(), 3+2*28)

	quest, err := Decode(lbytes.NewBytesReader(writer.Bytes()), rversion.Current, 4)
	require.NoError(t, err)
	expected := sampleQuest()
	expected.Events = 2
	assert.Equal(t, expected, *quest)
}

func TestDecode_EventsAbsentBefore060(t *testing.T) {
	quest := Quest{Stage: 1, Events: 3}
	writer := lbytes.NewWriter()
	require.NoError(t, Encode(writer, rversion.V054, quest))
	assert.Len(t, writer.Bytes(), 3)

	decoded, err := Decode(lbytes.NewBytesReader(writer.Bytes()), rversion.V054, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, decoded.Events)
	assert.Empty(t, decoded.Event)
}

func TestDecode_TooManyEvents(t *testing.T) {
	writer := lbytes.NewWriter()
	require.NoError(t, Encode(writer, rversion.Current, sampleQuest()))

	_, err := Decode(lbytes.NewBytesReader(writer.Bytes()), rversion.Current, 1)
	var malformed rerr.ErrMalformedField
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "events", malformed.Field)
	assert.Equal(t, int64(2), malformed.Value)
	assert.Equal(t, int64(1), malformed.Limit)
}
