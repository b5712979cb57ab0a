package rmonster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roguesave/rsave/lbytes"
	"roguesave/rsave/rversion"
)

func TestDecode_TimersByVersion(t *testing.T) {
	monster := Monster{
		RIdx: 5, Fy: 12, Fx: 40, HP: 30, MaxHP: 35, CSleep: 100, MSpeed: 110,
		Energy: 7, Stunned: 1, Confused: 2, MonFear: 3, Slowed: 4, Hasted: 5,
		Blind: 6, Cut: 7, Poisoned: 8, MFlag: 0x10, Smart: 0xF00D,
	}
	tests := map[string]struct {
		gate    rversion.Version
		cleared func(m *Monster)
	}{
		"oldest": {rversion.Oldest, func(m *Monster) {
			m.Slowed, m.Hasted, m.Blind, m.Cut, m.Poisoned, m.Smart = 0, 0, 0, 0, 0, 0
		}},
		"0.5.2": {rversion.V052, func(m *Monster) {
			m.Blind, m.Cut, m.Poisoned, m.Smart = 0, 0, 0, 0
		}},
		"0.6.1": {rversion.V061, func(m *Monster) {
			m.Smart = 0
		}},
		"current": {rversion.Current, func(m *Monster) {}},
	}
	for name, test := range tests {
		writer := lbytes.NewWriter()
		require.NoError(t, Encode(writer, test.gate, monster))
		writer.WriteU8(0x5A)

		reader := lbytes.NewBytesReader(writer.Bytes())
		decoded, err := Decode(reader, test.gate)
		require.NoError(t, err, name)

		expected := monster
		test.cleared(&expected)
		assert.Equal(t, expected, *decoded, name)

		tail, err := reader.ReadU8()
		require.NoError(t, err, name)
		assert.Equal(t, uint8(0x5A), tail, name)
	}
}

func TestDecode_Truncated(t *testing.T) {
	_, err := Decode(lbytes.NewBytesReader([]byte{1, 2, 3}), rversion.Current)
	assert.Error(t, err)
}
