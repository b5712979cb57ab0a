package rsave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roguesave/rsave/rerr"
	"roguesave/rsave/rinfo"
	"roguesave/rsave/rsavetest"
)

func corruptDungeon() rsavetest.Fixture {
	fixture := rsavetest.Sample()
	fixture.Cave.Feat[40][40] = 200
	return fixture
}

func TestLoad_RecoversWithThreeYes(t *testing.T) {
	tables, err := rinfo.Default()
	require.NoError(t, err)
	prompter := &scriptedPrompter{answers: []bool{true, true, true}}

	state, err := Load(corruptDungeon().MustEncode(), tables, Config{VerifyChecksums: true, Prompter: prompter})
	require.NoError(t, err)

	assert.Equal(t, RecoveryQuestions, prompter.asked)
	require.Len(t, prompter.messages, 1)
	assert.Contains(t, prompter.messages[0], "feat")

	assert.True(t, state.CharacterLoaded)
	assert.False(t, state.CharacterDungeon)
	assert.True(t, state.Player.Leaving)
	assert.Nil(t, state.Cave)
	assert.Equal(t, 0, state.Objects.Len())
	assert.Equal(t, 0, state.Monsters.Len())
	assert.Equal(t, 0, state.Tables.Races[1].CurNum)
	assert.NotEmpty(t, state.Warnings)

	intact, err := Load(rsavetest.Sample().MustEncode(), tables, DefaultConfig())
	require.NoError(t, err)
	expectedPlayer := intact.Player
	expectedPlayer.Leaving = true
	assert.Equal(t, expectedPlayer, state.Player)
	assert.Equal(t, intact.Inventory, state.Inventory)
	assert.Equal(t, intact.Stores, state.Stores)
	assert.Equal(t, intact.Bags, state.Bags)
}

func TestLoad_RecoveryDeclined(t *testing.T) {
	tables, err := rinfo.Default()
	require.NoError(t, err)

	for declined := range RecoveryQuestions {
		answers := []bool{true, true, true}
		answers[declined] = false
		prompter := &scriptedPrompter{answers: answers}

		state, err := Load(corruptDungeon().MustEncode(), tables, Config{Prompter: prompter})
		assert.Nil(t, state)
		var corrupt rerr.ErrCorruptDungeon
		require.ErrorAs(t, err, &corrupt)
		assert.True(t, rerr.IsRecoverable(err))
		assert.Len(t, prompter.asked, declined+1)
	}
}

func TestLoad_NoPrompterMeansNo(t *testing.T) {
	tables, err := rinfo.Default()
	require.NoError(t, err)

	_, err = Load(corruptDungeon().MustEncode(), tables, DefaultConfig())
	var malformed rerr.ErrMalformedField
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "feat", malformed.Field)
	assert.True(t, rerr.IsRecoverable(err))
}

func TestLoad_FailuresBeforeDungeonAreNotRecoverable(t *testing.T) {
	tables, err := rinfo.Default()
	require.NoError(t, err)
	fixture := rsavetest.Sample()
	fixture.Inventory[0].Object.KIdx = 500
	prompter := &scriptedPrompter{answers: []bool{true, true, true}}

	_, err = Load(fixture.MustEncode(), tables, Config{Prompter: prompter})
	require.Error(t, err)
	assert.False(t, rerr.IsRecoverable(err))
	assert.Empty(t, prompter.asked)
}

func TestLoad_ChecksumDetectsEveryFlip(t *testing.T) {
	tables, err := rinfo.Default()
	require.NoError(t, err)
	bs, offsets, err := rsavetest.Sample().Encode()
	require.NoError(t, err)

	_, err = Load(bs, tables, DefaultConfig())
	require.NoError(t, err)

	for i := offsets[StageInfo]; i < len(bs); i++ {
		flipped := append([]byte{}, bs...)
		flipped[i] ^= 0x10
		_, err := Load(flipped, tables, DefaultConfig())
		assert.Error(t, err, "flip at %d", i)
	}
}

func TestLoad_ChecksumMismatch(t *testing.T) {
	tables, err := rinfo.Default()
	require.NoError(t, err)
	bs, offsets, err := rsavetest.Sample().Encode()
	require.NoError(t, err)

	tests := map[string]int{
		"seed":       offsets[StageRandarts],
		"message":    offsets[StageMessages] + 4,
		"v checksum": offsets[StageChecksums],
		"x checksum": len(bs) - 1,
	}
	for name, i := range tests {
		flipped := append([]byte{}, bs...)
		flipped[i] ^= 0x01

		_, err := Load(flipped, tables, DefaultConfig())
		var mismatch rerr.ErrChecksumMismatch
		assert.ErrorAs(t, err, &mismatch, name)

		_, err = Load(flipped, tables, Config{VerifyChecksums: false})
		assert.NoError(t, err, name)
	}
}
