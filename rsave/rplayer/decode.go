package rplayer

import (
	"github.com/pkg/errors"

	"roguesave/rsave/lbytes"
	"roguesave/rsave/rerr"
	"roguesave/rsave/rversion"
)

// Decode reads the player record. A hit point table longer than the
// level cap is fatal.
func Decode(reader *lbytes.Reader, gate rversion.Gate, maxLevel int) (*Player, error) {
	player, err := lbytes.DecodeSchema[Player](reader, gate, Schema)
	if err != nil {
		return nil, errors.Wrap(err, "rplayer.Decode error")
	}

	hpCount, err := reader.ReadU16()
	if err != nil {
		return nil, errors.Wrap(err, "rplayer.Decode error reading hp_count")
	}
	if int(hpCount) > maxLevel {
		return nil, rerr.Malformed("player", "hp_count", int64(hpCount), int64(maxLevel))
	}
	player.HP = make([]int, 0, hpCount)
	for i := 0; i < int(hpCount); i++ {
		hp, err := reader.ReadS16()
		if err != nil {
			return nil, errors.Wrapf(err, "rplayer.Decode error reading hp %d", i)
		}
		player.HP = append(player.HP, int(hp))
	}

	spells, err := lbytes.DecodeSchema[Spells](reader, gate, SpellSchema)
	if err != nil {
		return nil, errors.Wrap(err, "rplayer.Decode error reading spells")
	}
	player.Spells = *spells
	return player, nil
}

func (p Player) Dead() bool {
	return p.IsDead != 0
}

func Encode(writer *lbytes.Writer, gate rversion.Gate, player Player) error {
	if err := lbytes.EncodeSchema(writer, gate, Schema, player); err != nil {
		return errors.Wrap(err, "rplayer.Encode error")
	}
	writer.WriteU16(uint16(len(player.HP)))
	for _, hp := range player.HP {
		writer.WriteS16(int16(hp))
	}
	if err := lbytes.EncodeSchema(writer, gate, SpellSchema, player.Spells); err != nil {
		return errors.Wrap(err, "rplayer.Encode error writing spells")
	}
	return nil
}
