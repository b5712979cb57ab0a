package rlore

import (
	"github.com/pkg/errors"

	"roguesave/rsave/lbytes"
	"roguesave/rsave/rinfo"
	"roguesave/rsave/rversion"
)

// DecodeMonster reads the lore of one race. Flags the race does not
// have are forgotten, and the race's population cap comes from the lore.
func DecodeMonster(reader *lbytes.Reader, gate rversion.Gate, race *rinfo.MonsterRace) (*MonsterLore, error) {
	lore, err := lbytes.DecodeSchema[MonsterLore](reader, gate, MonsterSchema)
	if err != nil {
		return nil, errors.Wrap(err, "rlore.DecodeMonster error")
	}
	// Saves before 0.5.1 only counted kills.
	if gate.OlderThan(rversion.V051) {
		lore.TBlows, lore.TDamage = lore.TKills, lore.TKills
	}
	if race != nil {
		for i := range lore.Flags {
			lore.Flags[i] &= race.Flags[i]
		}
		race.MaxNum = lore.MaxNum
	}
	return lore, nil
}

func DecodeKind(reader *lbytes.Reader, gate rversion.Gate) (*KindLore, error) {
	lore, err := lbytes.DecodeSchema[KindLore](reader, gate, KindSchema)
	if err != nil {
		return nil, errors.Wrap(err, "rlore.DecodeKind error")
	}
	return lore, nil
}

func DecodeArtifact(reader *lbytes.Reader, gate rversion.Gate) (*ArtifactLore, error) {
	lore, err := lbytes.DecodeSchema[ArtifactLore](reader, gate, ArtifactSchema)
	if err != nil {
		return nil, errors.Wrap(err, "rlore.DecodeArtifact error")
	}
	return lore, nil
}

func DecodeEgo(reader *lbytes.Reader, gate rversion.Gate) (*EgoLore, error) {
	lore, err := lbytes.DecodeSchema[EgoLore](reader, gate, EgoSchema)
	if err != nil {
		return nil, errors.Wrap(err, "rlore.DecodeEgo error")
	}
	return lore, nil
}

func DecodeFlavor(reader *lbytes.Reader, gate rversion.Gate) (*FlavorLore, error) {
	lore, err := lbytes.DecodeSchema[FlavorLore](reader, gate, FlavorSchema)
	if err != nil {
		return nil, errors.Wrap(err, "rlore.DecodeFlavor error")
	}
	return lore, nil
}

func (l KindLore) Aware() bool {
	return l.Flags&KindAware != 0
}

func (l KindLore) Tried() bool {
	return l.Flags&KindTried != 0
}

func (l KindLore) EverSeen() bool {
	return l.Flags&KindEverSeen != 0
}
