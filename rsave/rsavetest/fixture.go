// Package rsavetest builds savefiles for tests.
package rsavetest

import (
	"github.com/pkg/errors"

	"roguesave/rsave/lbytes"
	"roguesave/rsave/rcave"
	"roguesave/rsave/rheader"
	"roguesave/rsave/rlore"
	"roguesave/rsave/rmonster"
	"roguesave/rsave/robject"
	"roguesave/rsave/rplayer"
	"roguesave/rsave/rquest"
	"roguesave/rsave/rrand"
	"roguesave/rsave/rregion"
	"roguesave/rsave/rstate"
	"roguesave/rsave/rstore"
	"roguesave/rsave/rversion"
)

type (
	Slotted struct {
		Slot   int
		Object robject.Object
	}
	// Fixture is the content of a savefile, laid out the way the file
	// stores it.
	Fixture struct {
		Version  rversion.Version
		Info     rheader.Info
		RNG      rrand.State
		Options  rstate.Options
		Messages []rstate.Message
		Tips     []int

		MonsterLore  []rlore.MonsterLore
		KindLore     []rlore.KindLore
		Quests       []rquest.Quest
		RandartSeed  uint32
		ArtifactLore []rlore.ArtifactLore
		EgoLore      []rlore.EgoLore
		Player       rplayer.Player
		FlavorLore   []rlore.FlavorLore

		Inventory []Slotted
		// Bags is written per bag from 0.6.2 and flattened before.
		Bags      [][]int
		MaxDepths []int
		Stores    []rstore.Store

		Cave         *rcave.Cave
		Objects      []robject.Object
		Monsters     []rmonster.Monster
		Regions      []rregion.Region
		RegionPieces []rregion.Piece

		Ghost string
	}
)

// Encode writes the fixture. Offsets maps every stage name to the
// position of its first byte.
func (f Fixture) Encode() ([]byte, map[string]int, error) {
	w := lbytes.NewWriter()
	gate := f.Version
	offsets := map[string]int{}
	mark := func(stage string) {
		offsets[stage] = len(w.Bytes())
	}

	mark("header")
	rheader.Encode(w, f.Version)
	mark("info")
	if err := rheader.EncodeInfo(w, gate, f.Info); err != nil {
		return nil, nil, err
	}
	mark("rng")
	if err := rrand.Encode(w, gate, f.RNG); err != nil {
		return nil, nil, err
	}
	mark("options")
	if err := lbytes.EncodeSchema(w, gate, rstate.OptionsSchema, f.Options); err != nil {
		return nil, nil, err
	}

	mark("messages")
	w.WriteS16(int16(len(f.Messages)))
	for _, message := range f.Messages {
		w.WriteString(message.Text)
		w.WriteU16(uint16(message.Type))
	}
	if !gate.OlderThan(rversion.V061) {
		mark("tips")
		w.WriteU16(uint16(len(f.Tips)))
		for _, tip := range f.Tips {
			w.WriteU16(uint16(tip))
		}
	}

	mark("monster lore")
	w.WriteU16(uint16(len(f.MonsterLore)))
	for _, lore := range f.MonsterLore {
		if err := rlore.EncodeMonster(w, gate, lore); err != nil {
			return nil, nil, err
		}
	}
	mark("kind lore")
	w.WriteU16(uint16(len(f.KindLore)))
	for _, lore := range f.KindLore {
		if err := rlore.EncodeKind(w, gate, lore); err != nil {
			return nil, nil, err
		}
	}
	mark("quests")
	w.WriteU16(uint16(len(f.Quests)))
	for _, quest := range f.Quests {
		if err := rquest.Encode(w, gate, quest); err != nil {
			return nil, nil, err
		}
	}
	mark("randarts")
	w.WriteU32(f.RandartSeed)
	mark("artifact lore")
	w.WriteU16(uint16(len(f.ArtifactLore)))
	for _, lore := range f.ArtifactLore {
		if err := rlore.EncodeArtifact(w, gate, lore); err != nil {
			return nil, nil, err
		}
	}
	mark("ego lore")
	w.WriteU16(uint16(len(f.EgoLore)))
	for _, lore := range f.EgoLore {
		if err := rlore.EncodeEgo(w, gate, lore); err != nil {
			return nil, nil, err
		}
	}
	mark("player")
	if err := rplayer.Encode(w, gate, f.Player); err != nil {
		return nil, nil, err
	}
	alive := !f.Player.Dead()
	if alive {
		mark("flavor lore")
		w.WriteU16(uint16(len(f.FlavorLore)))
		for _, lore := range f.FlavorLore {
			if err := rlore.EncodeFlavor(w, gate, lore); err != nil {
				return nil, nil, err
			}
		}
	}

	mark("inventory")
	for _, slotted := range f.Inventory {
		w.WriteU16(uint16(slotted.Slot))
		if err := robject.Encode(w, gate, slotted.Object); err != nil {
			return nil, nil, err
		}
	}
	w.WriteU16(lbytes.EndOfList)

	mark("bags")
	f.encodeBags(w)

	if !gate.OlderThan(rversion.V060) {
		mark("max depths")
		w.WriteU16(uint16(len(f.MaxDepths)))
		for _, depth := range f.MaxDepths {
			w.WriteS16(int16(depth))
		}
	}

	if alive {
		mark("stores")
		w.WriteU16(uint16(len(f.Stores)))
		for _, store := range f.Stores {
			if err := rstore.Encode(w, gate, store); err != nil {
				return nil, nil, err
			}
		}
		mark("dungeon")
		if err := f.encodeDungeon(w); err != nil {
			return nil, nil, errors.Wrap(err, "Fixture.Encode error writing dungeon")
		}
	}

	if gate.OlderThan(rversion.V054) {
		mark("ghost")
		if f.Ghost == "" {
			w.WriteU8(0)
		} else {
			w.WriteU8(1)
			w.WriteString(f.Ghost)
		}
	}

	mark("checksums")
	vCheck, _ := w.Checksums()
	w.WriteU32(vCheck)
	_, xCheck := w.Checksums()
	w.WriteU32(xCheck)
	return w.Bytes(), offsets, nil
}

// MustEncode is Encode for tests that cannot fail.
func (f Fixture) MustEncode() []byte {
	bs, _, err := f.Encode()
	if err != nil {
		panic(err)
	}
	return bs
}

func (f Fixture) encodeBags(w *lbytes.Writer) {
	if f.Version.OlderThan(rversion.V062) {
		flat := []int{}
		for _, bag := range f.Bags {
			flat = append(flat, bag...)
		}
		w.WriteU16(uint16(len(flat)))
		for _, value := range flat {
			w.WriteU16(uint16(value))
		}
		return
	}
	w.WriteU16(uint16(len(f.Bags)))
	for _, bag := range f.Bags {
		w.WriteU16(uint16(len(bag)))
		for _, value := range bag {
			w.WriteU16(uint16(value))
		}
	}
}

func (f Fixture) encodeDungeon(w *lbytes.Writer) error {
	gate := f.Version
	cave := f.Cave
	if cave == nil {
		cave = &rcave.Cave{Header: rcave.Header{YMax: rcave.DungeonHgt, XMax: rcave.DungeonWid}}
	}
	if err := rcave.Encode(w, gate, cave); err != nil {
		return err
	}
	w.WriteU16(uint16(len(f.Objects)))
	for _, object := range f.Objects {
		if err := robject.Encode(w, gate, object); err != nil {
			return err
		}
	}
	w.WriteU16(uint16(len(f.Monsters)))
	for _, monster := range f.Monsters {
		if err := rmonster.Encode(w, gate, monster); err != nil {
			return err
		}
	}
	if gate.OlderThan(rversion.V060) {
		return nil
	}
	w.WriteU16(uint16(len(f.Regions)))
	for _, region := range f.Regions {
		if err := rregion.Encode(w, gate, region); err != nil {
			return err
		}
	}
	w.WriteU16(uint16(len(f.RegionPieces)))
	for _, piece := range f.RegionPieces {
		if err := rregion.EncodePiece(w, gate, piece); err != nil {
			return err
		}
	}
	return nil
}
