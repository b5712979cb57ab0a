package rsave

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"roguesave/rsave/rcave"
	"roguesave/rsave/rerr"
	"roguesave/rsave/rlink"
	"roguesave/rsave/rmonster"
	"roguesave/rsave/robject"
	"roguesave/rsave/rregion"
	"roguesave/rsave/rversion"
)

// dungeon reads the level. Any failure here makes the dungeon corrupt,
// and the player may choose to give it up and keep the character.
func (l *loader) dungeon() error {
	err := l.decodeDungeon()
	if err == nil {
		l.state.CharacterDungeon = true
		return nil
	}

	corrupt := rerr.ErrCorruptDungeon{Cause: err}
	if !l.confirmRecovery(corrupt) {
		return corrupt
	}
	l.state.DiscardDungeon()
	l.state.Warn("dungeon discarded: %v", err)
	return errDungeonDiscarded
}

// confirmRecovery shows the failure and asks every recovery question;
// it stops at the first no.
func (l *loader) confirmRecovery(corrupt rerr.ErrCorruptDungeon) bool {
	prompter := l.config.Prompter
	if prompter == nil {
		glog.Warningf("%v; no one to ask about recovery", corrupt)
		return false
	}
	prompter.Message(corrupt.Error())
	for _, question := range RecoveryQuestions {
		if !prompter.Confirm(question) {
			glog.V(1).Infof("recovery declined at %q", question)
			return false
		}
	}
	return true
}

func (l *loader) decodeDungeon() error {
	tables := l.state.Tables
	cave, err := rcave.Decode(l.reader, l.version, tables)
	if err != nil {
		return err
	}

	count, err := l.readCount(StageDungeon, "o_max", l.state.Objects.Max()-1)
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		object, err := robject.Decode(l.reader, l.version, tables)
		if err != nil {
			return errors.Wrapf(err, "reading object %d", i)
		}
		if object.IsEmpty() {
			continue
		}
		if _, err := l.state.PlaceObject(*object); err != nil {
			return errors.Wrapf(err, "placing object %d", i)
		}
	}

	count, err = l.readCount(StageDungeon, "m_max", l.state.Monsters.Max()-1)
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		monster, err := rmonster.Decode(l.reader, l.version)
		if err != nil {
			return errors.Wrapf(err, "reading monster %d", i)
		}
		if monster.RIdx < 0 || monster.RIdx >= len(tables.Races) {
			return rerr.Malformed(StageDungeon, "r_idx", int64(monster.RIdx), int64(len(tables.Races)-1))
		}
		if _, err := l.state.PlaceMonster(*monster); err != nil {
			return errors.Wrapf(err, "placing monster %d", i)
		}
	}

	if !l.version.OlderThan(rversion.V060) {
		if err := l.decodeRegions(); err != nil {
			return err
		}
	}

	if err := cave.Derive(tables.Features, tables.Limits); err != nil {
		return err
	}
	err = rlink.Link(rlink.Level{
		Cave:     cave,
		Objects:  l.state.Objects,
		Monsters: l.state.Monsters,
		Regions:  l.state.Regions,
		Pieces:   l.state.RegionPieces,
	})
	if err != nil {
		return err
	}
	l.state.Cave = cave
	glog.V(1).Infof(
		"dungeon %d level %d: %d objects, %d monsters, %d regions",
		cave.Dungeon, cave.Depth, l.state.Objects.Len(), l.state.Monsters.Len(), l.state.Regions.Len(),
	)
	return nil
}

func (l *loader) decodeRegions() error {
	count, err := l.readCount(StageDungeon, "region_max", l.state.Regions.Max()-1)
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		region, err := rregion.Decode(l.reader, l.version)
		if err != nil {
			return errors.Wrapf(err, "reading region %d", i)
		}
		if _, err := l.state.Regions.Pop(*region); err != nil {
			return errors.Wrapf(err, "placing region %d", i)
		}
	}

	count, err = l.readCount(StageDungeon, "region_piece_max", l.state.RegionPieces.Max()-1)
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		piece, err := rregion.DecodePiece(l.reader, l.version)
		if err != nil {
			return errors.Wrapf(err, "reading region piece %d", i)
		}
		if _, err := l.state.RegionPieces.Pop(*piece); err != nil {
			return errors.Wrapf(err, "placing region piece %d", i)
		}
	}
	return nil
}
