package rstate

import (
	"fmt"

	"github.com/golang/glog"

	"roguesave/rsave/rindex"
	"roguesave/rsave/rinfo"
	"roguesave/rsave/rmonster"
	"roguesave/rsave/robject"
	"roguesave/rsave/rregion"
)

// New prepares an empty state over a copy of tables.
func New(tables *rinfo.Tables) *GameState {
	clone := tables.Clone()
	clone.ResetCensus()
	return &GameState{
		Tables:       clone,
		Objects:      rindex.NewArena[robject.Object](clone.Limits.ObjectMax),
		Monsters:     rindex.NewArena[rmonster.Monster](clone.Limits.MonsterMax),
		Regions:      rindex.NewArena[rregion.Region](clone.Limits.RegionMax),
		RegionPieces: rindex.NewArena[rregion.Piece](clone.Limits.RegionPieceMax),
	}
}

// IsSet reports whether option i is on. An option counts only when both
// its flag and its mask bit are set.
func (o Options) IsSet(i int) bool {
	if i < 0 || i >= OptionWords*32 {
		return false
	}
	bit := uint32(1) << (i % 32)
	return o.Flag[i/32]&bit != 0 && o.Mask[i/32]&bit != 0
}

// MarkArtifact records that the object's artifact exists in the world.
func (g *GameState) MarkArtifact(object robject.Object) {
	if !object.IsArtifact() || object.Name1 >= len(g.ArtifactLore) {
		return
	}
	g.ArtifactLore[object.Name1].CurNum = 1
}

// PlaceMonster adds a monster to the level and counts it in its race.
func (g *GameState) PlaceMonster(monster rmonster.Monster) (rindex.Ref, error) {
	ref, err := g.Monsters.Pop(monster)
	if err != nil {
		return rindex.NoRef, err
	}
	if monster.RIdx > 0 && monster.RIdx < len(g.Tables.Races) {
		g.Tables.Races[monster.RIdx].CurNum++
	}
	return ref, nil
}

// PlaceObject adds an object to the level.
func (g *GameState) PlaceObject(object robject.Object) (rindex.Ref, error) {
	ref, err := g.Objects.Pop(object)
	if err != nil {
		return rindex.NoRef, err
	}
	g.MarkArtifact(object)
	return ref, nil
}

// DiscardDungeon forgets the level and everything on it. The character
// will be put on a fresh level.
func (g *GameState) DiscardDungeon() {
	g.Cave = nil
	g.Objects.Reset()
	g.Monsters.Reset()
	g.Regions.Reset()
	g.RegionPieces.Reset()
	g.Tables.ResetCensus()
	g.Player.Leaving = true
	g.CharacterDungeon = false
	glog.V(1).Info("dungeon discarded")
}

func (g *GameState) Warn(format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	glog.Warning(message)
	g.Warnings = append(g.Warnings, message)
}
