// Package rlink rebuilds the intrusive chains of a decoded level. The
// stream stores only back references; the chains are prepended here in
// handle order, once every record exists.
package rlink

import (
	"github.com/golang/glog"

	"roguesave/rsave/rcave"
	"roguesave/rsave/rerr"
	"roguesave/rsave/rindex"
	"roguesave/rsave/rmonster"
	"roguesave/rsave/robject"
	"roguesave/rsave/rregion"
)

const stage = "link"

type Level struct {
	Cave     *rcave.Cave
	Objects  *rindex.Arena[robject.Object]
	Monsters *rindex.Arena[rmonster.Monster]
	Regions  *rindex.Arena[rregion.Region]
	Pieces   *rindex.Arena[rregion.Piece]
}

// Link fills the hold chains, the floor piles, the monster plane and
// both piece lists.
func Link(level Level) error {
	if err := linkMonsters(level); err != nil {
		return err
	}
	if err := linkObjects(level); err != nil {
		return err
	}
	if level.Regions == nil || level.Pieces == nil {
		return nil
	}
	return linkPieces(level)
}

func linkMonsters(level Level) error {
	var err error
	level.Monsters.Each(func(ref rindex.Ref, monster *rmonster.Monster) {
		if err != nil || monster.RIdx == 0 {
			return
		}
		if !rcave.InBounds(monster.Fy, monster.Fx) {
			err = rerr.Malformed(stage, "fy", int64(monster.Fy), rcave.DungeonHgt-1)
			return
		}
		if occupant := level.Cave.MIdx[monster.Fy][monster.Fx]; occupant.IsSet() {
			err = rerr.Malformed(stage, "m_idx", int64(ref), int64(occupant))
			return
		}
		level.Cave.MIdx[monster.Fy][monster.Fx] = ref
	})
	return err
}

func linkObjects(level Level) error {
	var err error
	level.Objects.Each(func(ref rindex.Ref, object *robject.Object) {
		if err != nil || object.IsEmpty() {
			return
		}
		if object.HeldMIdx.IsSet() {
			monster := level.Monsters.Get(object.HeldMIdx)
			if monster == nil || monster.RIdx == 0 {
				err = rerr.Malformed(stage, "held_m_idx", int64(object.HeldMIdx), int64(level.Monsters.Len()))
				return
			}
			object.NextOIdx = monster.HoldOIdx
			monster.HoldOIdx = ref
			glog.V(2).Infof("object %d held by monster %d", ref, object.HeldMIdx)
			return
		}
		if !rcave.InBounds(object.Iy, object.Ix) {
			err = rerr.Malformed(stage, "iy", int64(object.Iy), rcave.DungeonHgt-1)
			return
		}
		object.NextOIdx = level.Cave.OIdx[object.Iy][object.Ix]
		level.Cave.OIdx[object.Iy][object.Ix] = ref
	})
	return err
}

func linkPieces(level Level) error {
	var err error
	level.Pieces.Each(func(ref rindex.Ref, piece *rregion.Piece) {
		if err != nil {
			return
		}
		region := level.Regions.Get(piece.Region)
		if region == nil {
			err = rerr.Malformed(stage, "region", int64(piece.Region), int64(level.Regions.Len()))
			return
		}
		if !rcave.InBounds(piece.Y, piece.X) {
			err = rerr.Malformed(stage, "y", int64(piece.Y), rcave.DungeonHgt-1)
			return
		}
		piece.NextInRegion = region.FirstPiece
		region.FirstPiece = ref
		piece.NextInGrid = level.Cave.PieceIdx[piece.Y][piece.X]
		level.Cave.PieceIdx[piece.Y][piece.X] = ref
	})
	return err
}
