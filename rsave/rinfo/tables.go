package rinfo

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"roguesave/ds"
)

func (f FeatureFlag) Has(flag FeatureFlag) bool {
	return f&flag != 0
}

// KindIndex finds the kind with the given tval and sval, or 0.
func (t *Tables) KindIndex(tval int, sval int) int {
	_, index, found := lo.FindIndexOf(
		t.Kinds,
		func(kind ObjectKind) bool {
			return kind.Name != "" && kind.Tval == tval && kind.Sval == sval
		},
	)
	if !found {
		return 0
	}
	return index
}

func (t *Tables) BagSlots() int {
	return lo.Reduce(
		t.Bags,
		func(total int, bag Bag, _ int) int {
			return total + bag.Slots
		},
		0,
	)
}

// Clone copies every table so that census counters and regenerated
// names of one load never reach another.
func (t *Tables) Clone() *Tables {
	clone := *t
	clone.Kinds = ds.ShallowCopy(t.Kinds)
	clone.Races = ds.ShallowCopy(t.Races)
	clone.Artifacts = ds.ShallowCopy(t.Artifacts)
	clone.Egos = ds.ShallowCopy(t.Egos)
	clone.Stores = lo.Map(
		t.Stores,
		func(store StoreTemplate, _ int) StoreTemplate {
			store.Owners = ds.ShallowCopy(store.Owners)
			return store
		},
	)
	clone.Features = ds.ShallowCopy(t.Features)
	clone.Quests = ds.ShallowCopy(t.Quests)
	clone.Dungeons = ds.ShallowCopy(t.Dungeons)
	clone.Flavors = ds.ShallowCopy(t.Flavors)
	clone.Bags = ds.ShallowCopy(t.Bags)
	return &clone
}

// ResetCensus clears the live population of every race.
func (t *Tables) ResetCensus() {
	for i := range t.Races {
		t.Races[i].CurNum = 0
	}
}

// Validate checks the references between tables.
func (t *Tables) Validate() error {
	limits := []lo.Tuple2[string, int]{
		{A: "object_max", B: t.Limits.ObjectMax},
		{A: "monster_max", B: t.Limits.MonsterMax},
		{A: "region_max", B: t.Limits.RegionMax},
		{A: "region_piece_max", B: t.Limits.RegionPieceMax},
		{A: "message_max", B: t.Limits.MessageMax},
		{A: "tip_max", B: t.Limits.TipMax},
		{A: "dyna_max", B: t.Limits.DynaMax},
		{A: "pack_max", B: t.Limits.PackMax},
		{A: "inven_total", B: t.Limits.InvenTotal},
		{A: "quest_event_max", B: t.Limits.QuestEventMax},
		{A: "room_max", B: t.Limits.RoomMax},
		{A: "player_max_level", B: t.Limits.PlayerMaxLevel},
	}
	for _, limit := range limits {
		if limit.B <= 0 {
			return errors.Errorf(`limit "%s" must be positive, got %d`, limit.A, limit.B)
		}
	}
	if t.Limits.InvenTotal <= t.Limits.PackMax {
		return errors.Errorf(
			"inven_total %d must be larger than pack_max %d",
			t.Limits.InvenTotal, t.Limits.PackMax,
		)
	}
	if len(t.Features) == 0 {
		return errors.New("no features defined")
	}
	for i, kind := range t.Kinds {
		if kind.ReplacedBy == 0 {
			continue
		}
		if kind.ReplacedBy < 0 || kind.ReplacedBy >= len(t.Kinds) {
			return errors.Errorf(`kind "%s" (%d) is replaced by unknown kind %d`, kind.Name, i, kind.ReplacedBy)
		}
		if t.Kinds[kind.ReplacedBy].ReplacedBy != 0 {
			return errors.Errorf(`kind "%s" (%d) is replaced by another removed kind`, kind.Name, i)
		}
	}
	for _, store := range t.Stores {
		if store.StockSize <= 0 {
			return errors.Errorf(`store "%s" has no stock room`, store.Name)
		}
		if len(store.Owners) == 0 {
			return errors.Errorf(`store "%s" has no owners`, store.Name)
		}
	}
	for _, bag := range t.Bags {
		if bag.Slots <= 0 {
			return errors.Errorf(`bag "%s" has no slots`, bag.Name)
		}
	}
	return nil
}
