// Package rdump turns a loaded game into ordered JSON, keeping the order
// in which the savefile stores things.
package rdump

import (
	"encoding/json"

	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"roguesave/rsave/rcave"
	"roguesave/rsave/rindex"
	"roguesave/rsave/rlink"
	"roguesave/rsave/rlore"
	"roguesave/rsave/rmonster"
	"roguesave/rsave/robject"
	"roguesave/rsave/rregion"
	"roguesave/rsave/rstate"
)

type (
	Slot struct {
		Slot   int            `json:"slot"`
		Object robject.Object `json:"object"`
	}
	Run struct {
		Count int `json:"count"`
		Feat  int `json:"feat"`
	}
	NamedLore[T any] struct {
		Index int    `json:"index"`
		Name  string `json:"name"`
		Lore  T      `json:"lore"`
	}
	ArtifactEntry struct {
		NamedLore[rlore.ArtifactLore]
		// Base is the name of the kind the artifact is made from, empty
		// when no kind has its tval and sval.
		Base string `json:"base"`
	}
)

func ToOrderedMap(state *rstate.GameState) *orderedmap.OrderedMap {
	tables := state.Tables
	lhm := orderedmap.New()
	lhm.Set("version", state.Version.String())
	lhm.Set("info", state.Info)
	lhm.Set("rng", state.RNG)
	lhm.Set("options", state.Options)
	lhm.Set("messages", state.Messages)
	lhm.Set("tips", state.Tips)
	lhm.Set("monster_lore", named(state.MonsterLore, func(i int) string { return tables.Races[i].Name }))
	lhm.Set("kind_lore", named(state.KindLore, func(i int) string { return tables.Kinds[i].Name }))
	lhm.Set("quests", state.Quests)
	lhm.Set("randart_seed", state.RandartSeed)
	lhm.Set("artifact_lore", artifacts(state))
	lhm.Set("ego_lore", named(state.EgoLore, func(i int) string { return tables.Egos[i].Name }))
	lhm.Set("player", state.Player)
	lhm.Set("flavor_lore", named(state.FlavorLore, func(i int) string { return tables.Flavors[i].Name }))
	lhm.Set("inventory", inventory(state.Inventory))
	lhm.Set("bags", state.Bags)
	lhm.Set("max_depths", state.MaxDepths)
	lhm.Set("stores", state.Stores)
	if state.Cave != nil {
		lhm.Set("dungeon", dungeon(state))
	}
	lhm.Set("character_loaded", state.CharacterLoaded)
	lhm.Set("character_dungeon", state.CharacterDungeon)
	lhm.Set("warnings", state.Warnings)
	return lhm
}

// named pairs every entry that differs from the zero value with its
// table index and name.
func named[T comparable](lores []T, name func(i int) string) []NamedLore[T] {
	var zero T
	return lo.FilterMap(
		lores,
		func(lore T, i int) (NamedLore[T], bool) {
			if lore == zero {
				return NamedLore[T]{}, false
			}
			return NamedLore[T]{Index: i, Name: name(i), Lore: lore}, true
		},
	)
}

func artifacts(state *rstate.GameState) []ArtifactEntry {
	tables := state.Tables
	return lo.Map(
		named(state.ArtifactLore, func(i int) string { return tables.Artifacts[i].Name }),
		func(entry NamedLore[rlore.ArtifactLore], _ int) ArtifactEntry {
			artifact := tables.Artifacts[entry.Index]
			base := ""
			if kIdx := tables.KindIndex(artifact.Tval, artifact.Sval); kIdx != 0 {
				base = tables.Kinds[kIdx].Name
			}
			return ArtifactEntry{NamedLore: entry, Base: base}
		},
	)
}

func inventory(objects []robject.Object) []Slot {
	return lo.FilterMap(
		objects,
		func(object robject.Object, slot int) (Slot, bool) {
			return Slot{Slot: slot, Object: object}, !object.IsEmpty()
		},
	)
}

func dungeon(state *rstate.GameState) *orderedmap.OrderedMap {
	cave := state.Cave
	lhm := orderedmap.New()
	lhm.Set("header", cave.Header)
	lhm.Set("features", featureRuns(cave))
	lhm.Set("rooms", cave.Rooms)
	lhm.Set("dyna", cave.Dyna)
	lhm.Set("dyna_full", cave.DynaFull)

	objects := []*orderedmap.OrderedMap{}
	state.Objects.Each(func(ref rindex.Ref, object *robject.Object) {
		entry := orderedmap.New()
		entry.Set("o_idx", ref)
		entry.Set("object", object)
		entry.Set("next_o_idx", object.NextOIdx)
		objects = append(objects, entry)
	})
	lhm.Set("objects", objects)

	monsters := []*orderedmap.OrderedMap{}
	state.Monsters.Each(func(ref rindex.Ref, monster *rmonster.Monster) {
		entry := orderedmap.New()
		entry.Set("m_idx", ref)
		entry.Set("race", state.Tables.Races[monster.RIdx].Name)
		entry.Set("monster", monster)
		entry.Set("holding", rlink.Chain(state.Objects, monster.HoldOIdx, rlink.NextObject))
		monsters = append(monsters, entry)
	})
	lhm.Set("monsters", monsters)

	regions := []*orderedmap.OrderedMap{}
	state.Regions.Each(func(ref rindex.Ref, region *rregion.Region) {
		entry := orderedmap.New()
		entry.Set("region_idx", ref)
		entry.Set("region", region)
		entry.Set("pieces", rlink.Chain(state.RegionPieces, region.FirstPiece, rlink.NextInRegion))
		regions = append(regions, entry)
	})
	lhm.Set("regions", regions)
	return lhm
}

// featureRuns lists each row of the feature plane as (count, feat) runs.
func featureRuns(cave *rcave.Cave) [][]Run {
	return lo.Map(
		cave.Feat[:],
		func(row [rcave.DungeonWid]uint16, _ int) []Run {
			runs := []Run{}
			for _, feat := range row {
				if len(runs) > 0 && runs[len(runs)-1].Feat == int(feat) {
					runs[len(runs)-1].Count++
					continue
				}
				runs = append(runs, Run{Count: 1, Feat: int(feat)})
			}
			return runs
		},
	)
}

func JSON(state *rstate.GameState) ([]byte, error) {
	bs, err := json.MarshalIndent(ToOrderedMap(state), "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "rdump: marshal")
	}
	return bs, nil
}
