package rinfo

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	lua "github.com/yuin/gopher-lua"
)

//go:embed edit/*.lua
var defaultEdit embed.FS

// collector accumulates table definitions while the edit files run.
type collector struct {
	limits    *lua.LTable
	kinds     []rawEntry
	races     []rawEntry
	artifacts []rawEntry
	egos      []rawEntry
	stores    []rawEntry
	features  []rawEntry
	quests    []rawEntry
	dungeons  []rawEntry
	flavors   []rawEntry
	bags      []rawEntry
}

type rawEntry struct {
	name  string
	table *lua.LTable
}

// Default loads the edit files shipped with the module.
func Default() (*Tables, error) {
	sub, err := fs.Sub(defaultEdit, "edit")
	if err != nil {
		return nil, errors.Wrap(err, "rinfo.Default error")
	}
	return LoadLuaFS(sub)
}

// LoadLua runs every .lua file of dir, in name order, and compiles the
// definitions into tables.
func LoadLua(dir string) (*Tables, error) {
	return LoadLuaFS(os.DirFS(dir))
}

func LoadLuaFS(fsys fs.FS) (*Tables, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, errors.Wrap(err, "LoadLuaFS error reading edit directory")
	}
	luaFiles := lo.FilterMap(
		entries,
		func(entry fs.DirEntry, _ int) (string, bool) {
			return entry.Name(), !entry.IsDir() && strings.HasSuffix(entry.Name(), ".lua")
		},
	)
	if len(luaFiles) == 0 {
		return nil, errors.New("LoadLuaFS error: no .lua edit files found")
	}
	sort.Strings(luaFiles)

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}

	coll := &collector{}
	registerConstructors(L, coll)

	for _, name := range luaFiles {
		source, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, errors.Wrapf(err, "LoadLuaFS error reading %s", name)
		}
		fn, err := L.Load(strings.NewReader(string(source)), path.Base(name))
		if err != nil {
			return nil, errors.Wrapf(err, "LoadLuaFS error compiling %s", name)
		}
		L.Push(fn)
		if err := L.PCall(0, lua.MultRet, nil); err != nil {
			return nil, errors.Wrapf(err, "LoadLuaFS error executing %s", name)
		}
	}

	tables := compile(coll)
	if err := tables.Validate(); err != nil {
		return nil, errors.Wrap(err, "LoadLuaFS error validating tables")
	}
	return tables, nil
}

// registerConstructors installs the curried constructors, for example
//
//	Kind "Ration of Food" { tval = 80, sval = 35, weight = 8 }
func registerConstructors(L *lua.LState, coll *collector) {
	L.SetGlobal("Limits", L.NewFunction(func(L *lua.LState) int {
		coll.limits = L.CheckTable(1)
		return 0
	}))
	curried := map[string]*[]rawEntry{
		"Kind":     &coll.kinds,
		"Race":     &coll.races,
		"Artifact": &coll.artifacts,
		"Ego":      &coll.egos,
		"Store":    &coll.stores,
		"Feature":  &coll.features,
		"Quest":    &coll.quests,
		"Dungeon":  &coll.dungeons,
		"Flavor":   &coll.flavors,
		"Bag":      &coll.bags,
	}
	for global, target := range curried {
		target := target
		L.SetGlobal(global, L.NewFunction(func(L *lua.LState) int {
			name := L.CheckString(1)
			L.Push(L.NewFunction(func(L *lua.LState) int {
				tbl := L.CheckTable(1)
				*target = append(*target, rawEntry{name: name, table: tbl})
				return 0
			}))
			return 1
		}))
	}
}

func compile(coll *collector) *Tables {
	tables := &Tables{Limits: DefaultLimits}
	if coll.limits != nil {
		overrideLimit := func(key string, value *int) {
			if v := getInt(coll.limits, key); v != 0 {
				*value = v
			}
		}
		overrideLimit("object_max", &tables.Limits.ObjectMax)
		overrideLimit("monster_max", &tables.Limits.MonsterMax)
		overrideLimit("region_max", &tables.Limits.RegionMax)
		overrideLimit("region_piece_max", &tables.Limits.RegionPieceMax)
		overrideLimit("message_max", &tables.Limits.MessageMax)
		overrideLimit("tip_max", &tables.Limits.TipMax)
		overrideLimit("dyna_max", &tables.Limits.DynaMax)
		overrideLimit("pack_max", &tables.Limits.PackMax)
		overrideLimit("inven_total", &tables.Limits.InvenTotal)
		overrideLimit("quest_event_max", &tables.Limits.QuestEventMax)
		overrideLimit("room_max", &tables.Limits.RoomMax)
		overrideLimit("player_max_level", &tables.Limits.PlayerMaxLevel)
		overrideLimit("halo_radius", &tables.Limits.HaloRadius)
	}

	tables.Kinds = append(
		[]ObjectKind{{}},
		lo.Map(coll.kinds, func(raw rawEntry, _ int) ObjectKind {
			return ObjectKind{
				Name:       raw.name,
				Tval:       getInt(raw.table, "tval"),
				Sval:       getInt(raw.table, "sval"),
				Pval:       getInt(raw.table, "pval"),
				ToH:        getInt(raw.table, "to_h"),
				ToD:        getInt(raw.table, "to_d"),
				ToA:        getInt(raw.table, "to_a"),
				AC:         getInt(raw.table, "ac"),
				DD:         getInt(raw.table, "dd"),
				DS:         getInt(raw.table, "ds"),
				Weight:     getInt(raw.table, "weight"),
				ReplacedBy: getInt(raw.table, "replaced_by"),
			}
		})...,
	)
	tables.Races = append(
		[]MonsterRace{{}},
		lo.Map(coll.races, func(raw rawEntry, _ int) MonsterRace {
			race := MonsterRace{
				Name:   raw.name,
				MaxNum: getInt(raw.table, "max_num"),
			}
			for i, flag := range getNumbers(raw.table, "flags") {
				if i < len(race.Flags) {
					race.Flags[i] = uint32(flag)
				}
			}
			return race
		})...,
	)
	tables.Artifacts = append(
		[]Artifact{{}},
		lo.Map(coll.artifacts, func(raw rawEntry, _ int) Artifact {
			return Artifact{
				Name:   raw.name,
				Tval:   getInt(raw.table, "tval"),
				Sval:   getInt(raw.table, "sval"),
				Random: getBool(raw.table, "random"),
			}
		})...,
	)
	tables.Egos = append(
		[]EgoItem{{}},
		lo.Map(coll.egos, func(raw rawEntry, _ int) EgoItem {
			return EgoItem{Name: raw.name}
		})...,
	)
	tables.Stores = lo.Map(coll.stores, func(raw rawEntry, _ int) StoreTemplate {
		return StoreTemplate{
			Name:      raw.name,
			StockSize: getInt(raw.table, "stock_size"),
			Owners:    getStrings(raw.table, "owners"),
		}
	})
	tables.Features = lo.Map(coll.features, func(raw rawEntry, _ int) Feature {
		flags := FeatureFlag(0)
		for _, name := range getStrings(raw.table, "flags") {
			flags |= FeatureFlagByName[name]
		}
		return Feature{Name: raw.name, Flags: flags}
	})
	tables.Quests = lo.Map(coll.quests, func(raw rawEntry, _ int) Quest {
		return Quest{Name: raw.name}
	})
	tables.Dungeons = lo.Map(coll.dungeons, func(raw rawEntry, _ int) Dungeon {
		return Dungeon{Name: raw.name, MaxDepth: getInt(raw.table, "max_depth")}
	})
	tables.Flavors = lo.Map(coll.flavors, func(raw rawEntry, _ int) Flavor {
		return Flavor{Name: raw.name}
	})
	tables.Bags = lo.Map(coll.bags, func(raw rawEntry, _ int) Bag {
		return Bag{Name: raw.name, Slots: getInt(raw.table, "slots")}
	})
	return tables
}

func getInt(tbl *lua.LTable, key string) int {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return int(n)
	}
	return 0
}

func getBool(tbl *lua.LTable, key string) bool {
	if b, ok := tbl.RawGetString(key).(lua.LBool); ok {
		return bool(b)
	}
	return false
}

// getNumbers reads an array part of numbers.
func getNumbers(tbl *lua.LTable, key string) []float64 {
	inner, ok := tbl.RawGetString(key).(*lua.LTable)
	if !ok {
		return nil
	}
	numbers := make([]float64, 0, inner.Len())
	for i := 1; i <= inner.Len(); i++ {
		if n, ok := inner.RawGetInt(i).(lua.LNumber); ok {
			numbers = append(numbers, float64(n))
		}
	}
	return numbers
}

func getStrings(tbl *lua.LTable, key string) []string {
	inner, ok := tbl.RawGetString(key).(*lua.LTable)
	if !ok {
		return nil
	}
	strs := make([]string, 0, inner.Len())
	for i := 1; i <= inner.Len(); i++ {
		if s, ok := inner.RawGetInt(i).(lua.LString); ok {
			strs = append(strs, string(s))
		}
	}
	return strs
}
