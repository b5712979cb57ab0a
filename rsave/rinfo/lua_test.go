package rinfo

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	tables, err := Default()
	require.NoError(t, err)

	assert.Equal(t, DefaultLimits, tables.Limits)
	assert.Len(t, tables.Kinds, 21)
	assert.Equal(t, ObjectKind{}, tables.Kinds[0])
	assert.Equal(t, "Ration of Food", tables.Kinds[1].Name)
	assert.Equal(t, 8, tables.Kinds[9].ReplacedBy)
	assert.Len(t, tables.Races, 9)
	assert.Equal(t, uint32(0x80000001), tables.Races[1].Flags[0])
	assert.Equal(t, uint32(0x00000004), tables.Races[7].Flags[5])
	assert.Len(t, tables.Artifacts, 6)
	assert.True(t, tables.Artifacts[4].Random)
	assert.Len(t, tables.Egos, 6)
	assert.Len(t, tables.Stores, 4)
	assert.Equal(t, []string{"Mauser the Chemist"}, tables.Stores[2].Owners)
	assert.Equal(t, "nothing", tables.Features[0].Name)
	assert.Equal(t, FeatureFlag(0), tables.Features[0].Flags)
	assert.True(t, tables.Features[8].Flags.Has(FeatGlow))
	assert.True(t, tables.Features[8].Flags.Has(FeatDynamic))
	assert.False(t, tables.Features[8].Flags.Has(FeatBlockFire))
	assert.Len(t, tables.Quests, 3)
	assert.Len(t, tables.Dungeons, 3)
	assert.Len(t, tables.Flavors, 6)
	assert.Equal(t, 6, tables.BagSlots())
}

func TestTables_KindIndex(t *testing.T) {
	tables, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 7, tables.KindIndex(23, 17))
	assert.Equal(t, 0, tables.KindIndex(23, 99))
	assert.Equal(t, 0, tables.KindIndex(0, 0))
}

func TestTables_Clone(t *testing.T) {
	tables, err := Default()
	require.NoError(t, err)

	clone := tables.Clone()
	clone.Races[3].CurNum = 5
	clone.Artifacts[4].Name = "'Xyzzy'"
	clone.Stores[0].Owners[0] = "nobody"

	assert.Equal(t, 0, tables.Races[3].CurNum)
	assert.Equal(t, "random blade", tables.Artifacts[4].Name)
	assert.Equal(t, "Bilbo the Friendly", tables.Stores[0].Owners[0])

	clone.ResetCensus()
	assert.Equal(t, 0, clone.Races[3].CurNum)
}

func TestLoadLuaFS_Invalid(t *testing.T) {
	tests := map[string]string{
		"no features":      `Kind "Dagger" { tval = 23, sval = 4 }`,
		"replacement loop": "Feature \"floor\" {}\nKind \"a\" { replaced_by = 2 }\nKind \"b\" { replaced_by = 1 }",
		"empty store":      "Feature \"floor\" {}\nStore \"Home\" { stock_size = 0, owners = { \"you\" } }",
		"ownerless store":  "Feature \"floor\" {}\nStore \"Home\" { stock_size = 4 }",
		"bad limits":       "Feature \"floor\" {}\nLimits { pack_max = 40 }",
		"sandboxed":        "Feature \"floor\" {}\ndofile(\"/etc/passwd\")",
		"syntax":           "Feature \"floor\" {",
	}
	for name, source := range tests {
		fsys := fstest.MapFS{"edit.lua": {Data: []byte(source)}}
		_, err := LoadLuaFS(fsys)
		assert.Error(t, err, name)
	}
}

func TestLoadLuaFS_NoFiles(t *testing.T) {
	_, err := LoadLuaFS(fstest.MapFS{"README": {Data: []byte("nothing here")}})
	assert.Error(t, err)
}

func TestLoadLuaFS_OrderedByName(t *testing.T) {
	fsys := fstest.MapFS{
		"b.lua": {Data: []byte(`Feature "second" {}`)},
		"a.lua": {Data: []byte(`Feature "first" {}`)},
	}
	tables, err := LoadLuaFS(fsys)
	require.NoError(t, err)
	assert.Equal(t, "first", tables.Features[0].Name)
	assert.Equal(t, "second", tables.Features[1].Name)
}
