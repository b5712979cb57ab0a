package rinfo

type (
	// Limits are the static capacities of the live tables.
	Limits struct {
		ObjectMax      int `json:"object_max"`
		MonsterMax     int `json:"monster_max"`
		RegionMax      int `json:"region_max"`
		RegionPieceMax int `json:"region_piece_max"`
		MessageMax     int `json:"message_max"`
		TipMax         int `json:"tip_max"`
		DynaMax        int `json:"dyna_max"`
		PackMax        int `json:"pack_max"`
		InvenTotal     int `json:"inven_total"`
		QuestEventMax  int `json:"quest_event_max"`
		RoomMax        int `json:"room_max"`
		PlayerMaxLevel int `json:"player_max_level"`
		HaloRadius     int `json:"halo_radius"`
	}
	ObjectKind struct {
		Name   string `json:"name"`
		Tval   int    `json:"tval"`
		Sval   int    `json:"sval"`
		Pval   int    `json:"pval"`
		ToH    int    `json:"to_h"`
		ToD    int    `json:"to_d"`
		ToA    int    `json:"to_a"`
		AC     int    `json:"ac"`
		DD     int    `json:"dd"`
		DS     int    `json:"ds"`
		Weight int    `json:"weight"`
		// ReplacedBy names the kind that took over from a removed one.
		ReplacedBy int `json:"replaced_by"`
	}
	MonsterRace struct {
		Name   string    `json:"name"`
		Flags  [6]uint32 `json:"flags"`
		MaxNum int       `json:"max_num"`
		CurNum int       `json:"cur_num"`
	}
	Artifact struct {
		Name   string `json:"name"`
		Tval   int    `json:"tval"`
		Sval   int    `json:"sval"`
		Random bool   `json:"random"`
	}
	EgoItem struct {
		Name string `json:"name"`
	}
	StoreTemplate struct {
		Name      string   `json:"name"`
		StockSize int      `json:"stock_size"`
		Owners    []string `json:"owners"`
	}
	Feature struct {
		Name  string      `json:"name"`
		Flags FeatureFlag `json:"flags"`
	}
	FeatureFlag uint32
	Quest       struct {
		Name string `json:"name"`
	}
	Dungeon struct {
		Name     string `json:"name"`
		MaxDepth int    `json:"max_depth"`
	}
	Flavor struct {
		Name string `json:"name"`
	}
	Bag struct {
		Name  string `json:"name"`
		Slots int    `json:"slots"`
	}

	// Tables is the full set of edit tables a savefile is read against.
	// Kinds, races, artifacts and egos are 1-based: entry 0 is a nameless
	// placeholder.
	Tables struct {
		Limits    Limits          `json:"limits"`
		Kinds     []ObjectKind    `json:"kinds"`
		Races     []MonsterRace   `json:"races"`
		Artifacts []Artifact      `json:"artifacts"`
		Egos      []EgoItem       `json:"egos"`
		Stores    []StoreTemplate `json:"stores"`
		Features  []Feature       `json:"features"`
		Quests    []Quest         `json:"quests"`
		Dungeons  []Dungeon       `json:"dungeons"`
		Flavors   []Flavor        `json:"flavors"`
		Bags      []Bag           `json:"bags"`
	}
)

const (
	FeatBlockLOS FeatureFlag = 1 << iota
	FeatBlockFire
	FeatDynamic
	FeatGlow
)

var FeatureFlagByName = map[string]FeatureFlag{
	"BLOCK_LOS":  FeatBlockLOS,
	"BLOCK_FIRE": FeatBlockFire,
	"DYNAMIC":    FeatDynamic,
	"GLOW":       FeatGlow,
}

var DefaultLimits = Limits{
	ObjectMax:      512,
	MonsterMax:     256,
	RegionMax:      64,
	RegionPieceMax: 1024,
	MessageMax:     2048,
	TipMax:         512,
	DynaMax:        128,
	PackMax:        23,
	InvenTotal:     36,
	QuestEventMax:  4,
	RoomMax:        50,
	PlayerMaxLevel: 50,
	HaloRadius:     1,
}
