package rsave

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"roguesave/rsave/lbytes"
	"roguesave/rsave/rheader"
	"roguesave/rsave/rinfo"
	"roguesave/rsave/rstate"
	"roguesave/rsave/rversion"
)

// errDungeonDiscarded ends a load early and successfully, once a corrupt
// dungeon has been given up with the player's consent.
var errDungeonDiscarded = errors.New("dungeon discarded")

var stages = []stage{
	{name: StageHeader, run: (*loader).header},
	{name: StageInfo, run: (*loader).info},
	{name: StageRNG, run: (*loader).rng},
	{name: StageOptions, run: (*loader).options},
	{name: StageMessages, run: (*loader).messages},
	{name: StageTips, when: since(rversion.V061), run: (*loader).tips},
	{name: StageMonsterLore, run: (*loader).monsterLore},
	{name: StageKindLore, run: (*loader).kindLore},
	{name: StageQuests, run: (*loader).quests},
	{name: StageRandarts, run: (*loader).randarts},
	{name: StageArtifactLore, run: (*loader).artifactLore},
	{name: StageEgoLore, run: (*loader).egoLore},
	{name: StagePlayer, run: (*loader).player},
	{name: StageFlavorLore, when: alive, run: (*loader).flavorLore},
	{name: StageInventory, run: (*loader).inventory},
	{name: StageBags, run: (*loader).bags},
	{name: StageMaxDepths, run: (*loader).maxDepths},
	{name: StageStores, when: alive, run: (*loader).stores},
	{name: StageDungeon, when: alive, run: (*loader).dungeon},
	{name: StageGhost, when: until(rversion.V054), run: (*loader).ghost},
	{name: StageChecksums, when: verifying, run: (*loader).checksums},
}

// Load reads a whole savefile. It touches nothing but its arguments:
// tables are copied into the returned state before any counter or name
// in them is changed.
func Load(bs []byte, tables *rinfo.Tables, config Config) (*rstate.GameState, error) {
	if tables == nil {
		return nil, errors.New("Load error: no edit tables")
	}
	l := &loader{
		reader: lbytes.NewBytesReader(bs),
		state:  rstate.New(tables),
		config: config,
	}

	for _, stage := range stages {
		if stage.when != nil && !stage.when(l) {
			glog.V(1).Infof("skipping stage %s", stage.name)
			continue
		}
		glog.V(1).Infof("reading stage %s", stage.name)
		err := stage.run(l)
		if errors.Is(err, errDungeonDiscarded) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "%s stage", stage.name)
		}
	}

	l.state.CharacterLoaded = true
	glog.V(1).Infof(
		"loaded %q from version %s (dungeon: %v, warnings: %d)",
		l.state.Player.Name, l.version, l.state.CharacterDungeon, len(l.state.Warnings),
	)
	return l.state, nil
}

func since(version rversion.Version) func(l *loader) bool {
	return func(l *loader) bool {
		return !l.version.OlderThan(version)
	}
}

func until(version rversion.Version) func(l *loader) bool {
	return func(l *loader) bool {
		return l.version.OlderThan(version)
	}
}

func alive(l *loader) bool {
	return !l.state.Player.Dead()
}

func verifying(l *loader) bool {
	return l.config.VerifyChecksums
}

func (l *loader) header() error {
	version, err := rheader.Decode(l.reader)
	if err != nil {
		return err
	}
	l.version = *version
	l.state.Version = *version
	return nil
}

func (l *loader) info() error {
	info, err := rheader.DecodeInfo(l.reader, l.version)
	if err != nil {
		return err
	}
	l.state.Info = *info
	return nil
}
