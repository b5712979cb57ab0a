package rsave

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"roguesave/rsave/lbytes"
	"roguesave/rsave/rerr"
	"roguesave/rsave/rinfo"
	"roguesave/rsave/rlore"
	"roguesave/rsave/rplayer"
	"roguesave/rsave/rquest"
	"roguesave/rsave/rrand"
	"roguesave/rsave/rstate"
	"roguesave/rsave/rstore"
	"roguesave/rsave/rversion"
)

// readCount reads a u16 count and checks it before anything loops on it.
func (l *loader) readCount(stage string, field string, limit int) (int, error) {
	count, err := l.reader.ReadU16()
	if err != nil {
		return 0, errors.Wrapf(err, "readCount error reading %s", field)
	}
	if int(count) > limit {
		return 0, rerr.Malformed(stage, field, int64(count), int64(limit))
	}
	return int(count), nil
}

func (l *loader) rng() error {
	state, err := rrand.Decode(l.reader, l.version)
	if err != nil {
		return err
	}
	l.state.RNG = *state
	return nil
}

func (l *loader) options() error {
	options, err := lbytes.DecodeSchema[rstate.Options](l.reader, l.version, rstate.OptionsSchema)
	if err != nil {
		return err
	}
	l.state.Options = *options
	return nil
}

func (l *loader) messages() error {
	count, err := l.reader.ReadS16()
	if err != nil {
		return errors.Wrap(err, "reading message count")
	}
	limit := l.state.Tables.Limits.MessageMax
	if count < 0 || int(count) > limit {
		return rerr.Malformed(StageMessages, "count", int64(count), int64(limit))
	}
	l.state.Messages = make([]rstate.Message, 0, count)
	for i := 0; i < int(count); i++ {
		text, err := l.reader.ReadString(rstate.MessageTextMax)
		if err != nil {
			return errors.Wrapf(err, "reading message %d", i)
		}
		kind, err := l.reader.ReadU16()
		if err != nil {
			return errors.Wrapf(err, "reading type of message %d", i)
		}
		l.state.Messages = append(l.state.Messages, rstate.Message{Text: text, Type: int(kind)})
	}
	return nil
}

func (l *loader) tips() error {
	count, err := l.readCount(StageTips, "count", l.state.Tables.Limits.TipMax)
	if err != nil {
		return err
	}
	l.state.Tips = make([]int, 0, count)
	for i := 0; i < count; i++ {
		tip, err := l.reader.ReadU16()
		if err != nil {
			return errors.Wrapf(err, "reading tip %d", i)
		}
		l.state.Tips = append(l.state.Tips, int(tip))
	}
	return nil
}

func (l *loader) monsterLore() error {
	races := l.state.Tables.Races
	count, err := l.readCount(StageMonsterLore, "count", len(races))
	if err != nil {
		return err
	}
	l.state.MonsterLore = make([]rlore.MonsterLore, len(races))
	for i := 0; i < count; i++ {
		lore, err := rlore.DecodeMonster(l.reader, l.version, &races[i])
		if err != nil {
			return errors.Wrapf(err, "reading race %d", i)
		}
		l.state.MonsterLore[i] = *lore
	}
	return nil
}

func (l *loader) kindLore() error {
	count, err := l.readCount(StageKindLore, "count", len(l.state.Tables.Kinds))
	if err != nil {
		return err
	}
	l.state.KindLore = make([]rlore.KindLore, len(l.state.Tables.Kinds))
	for i := 0; i < count; i++ {
		lore, err := rlore.DecodeKind(l.reader, l.version)
		if err != nil {
			return errors.Wrapf(err, "reading kind %d", i)
		}
		l.state.KindLore[i] = *lore
	}
	return nil
}

func (l *loader) quests() error {
	count, err := l.readCount(StageQuests, "count", len(l.state.Tables.Quests))
	if err != nil {
		return err
	}
	l.state.Quests = make([]rquest.Quest, 0, count)
	for i := 0; i < count; i++ {
		quest, err := rquest.Decode(l.reader, l.version, l.state.Tables.Limits.QuestEventMax)
		if err != nil {
			return errors.Wrapf(err, "reading quest %d", i)
		}
		l.state.Quests = append(l.state.Quests, *quest)
	}
	return nil
}

// randarts reads the seed and regenerates the random artifacts' names
// from it before any artifact lore is read.
func (l *loader) randarts() error {
	seed, err := l.reader.ReadU32()
	if err != nil {
		return errors.Wrap(err, "reading seed")
	}
	l.state.RandartSeed = seed
	rrand.ArtifactNames(seed, l.state.Tables.Artifacts)
	return nil
}

func (l *loader) artifactLore() error {
	count, err := l.readCount(StageArtifactLore, "count", len(l.state.Tables.Artifacts))
	if err != nil {
		return err
	}
	l.state.ArtifactLore = make([]rlore.ArtifactLore, len(l.state.Tables.Artifacts))
	for i := 0; i < count; i++ {
		lore, err := rlore.DecodeArtifact(l.reader, l.version)
		if err != nil {
			return errors.Wrapf(err, "reading artifact %d", i)
		}
		l.state.ArtifactLore[i] = *lore
	}
	return nil
}

func (l *loader) egoLore() error {
	count, err := l.readCount(StageEgoLore, "count", len(l.state.Tables.Egos))
	if err != nil {
		return err
	}
	l.state.EgoLore = make([]rlore.EgoLore, len(l.state.Tables.Egos))
	for i := 0; i < count; i++ {
		lore, err := rlore.DecodeEgo(l.reader, l.version)
		if err != nil {
			return errors.Wrapf(err, "reading ego %d", i)
		}
		l.state.EgoLore[i] = *lore
	}
	return nil
}

func (l *loader) player() error {
	player, err := rplayer.Decode(l.reader, l.version, l.state.Tables.Limits.PlayerMaxLevel)
	if err != nil {
		return err
	}
	l.state.Player = *player
	if player.Dead() {
		glog.V(1).Infof("%q is dead; flavors, stores and dungeon are not stored", player.Name)
	}
	return nil
}

func (l *loader) flavorLore() error {
	count, err := l.readCount(StageFlavorLore, "count", len(l.state.Tables.Flavors))
	if err != nil {
		return err
	}
	l.state.FlavorLore = make([]rlore.FlavorLore, len(l.state.Tables.Flavors))
	for i := 0; i < count; i++ {
		lore, err := rlore.DecodeFlavor(l.reader, l.version)
		if err != nil {
			return errors.Wrapf(err, "reading flavor %d", i)
		}
		l.state.FlavorLore[i] = *lore
	}
	return nil
}

func (l *loader) maxDepths() error {
	dungeons := l.state.Tables.Dungeons
	l.state.MaxDepths = make([]int, len(dungeons))
	if l.version.OlderThan(rversion.V060) {
		if len(dungeons) > 0 {
			l.state.MaxDepths[0] = l.state.Player.MaxDepth
		}
		return nil
	}

	count, err := l.readCount(StageMaxDepths, "count", len(dungeons))
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		depth, err := l.reader.ReadS16()
		if err != nil {
			return errors.Wrapf(err, "reading depth of dungeon %d", i)
		}
		l.state.MaxDepths[i] = int(depth)
	}
	return nil
}

// stores reads every declared store. Stores the edit tables do not have
// are read to stay aligned, then dropped with a warning.
func (l *loader) stores() error {
	count, err := l.reader.ReadU16()
	if err != nil {
		return errors.Wrap(err, "reading store count")
	}
	templates := l.state.Tables.Stores
	if int(count) > len(templates) {
		l.state.Warn("%s", rerr.WarnStoreOverflow{Store: -1, Declared: int(count), Capacity: len(templates)})
	}

	l.state.Stores = make([]rstore.Store, 0, len(templates))
	for i := 0; i < int(count); i++ {
		var template *rinfo.StoreTemplate
		if i < len(templates) {
			template = &templates[i]
		}
		store, warning, err := rstore.Decode(l.reader, l.version, l.state.Tables, i, template)
		if err != nil {
			return err
		}
		if warning != nil {
			l.state.Warn("%s", warning)
		}
		if store == nil {
			continue
		}
		for _, object := range store.Stock {
			l.state.MarkArtifact(object)
		}
		l.state.Stores = append(l.state.Stores, *store)
	}
	return nil
}

// ghost skips the ghost record that saves before 0.5.4 still carry.
func (l *loader) ghost() error {
	present, err := l.reader.ReadU8()
	if err != nil {
		return errors.Wrap(err, "reading ghost flag")
	}
	if present == 0 {
		return nil
	}
	if _, err := l.reader.ReadString(GhostNameMax); err != nil {
		return errors.Wrap(err, "reading ghost name")
	}
	return nil
}

func (l *loader) checksums() error {
	for _, which := range []string{"v", "x"} {
		vCheck, xCheck := l.reader.Checksums()
		expected := vCheck
		if which == "x" {
			expected = xCheck
		}
		actual, err := l.reader.ReadU32()
		if err != nil {
			return errors.Wrapf(err, "reading %s checksum", which)
		}
		if actual != expected {
			return rerr.ErrChecksumMismatch{Which: which, Expected: expected, Actual: actual}
		}
	}
	return nil
}
