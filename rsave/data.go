// Package rsave reads a savefile into a rstate.GameState.
package rsave

import (
	"roguesave/rsave/lbytes"
	"roguesave/rsave/rstate"
	"roguesave/rsave/rversion"
)

type (
	// Prompter asks the player before a corrupt dungeon is thrown away.
	Prompter interface {
		Message(text string)
		Confirm(question string) bool
	}
	Config struct {
		// VerifyChecksums compares the two trailing checksums with the
		// running ones.
		VerifyChecksums bool
		// Prompter may be nil, in which case every question is answered
		// no and a corrupt dungeon fails the load.
		Prompter Prompter
	}

	loader struct {
		reader  *lbytes.Reader
		version rversion.Version
		state   *rstate.GameState
		config  Config
	}
	stage struct {
		name string
		when func(l *loader) bool
		run  func(l *loader) error
	}
)

// Recovery questions, asked in order. Every one must be answered yes.
var RecoveryQuestions = []string{
	"Attempt to recover the character without its dungeon?",
	"Have you made a backup of this savefile?",
	"All dungeon data will be lost. Continue?",
}

const (
	StageHeader       = "header"
	StageInfo         = "info"
	StageRNG          = "rng"
	StageOptions      = "options"
	StageMessages     = "messages"
	StageTips         = "tips"
	StageMonsterLore  = "monster lore"
	StageKindLore     = "kind lore"
	StageQuests       = "quests"
	StageRandarts     = "randarts"
	StageArtifactLore = "artifact lore"
	StageEgoLore      = "ego lore"
	StagePlayer       = "player"
	StageFlavorLore   = "flavor lore"
	StageInventory    = "inventory"
	StageBags         = "bags"
	StageMaxDepths    = "max depths"
	StageStores       = "stores"
	StageDungeon      = "dungeon"
	StageGhost        = "ghost"
	StageChecksums    = "checksums"
)

// GhostNameMax bounds the name in the ghost record of old saves.
const GhostNameMax = 32

func DefaultConfig() Config {
	return Config{
		VerifyChecksums: VerifyChecksums,
	}
}
