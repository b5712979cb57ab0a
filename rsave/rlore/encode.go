package rlore

import (
	"roguesave/rsave/lbytes"
	"roguesave/rsave/rversion"
)

func EncodeMonster(writer *lbytes.Writer, gate rversion.Gate, lore MonsterLore) error {
	return lbytes.EncodeSchema(writer, gate, MonsterSchema, lore)
}

func EncodeKind(writer *lbytes.Writer, gate rversion.Gate, lore KindLore) error {
	return lbytes.EncodeSchema(writer, gate, KindSchema, lore)
}

func EncodeArtifact(writer *lbytes.Writer, gate rversion.Gate, lore ArtifactLore) error {
	return lbytes.EncodeSchema(writer, gate, ArtifactSchema, lore)
}

func EncodeEgo(writer *lbytes.Writer, gate rversion.Gate, lore EgoLore) error {
	return lbytes.EncodeSchema(writer, gate, EgoSchema, lore)
}

func EncodeFlavor(writer *lbytes.Writer, gate rversion.Gate, lore FlavorLore) error {
	return lbytes.EncodeSchema(writer, gate, FlavorSchema, lore)
}
