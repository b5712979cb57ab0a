package rrand

import (
	"roguesave/rsave/lbytes"
)

// Degree is the size of the state table of the complex generator.
const Degree = 63

type (
	// State is the complex generator as it is saved.
	State struct {
		Place uint16         `json:"place"`
		Table [Degree]uint32 `json:"table"`
	}
	// Quick is the linear congruential generator used for seeded work.
	Quick struct {
		Value uint32
	}
)

var Schema = lbytes.Schema{
	{Key: "place", Kind: lbytes.KindU16},
	{Key: "table", Kind: lbytes.KindU32, Len: Degree},
}

var syllables = []string{
	"ab", "ag", "al", "an", "ar", "bel", "dor", "du", "el", "en",
	"fal", "gil", "gor", "ith", "kha", "lo", "mir", "nar", "or", "ra",
	"ril", "sul", "tha", "ug", "ur", "vel", "wen", "yth", "zan", "zog",
}
