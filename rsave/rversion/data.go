package rversion

type (
	// Version is the four byte savefile version. Extra doubles as the
	// descrambling seed of the file that carries it.
	Version struct {
		Major uint8 `json:"major"`
		Minor uint8 `json:"minor"`
		Patch uint8 `json:"patch"`
		Extra uint8 `json:"extra"`
	}
	Gate interface {
		OlderThan(other Version) bool
	}
)

var (
	// Current is the newest layout this module writes and reads.
	Current = Version{0, 6, 4, 0}
	// Oldest is the oldest layout still readable.
	Oldest = Version{0, 5, 0, 0}
)

// Milestones at which the layout changed.
var (
	V051 = Version{0, 5, 1, 0}
	V052 = Version{0, 5, 2, 0}
	V053 = Version{0, 5, 3, 0}
	V054 = Version{0, 5, 4, 0}
	V060 = Version{0, 6, 0, 0}
	V061 = Version{0, 6, 1, 0}
	V062 = Version{0, 6, 2, 0}
	V063 = Version{0, 6, 3, 0}
	V064 = Version{0, 6, 4, 0}
)
