package rversion

import (
	"fmt"
)

// OlderThan reports whether v is strictly older than the given
// components, comparing major first and stopping at the first component
// that differs.
func OlderThan(v Version, major, minor, patch, extra uint8) bool {
	return v.OlderThan(Version{major, minor, patch, extra})
}

func (v Version) OlderThan(other Version) bool {
	return Compare(v, other) < 0
}

func Compare(a Version, b Version) int {
	as := [4]uint8{a.Major, a.Minor, a.Patch, a.Extra}
	bs := [4]uint8{b.Major, b.Minor, b.Patch, b.Extra}
	for i := range as {
		if as[i] < bs[i] {
			return -1
		}
		if as[i] > bs[i] {
			return 1
		}
	}
	return 0
}

func (v Version) IsZero() bool {
	return v == Version{}
}

// Release drops the scramble seed, leaving the part of the version that
// names a release.
func (v Version) Release() Version {
	v.Extra = 0
	return v
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
