package ds

// ShallowCopy copies the elements into fresh backing
// storage. A nil slice stays nil.
func ShallowCopy[T any](ts []T) []T {
	if ts == nil {
		return nil
	}
	tsCopy := make([]T, len(ts))
	copy(tsCopy, ts)
	return tsCopy
}
