package rlink

import (
	"roguesave/rsave/rindex"
	"roguesave/rsave/robject"
	"roguesave/rsave/rregion"
)

// Chain follows next from head and collects the handles. It stops at
// the first handle the arena does not hold or that it has already
// visited.
func Chain[T any](arena *rindex.Arena[T], head rindex.Ref, next func(t *T) rindex.Ref) []rindex.Ref {
	refs := []rindex.Ref{}
	seen := map[rindex.Ref]bool{}
	for ref := head; ref.IsSet() && !seen[ref]; {
		t := arena.Get(ref)
		if t == nil {
			break
		}
		seen[ref] = true
		refs = append(refs, ref)
		ref = next(t)
	}
	return refs
}

func NextObject(object *robject.Object) rindex.Ref {
	return object.NextOIdx
}

func NextInRegion(piece *rregion.Piece) rindex.Ref {
	return piece.NextInRegion
}

func NextInGrid(piece *rregion.Piece) rindex.Ref {
	return piece.NextInGrid
}
