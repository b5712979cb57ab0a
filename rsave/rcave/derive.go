package rcave

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"roguesave/ds"
	"roguesave/rsave/rinfo"
)

var neighbours = ds.MakeRange(-1, 2, 1)

// Derive rebuilds what the savefile never stores: the sight and fire
// blocking bits, the dynamic terrain list and the halo around glowing
// terrain. Running it twice gives the same cave.
func (c *Cave) Derive(features []rinfo.Feature, limits rinfo.Limits) error {
	if len(features) == 0 {
		return errors.New("Derive error: no feature table")
	}

	c.Dyna = c.Dyna[:0]
	c.DynaFull = false
	glows := ds.NewStack[Point]()

	for y := range c.Info {
		for x := range c.Info[y] {
			c.Info[y][x] &^= CaveDerived

			feat := int(c.Feat[y][x])
			if feat >= len(features) {
				return errors.Errorf("Derive error: unknown feature %d at (%d, %d)", feat, y, x)
			}
			flags := features[feat].Flags
			if flags.Has(rinfo.FeatBlockLOS) {
				c.Info[y][x] |= CaveXLOS
			}
			if flags.Has(rinfo.FeatBlockFire) {
				c.Info[y][x] |= CaveXLOF
			}
			if flags.Has(rinfo.FeatDynamic) {
				c.addDyna(Point{Y: y, X: x}, limits.DynaMax)
			}
			if flags.Has(rinfo.FeatGlow) {
				glows.Push(Point{Y: y, X: x})
			}
		}
	}

	c.diffuseHalo(glows, limits.HaloRadius)
	glog.V(2).Infof("derived %d dynamic cells (full: %v)", len(c.Dyna), c.DynaFull)
	return nil
}

func (c *Cave) addDyna(p Point, max int) {
	if c.DynaFull {
		return
	}
	if len(c.Dyna) >= max {
		c.DynaFull = true
		return
	}
	c.Dyna = append(c.Dyna, p)
}

// diffuseHalo lights every cell within radius (Chebyshev distance) of a
// glowing cell. reach holds the most steps left at each cell so far; a
// cell is revisited only when a source gets there with more to spare.
func (c *Cave) diffuseHalo(worklist *ds.Stack[Point], radius int) {
	if radius < 0 || worklist.Len() == 0 {
		return
	}
	reach := ds.Repeat(CellCount, -1)
	for _, p := range worklist.Items() {
		reach[p.Y*DungeonWid+p.X] = radius
	}

	for {
		p, ok := worklist.Pop()
		if !ok {
			break
		}
		c.Info[p.Y][p.X] |= CaveHalo
		left := reach[p.Y*DungeonWid+p.X] - 1
		if left < 0 {
			continue
		}
		for _, dy := range neighbours {
			for _, dx := range neighbours {
				y, x := p.Y+dy, p.X+dx
				if !InBounds(y, x) || reach[y*DungeonWid+x] >= left {
					continue
				}
				reach[y*DungeonWid+x] = left
				worklist.Push(Point{Y: y, X: x})
			}
		}
	}
}

func InBounds(y int, x int) bool {
	return 0 <= y && y < DungeonHgt && 0 <= x && x < DungeonWid
}
