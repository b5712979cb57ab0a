package rsave

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"roguesave/rsave/lbytes"
	"roguesave/rsave/rerr"
	"roguesave/rsave/rinfo"
	"roguesave/rsave/robject"
	"roguesave/rsave/rversion"
)

// inventory reads (slot, object) pairs until the end marker. Pack items
// are packed into the first free pack slots; equipment keeps its slot.
func (l *loader) inventory() error {
	limits := l.state.Tables.Limits
	l.state.Inventory = make([]robject.Object, limits.InvenTotal)
	packCount := 0

	for {
		slot, err := l.reader.ReadU16()
		if err != nil {
			return errors.Wrap(err, "reading slot")
		}
		if slot == lbytes.EndOfList {
			return nil
		}
		object, err := robject.Decode(l.reader, l.version, l.state.Tables)
		if err != nil {
			return errors.Wrapf(err, "reading item in slot %d", slot)
		}
		if object.IsEmpty() {
			continue
		}

		switch {
		case int(slot) >= limits.InvenTotal:
			return rerr.Malformed(StageInventory, "slot", int64(slot), int64(limits.InvenTotal-1))
		case int(slot) >= limits.PackMax:
			l.state.Inventory[slot] = *object
		default:
			if packCount >= limits.PackMax {
				return rerr.Malformed(StageInventory, "pack", int64(packCount+1), int64(limits.PackMax))
			}
			l.state.Inventory[packCount] = *object
			packCount++
		}
		l.state.MarkArtifact(*object)
	}
}

func (l *loader) bags() error {
	if l.version.OlderThan(rversion.V062) {
		return l.legacyBags()
	}
	bags := l.state.Tables.Bags
	count, err := l.readCount(StageBags, "count", len(bags))
	if err != nil {
		return err
	}
	l.state.Bags = emptyBags(bags)
	for i := 0; i < count; i++ {
		slots, err := l.readCount(StageBags, "slots", bags[i].Slots)
		if err != nil {
			return errors.Wrapf(err, "bag %d", i)
		}
		for j := 0; j < slots; j++ {
			value, err := l.reader.ReadU16()
			if err != nil {
				return errors.Wrapf(err, "reading slot %d of bag %d", j, i)
			}
			l.state.Bags[i][j] = int(value)
		}
	}
	return nil
}

// legacyBags reads the flat layout of saves before 0.6.2: one count of
// all slots, then every slot in bag table order.
func (l *loader) legacyBags() error {
	bags := l.state.Tables.Bags
	count, err := l.readCount(StageBags, "count", l.state.Tables.BagSlots())
	if err != nil {
		return err
	}
	flat := make([]int, 0, count)
	for i := 0; i < count; i++ {
		value, err := l.reader.ReadU16()
		if err != nil {
			return errors.Wrapf(err, "reading legacy slot %d", i)
		}
		flat = append(flat, int(value))
	}
	l.state.Bags = fixBags(flat, bags)
	return nil
}

func emptyBags(bags []rinfo.Bag) [][]int {
	return lo.Map(
		bags,
		func(bag rinfo.Bag, _ int) []int {
			return make([]int, bag.Slots)
		},
	)
}

// fixBags hands the flat slot list out to the bags in table order, each
// bag taking as many slots as it has. Bags past the end of the list stay
// empty.
func fixBags(flat []int, bags []rinfo.Bag) [][]int {
	fixed := emptyBags(bags)
	offset := 0
	for i := range bags {
		if offset >= len(flat) {
			break
		}
		offset += copy(fixed[i], flat[offset:])
	}
	return fixed
}
