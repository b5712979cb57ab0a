package rstore

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"roguesave/rsave/lbytes"
	"roguesave/rsave/rerr"
	"roguesave/rsave/rinfo"
	"roguesave/rsave/robject"
	"roguesave/rsave/rversion"
)

// Decode reads store number index. Every declared item is read so the
// stream stays aligned, but only StockSize of them are kept; the rest
// are reported in the returned warning. A nil template reads the store
// and returns nil, for stores the edit tables no longer have.
func Decode(
	reader *lbytes.Reader,
	gate rversion.Gate,
	tables *rinfo.Tables,
	index int,
	template *rinfo.StoreTemplate,
) (*Store, *rerr.WarnStoreOverflow, error) {
	store, err := lbytes.DecodeSchema[Store](reader, gate, Schema)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "rstore.Decode error reading store %d", index)
	}

	stock := make([]robject.Object, 0, store.StockNum)
	for i := 0; i < store.StockNum; i++ {
		object, err := robject.Decode(reader, gate, tables)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "rstore.Decode error reading item %d of store %d", i, index)
		}
		if object.IsEmpty() {
			continue
		}
		stock = append(stock, *object)
	}
	if template == nil {
		return nil, nil, nil
	}

	store.Name = template.Name
	store.StockSize = template.StockSize
	if store.Owner >= len(template.Owners) {
		glog.V(2).Infof("store %d: owner %d unknown, using owner 0", index, store.Owner)
		store.Owner = 0
	}
	if len(template.Owners) > 0 {
		store.OwnerName = template.Owners[store.Owner]
	}

	var warning *rerr.WarnStoreOverflow
	if len(stock) > store.StockSize {
		warning = &rerr.WarnStoreOverflow{
			Store:    index,
			Declared: len(stock),
			Capacity: store.StockSize,
		}
		stock = stock[:store.StockSize]
	}
	store.Stock = stock
	store.StockNum = len(stock)
	return store, warning, nil
}

// Encode writes the overlay and the stock; the template fields are not
// part of the stream.
func Encode(writer *lbytes.Writer, gate rversion.Gate, store Store) error {
	store.StockNum = len(store.Stock)
	if err := lbytes.EncodeSchema(writer, gate, Schema, store); err != nil {
		return errors.Wrap(err, "rstore.Encode error")
	}
	for i, object := range store.Stock {
		if err := robject.Encode(writer, gate, object); err != nil {
			return errors.Wrapf(err, "rstore.Encode error writing item %d", i)
		}
	}
	return nil
}
