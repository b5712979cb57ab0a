package rstore

import (
	"roguesave/rsave/lbytes"
	"roguesave/rsave/robject"
)

// Store is a town store: the template's static fields overlaid with what
// the savefile remembers.
type Store struct {
	Name      string `json:"name"`
	StockSize int    `json:"stock_size"`
	OwnerName string `json:"owner_name"`

	StoreOpen int `json:"store_open"`
	InsultCur int `json:"insult_cur"`
	Owner     int `json:"owner"`
	StockNum  int `json:"stock_num"`
	GoodBuy   int `json:"good_buy"`
	BadBuy    int `json:"bad_buy"`

	Stock []robject.Object `json:"stock"`
}

var Schema = lbytes.Schema{
	{Key: "store_open", Kind: lbytes.KindS32},
	{Key: "insult_cur", Kind: lbytes.KindS16},
	{Key: "owner", Kind: lbytes.KindU8},
	{Key: "stock_num", Kind: lbytes.KindU8},
	{Key: "good_buy", Kind: lbytes.KindS16},
	{Key: "bad_buy", Kind: lbytes.KindS16},
}
