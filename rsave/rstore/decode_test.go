package rstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roguesave/rsave/lbytes"
	"roguesave/rsave/rinfo"
	"roguesave/rsave/robject"
	"roguesave/rsave/rversion"
)

func sampleStore() Store {
	return Store{
		StoreOpen: 12000, InsultCur: 2, Owner: 1, GoodBuy: 5, BadBuy: -3,
		Stock: []robject.Object{
			{KIdx: 1, Number: 5},
			{KIdx: 3, Number: 2},
			{KIdx: 2, Number: 10},
		},
	}
}

func encodeStore(t *testing.T, store Store) []byte {
	writer := lbytes.NewWriter()
	require.NoError(t, Encode(writer, rversion.Current, store))
	writer.WriteU8(0x77)
	return writer.Bytes()
}

func assertAligned(t *testing.T, reader *lbytes.Reader) {
	tail, err := reader.ReadU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x77), tail)
}

func TestDecode_CopiesTemplate(t *testing.T) {
	tables, err := rinfo.Default()
	require.NoError(t, err)

	reader := lbytes.NewBytesReader(encodeStore(t, sampleStore()))
	store, warning, err := Decode(reader, rversion.Current, tables, 0, &tables.Stores[0])
	require.NoError(t, err)
	assert.Nil(t, warning)
	assertAligned(t, reader)

	assert.Equal(t, "General Store", store.Name)
	assert.Equal(t, "Raistlin the Chicken", store.OwnerName)
	assert.Equal(t, 24, store.StockSize)
	assert.Equal(t, 12000, store.StoreOpen)
	assert.Equal(t, -3, store.BadBuy)
	assert.Equal(t, 3, store.StockNum)
	assert.Equal(t, []int{80, 75, 77}, []int{store.Stock[0].Tval, store.Stock[1].Tval, store.Stock[2].Tval})
}

func TestDecode_StockOverflowIsClamped(t *testing.T) {
	tables, err := rinfo.Default()
	require.NoError(t, err)
	template := rinfo.StoreTemplate{Name: "Stall", StockSize: 2, Owners: []string{"Ted"}}

	reader := lbytes.NewBytesReader(encodeStore(t, sampleStore()))
	store, warning, err := Decode(reader, rversion.Current, tables, 3, &template)
	require.NoError(t, err)
	assertAligned(t, reader)

	require.NotNil(t, warning)
	assert.Equal(t, 3, warning.Store)
	assert.Equal(t, 3, warning.Declared)
	assert.Equal(t, 2, warning.Capacity)
	assert.Len(t, store.Stock, 2)
	assert.Equal(t, 2, store.StockNum)
	assert.Equal(t, 0, store.Owner)
	assert.Equal(t, "Ted", store.OwnerName)
}

func TestDecode_DroppedStoreKeepsAlignment(t *testing.T) {
	tables, err := rinfo.Default()
	require.NoError(t, err)

	reader := lbytes.NewBytesReader(encodeStore(t, sampleStore()))
	store, warning, err := Decode(reader, rversion.Current, tables, 9, nil)
	require.NoError(t, err)
	assert.Nil(t, store)
	assert.Nil(t, warning)
	assertAligned(t, reader)
}

func TestDecode_BadItemIsAnError(t *testing.T) {
	tables, err := rinfo.Default()
	require.NoError(t, err)
	store := sampleStore()
	store.Stock[1].KIdx = 999

	reader := lbytes.NewBytesReader(encodeStore(t, store))
	_, _, err = Decode(reader, rversion.Current, tables, 0, &tables.Stores[0])
	assert.Error(t, err)
}
