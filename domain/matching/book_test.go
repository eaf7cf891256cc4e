package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sidePrices(b *OrderBook, side Side) []int64 {
	var prices []int64
	b.Each(side, func(o *Order) { prices = append(prices, o.Price) })
	return prices
}

func sideIDs(b *OrderBook, side Side) []uint64 {
	var ids []uint64
	b.Each(side, func(o *Order) { ids = append(ids, o.ID) })
	return ids
}

func TestEnqueueKeepsPriceTimePriority(t *testing.T) {
	sec := newTestSecurity()
	book := sec.Book

	book.Enqueue(restingOrder(sec, orderSpec{id: 1, side: Buy, qty: 10, price: 100}))
	book.Enqueue(restingOrder(sec, orderSpec{id: 2, side: Buy, qty: 10, price: 105}))
	book.Enqueue(restingOrder(sec, orderSpec{id: 3, side: Buy, qty: 10, price: 100}))
	book.Enqueue(restingOrder(sec, orderSpec{id: 4, side: Buy, qty: 10, price: 98}))

	assert.Equal(t, []uint64{2, 1, 3, 4}, sideIDs(book, Buy))

	book.Enqueue(restingOrder(sec, orderSpec{id: 5, side: Sell, qty: 10, price: 101}))
	book.Enqueue(restingOrder(sec, orderSpec{id: 6, side: Sell, qty: 10, price: 99}))
	book.Enqueue(restingOrder(sec, orderSpec{id: 7, side: Sell, qty: 10, price: 101}))

	assert.Equal(t, []uint64{6, 5, 7}, sideIDs(book, Sell))
}

func TestEnqueueMarksQueued(t *testing.T) {
	sec := newTestSecurity()
	o := restingOrder(sec, orderSpec{id: 1, side: Buy, qty: 10, price: 100})
	require.Equal(t, OrderNew, o.Status)
	sec.Book.Enqueue(o)
	assert.Equal(t, OrderQueued, o.Status)
}

func TestFindAndRemoveByID(t *testing.T) {
	sec := newTestSecurity()
	book := sec.Book
	book.Enqueue(restingOrder(sec, orderSpec{id: 1, side: Sell, qty: 10, price: 100}))
	book.Enqueue(restingOrder(sec, orderSpec{id: 2, side: Sell, qty: 10, price: 101}))

	require.NotNil(t, book.FindByID(Sell, 2))
	assert.Nil(t, book.FindByID(Sell, 3))
	assert.Nil(t, book.FindByID(Buy, 1))

	assert.True(t, book.RemoveByID(Sell, 1))
	assert.False(t, book.RemoveByID(Sell, 1))
	assert.Equal(t, []uint64{2}, sideIDs(book, Sell))
}

func TestRestorePutsOrderAtFront(t *testing.T) {
	sec := newTestSecurity()
	book := sec.Book
	book.Enqueue(restingOrder(sec, orderSpec{id: 1, side: Sell, qty: 10, price: 100}))
	book.Enqueue(restingOrder(sec, orderSpec{id: 2, side: Sell, qty: 10, price: 100}))

	// Restoring id 2 ahead of id 1 must bypass the sorted insert.
	snap := book.FindByID(Sell, 2).Snapshot()
	book.Restore(snap)

	assert.Equal(t, []uint64{2, 1}, sideIDs(book, Sell))
	assert.Equal(t, OrderQueued, book.First(Sell).Status)
}

func TestTotalSellQuantityByShareholder(t *testing.T) {
	sec := newTestSecurity()
	sh := newTestShareholder()
	other := newTestShareholder()

	sec.Book.Enqueue(restingOrder(sec, orderSpec{id: 1, side: Sell, qty: 30, price: 100, shareholder: sh}))
	sec.Book.Enqueue(restingOrder(sec, orderSpec{id: 2, side: Sell, qty: 20, price: 101, shareholder: sh}))
	sec.Book.Enqueue(restingOrder(sec, orderSpec{id: 3, side: Sell, qty: 50, price: 102, shareholder: other}))
	sec.Book.Enqueue(restingOrder(sec, orderSpec{id: 4, side: Buy, qty: 99, price: 90, shareholder: sh}))

	assert.Equal(t, int64(50), sec.Book.TotalSellQuantityBy(sh))
	assert.Equal(t, int64(50), sec.Book.TotalSellQuantityBy(other))
}

func TestDepthAggregatesPriceLevels(t *testing.T) {
	sec := newTestSecurity()
	book := sec.Book
	book.Enqueue(restingOrder(sec, orderSpec{id: 1, side: Buy, qty: 10, price: 100}))
	book.Enqueue(restingOrder(sec, orderSpec{id: 2, side: Buy, qty: 15, price: 100}))
	book.Enqueue(restingOrder(sec, orderSpec{id: 3, side: Buy, qty: 5, price: 99}))
	book.Enqueue(restingOrder(sec, orderSpec{id: 4, side: Buy, qty: 7, price: 98}))

	levels := book.Depth(Buy, 2)
	require.Len(t, levels, 2)
	assert.Equal(t, PriceLevel{Price: 100, Quantity: 25}, levels[0])
	assert.Equal(t, PriceLevel{Price: 99, Quantity: 5}, levels[1])
}

func TestDepthHidesIcebergReserve(t *testing.T) {
	sec := newTestSecurity()
	book := sec.Book
	book.Enqueue(restingOrder(sec, orderSpec{id: 1, side: Sell, qty: 100, price: 50, peak: 20}))

	levels := book.Depth(Sell, 0)
	require.Len(t, levels, 1)
	assert.Equal(t, int64(20), levels[0].Quantity)
}

func TestSplitAtPrice(t *testing.T) {
	sec := newTestSecurity()
	book := sec.Book
	book.Enqueue(restingOrder(sec, orderSpec{id: 1, side: Buy, qty: 10, price: 12}))
	book.Enqueue(restingOrder(sec, orderSpec{id: 2, side: Buy, qty: 10, price: 10}))
	book.Enqueue(restingOrder(sec, orderSpec{id: 3, side: Buy, qty: 10, price: 9}))
	book.Enqueue(restingOrder(sec, orderSpec{id: 4, side: Sell, qty: 10, price: 9}))
	book.Enqueue(restingOrder(sec, orderSpec{id: 5, side: Sell, qty: 10, price: 10}))
	book.Enqueue(restingOrder(sec, orderSpec{id: 6, side: Sell, qty: 10, price: 11}))

	crossing := book.SplitAtPrice(10)

	assert.Equal(t, []uint64{1, 2}, sideIDs(crossing, Buy))
	assert.Equal(t, []uint64{4, 5}, sideIDs(crossing, Sell))
	assert.Equal(t, []uint64{3}, sideIDs(book, Buy))
	assert.Equal(t, []uint64{6}, sideIDs(book, Sell))
}

func TestInactiveBookOrdersByStopPrice(t *testing.T) {
	sec := newTestSecurity()
	inactive := sec.InactiveBook

	inactive.Enqueue(restingOrder(sec, orderSpec{id: 1, side: Buy, qty: 10, price: 100, stop: 110}))
	inactive.Enqueue(restingOrder(sec, orderSpec{id: 2, side: Buy, qty: 10, price: 100, stop: 105}))
	inactive.Enqueue(restingOrder(sec, orderSpec{id: 3, side: Sell, qty: 10, price: 100, stop: 90}))
	inactive.Enqueue(restingOrder(sec, orderSpec{id: 4, side: Sell, qty: 10, price: 100, stop: 95}))

	// Buy: lowest trigger first. Sell: highest trigger first.
	assert.Equal(t, []uint64{2, 1}, sideIDs(&inactive.OrderBook, Buy))
	assert.Equal(t, []uint64{4, 3}, sideIDs(&inactive.OrderBook, Sell))
}

func TestPopIfEligible(t *testing.T) {
	sec := newTestSecurity()
	inactive := sec.InactiveBook
	inactive.Enqueue(restingOrder(sec, orderSpec{id: 1, side: Sell, qty: 10, price: 90, stop: 95}))

	assert.Nil(t, inactive.PopIfEligible(Sell, 95))
	require.NotNil(t, inactive.FindByID(Sell, 1))

	popped := inactive.PopIfEligible(Sell, 94)
	require.NotNil(t, popped)
	assert.Equal(t, uint64(1), popped.ID)
	assert.False(t, inactive.HasOrders(Sell))
}
