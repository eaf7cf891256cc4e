package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpeningRangeMaximizesVolume(t *testing.T) {
	sec := newTestSecurity()
	book := sec.Book
	book.Enqueue(restingOrder(sec, orderSpec{id: 1, side: Sell, qty: 100, price: 10}))
	book.Enqueue(restingOrder(sec, orderSpec{id: 2, side: Sell, qty: 50, price: 9}))
	book.Enqueue(restingOrder(sec, orderSpec{id: 3, side: Buy, qty: 80, price: 12}))
	book.Enqueue(restingOrder(sec, orderSpec{id: 4, side: Buy, qty: 40, price: 9}))

	r := book.OpeningRange()
	assert.Equal(t, int64(9), r.MinPrice)
	assert.Equal(t, int64(9), r.MaxPrice)
	assert.Equal(t, int64(120), r.Quantity)
}

func TestOpeningRangeCountsHiddenIcebergReserve(t *testing.T) {
	sec := newTestSecurity()
	book := sec.Book
	book.Enqueue(restingOrder(sec, orderSpec{id: 1, side: Sell, qty: 100, price: 10, peak: 10}))
	book.Enqueue(restingOrder(sec, orderSpec{id: 2, side: Buy, qty: 100, price: 10}))

	r := book.OpeningRange()
	assert.Equal(t, int64(100), r.Quantity)
}

func TestOpeningRangeNoCross(t *testing.T) {
	sec := newTestSecurity()
	book := sec.Book
	book.Enqueue(restingOrder(sec, orderSpec{id: 1, side: Sell, qty: 100, price: 20}))
	book.Enqueue(restingOrder(sec, orderSpec{id: 2, side: Buy, qty: 100, price: 10}))

	r := book.OpeningRange()
	assert.Equal(t, OpeningRange{}, r)
	assert.Equal(t, int64(0), r.ClosestTo(15))
}

func TestOpeningRangeClosestTo(t *testing.T) {
	r := OpeningRange{MinPrice: 9, MaxPrice: 12, Quantity: 50}
	assert.Equal(t, int64(9), r.ClosestTo(5))
	assert.Equal(t, int64(12), r.ClosestTo(20))
	assert.Equal(t, int64(10), r.ClosestTo(10))
}
