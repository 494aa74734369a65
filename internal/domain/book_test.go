package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBookFinalPrice(t *testing.T) {
	list := decimal.NewFromInt(10000)

	t.Run("no sale price", func(t *testing.T) {
		b := Book{Price: list}
		assert.True(t, list.Equal(b.FinalPrice()))
	})

	t.Run("cheaper sale price wins", func(t *testing.T) {
		sale := decimal.NewFromInt(8000)
		b := Book{Price: list, SalePrice: &sale}
		assert.True(t, sale.Equal(b.FinalPrice()))
	})

	t.Run("sale price above list is ignored", func(t *testing.T) {
		sale := decimal.NewFromInt(12000)
		b := Book{Price: list, SalePrice: &sale}
		assert.True(t, list.Equal(b.FinalPrice()))
	})
}

func TestBookInCategory(t *testing.T) {
	b := Book{Categories: []Category{{ID: 1}, {ID: 2}}}
	assert.True(t, b.InCategory(2))
	assert.False(t, b.InCategory(3))
	assert.Equal(t, []int64{1, 2}, b.CategoryIDs())
}
