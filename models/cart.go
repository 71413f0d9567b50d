package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	ID        uint       `gorm:"primaryKey"`
	UserID    uint       `gorm:"uniqueIndex;not null"` // Enforces ONE cart per user
	Lines     []CartLine `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

type CartLine struct {
	ID        uint `gorm:"primaryKey"`
	CartID    uint `gorm:"not null;uniqueIndex:idx_cart_product"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_cart_product"`
	Product   Product
	Quantity  int `gorm:"not null;default:1"`
}

// LineTotal is quantity × the product's current price.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Total sums the line totals of the cart. Lines must have Product loaded.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	if c == nil {
		return total
	}
	for _, l := range c.Lines {
		total = total.Add(l.LineTotal())
	}
	return total
}
