package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID         uint            `gorm:"primaryKey"`
	CustomerID *uint           `gorm:"index"`
	Lines      []OrderLine     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Total      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt  time.Time
}

// OrderLine keeps a frozen copy of the product name and price at purchase time.
type OrderLine struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   uint            `gorm:"not null;index"`
	ProductID uint            `gorm:"not null;index"`
	Name      string          `gorm:"size:255;not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	Quantity  int             `gorm:"not null"`
}

func (l OrderLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// ComputeTotal sums snapshotted line totals, rounded to cents.
func ComputeTotal(lines []OrderLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.LineTotal())
	}
	return total.Round(2)
}
