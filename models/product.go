package models

import (
	"errors"
	"time"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DefaultProductImage = "productos/default.jpg"
	DefaultCategoryID   = 1
)

// Price columns are decimal(10,3).
const (
	PriceDecimals = 3
	priceDigits   = 7
)

var maxPrice = decimal.New(1, priceDigits)

var (
	ErrEmptySlug      = errors.New("product name must contain letters or digits")
	ErrNegativePrice  = errors.New("price must not be negative")
	ErrPricePrecision = errors.New("price must have at most 3 decimal places")
	ErrPriceTooLarge  = errors.New("price must have at most 7 digits before the decimal point")
)

// CheckPrice reports whether p fits a price column without rounding.
func CheckPrice(p decimal.Decimal) error {
	if p.IsNegative() {
		return ErrNegativePrice
	}
	if !p.Equal(p.Truncate(PriceDecimals)) {
		return ErrPricePrecision
	}
	if p.GreaterThanOrEqual(maxPrice) {
		return ErrPriceTooLarge
	}
	return nil
}

// ProductSlug is the slug derived from a product name. It is empty when the
// name has nothing transliterable.
func ProductSlug(name string) string {
	return slug.Make(name)
}

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"size:255;not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	Stock       int             `gorm:"not null;default:0"`
	Image       string          `gorm:"size:255;not null;default:'productos/default.jpg'"`
	Slug        string          `gorm:"size:255;uniqueIndex"`
	CategoryID  uint            `gorm:"not null;default:1;index"`
	Category    Category
	CreatedAt   time.Time
}

// BeforeSave derives the slug from the name when none was given and refuses
// to store a product without one.
func (p *Product) BeforeSave(tx *gorm.DB) error {
	if p.Slug == "" {
		p.Slug = ProductSlug(p.Name)
	}
	if p.Slug == "" {
		return ErrEmptySlug
	}
	if p.Image == "" {
		p.Image = DefaultProductImage
	}
	return nil
}
