package models

import (
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Allowed category names.
const (
	CategoryHombre    = "hombre"
	CategoryMujer     = "mujer"
	CategoryAccesorio = "accesorio"
)

type Category struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"size:255;not null"`
	Slug string `gorm:"size:255;uniqueIndex"`
}

func ValidCategoryName(name string) bool {
	switch name {
	case CategoryHombre, CategoryMujer, CategoryAccesorio:
		return true
	}
	return false
}

func (c *Category) BeforeSave(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = slug.Make(c.Name)
	}
	return nil
}
