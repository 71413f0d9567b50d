package repository

import "gorm.io/gorm"

// Store bundles the repositories handed to the HTTP layer.
type Store struct {
	Users      UserRepository
	Categories CategoryRepository
	Products   ProductRepository
	Carts      CartRepository
	Orders     OrderRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		Users:      NewUserRepository(db),
		Categories: NewCategoryRepository(db),
		Products:   NewProductRepository(db),
		Carts:      NewCartRepository(db),
		Orders:     NewOrderRepository(db),
	}
}
