package repository

import (
	"context"

	"github.com/mayra-Sanchez/wm-backend/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uint) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	// GetAll lists products, optionally restricted to one category.
	GetAll(ctx context.Context, categoryID *uint) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
}

type CartRepository interface {
	// GetOrCreate returns the user's cart, creating it on first use.
	GetOrCreate(ctx context.Context, userID uint) (*models.Cart, error)
	// FindByOwner returns the cart with its lines and products, or ErrCartNotFound.
	FindByOwner(ctx context.Context, userID uint) (*models.Cart, error)
	// UpsertLine adds quantity to the (cart, product) line, creating it if absent.
	UpsertLine(ctx context.Context, cartID, productID uint, quantity int) (*models.CartLine, error)
	SetLineQuantity(ctx context.Context, userID, productID uint, quantity int) error
	RemoveLine(ctx context.Context, userID, productID uint) error
	Clear(ctx context.Context, userID uint) error
}

type OrderRepository interface {
	// Create persists the order and all of its lines atomically and sets Total.
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id uint) (*models.Order, error)
	GetByCustomer(ctx context.Context, customerID uint) ([]models.Order, error)
	GetAll(ctx context.Context) ([]models.Order, error)
}
