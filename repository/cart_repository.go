package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/mayra-Sanchez/wm-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type cartRepo struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepo{db: db}
}

// GetOrCreate relies on the unique index on carts.user_id: concurrent callers
// both attempt the insert, one wins, and both read back the same row.
func (r *cartRepo) GetOrCreate(ctx context.Context, userID uint) (*models.Cart, error) {
	db := r.db.WithContext(ctx)

	cart := models.Cart{UserID: userID}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&cart).Error; err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	var stored models.Cart
	if err := db.Where("user_id = ?", userID).First(&stored).Error; err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return &stored, nil
}

func (r *cartRepo) FindByOwner(ctx context.Context, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("cart_lines.id") }).
		Preload("Lines.Product").
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		return nil, notFound(err, ErrCartNotFound)
	}
	return &cart, nil
}

// UpsertLine increments an existing (cart, product) line or inserts a new one
// in a single statement, so repeated adds never produce duplicate lines.
func (r *cartRepo) UpsertLine(ctx context.Context, cartID, productID uint, quantity int) (*models.CartLine, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	db := r.db.WithContext(ctx)

	line := models.CartLine{CartID: cartID, ProductID: productID, Quantity: quantity}
	if err := db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_lines.quantity + excluded.quantity"),
		}),
	}).Create(&line).Error; err != nil {
		return nil, fmt.Errorf("failed to add item to cart: %w", err)
	}

	var stored models.CartLine
	if err := db.Preload("Product").
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&stored).Error; err != nil {
		return nil, fmt.Errorf("failed to load cart line: %w", err)
	}
	return &stored, nil
}

func (r *cartRepo) SetLineQuantity(ctx context.Context, userID, productID uint, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	db := r.db.WithContext(ctx)

	cartID, err := r.cartID(db, userID)
	if err != nil {
		return err
	}

	res := db.Model(&models.CartLine{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Update("quantity", quantity)
	if res.Error != nil {
		return fmt.Errorf("failed to update cart line: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrLineNotFound
	}
	return nil
}

// RemoveLine is idempotent: a missing cart or line is not an error.
func (r *cartRepo) RemoveLine(ctx context.Context, userID, productID uint) error {
	db := r.db.WithContext(ctx)

	cartID, err := r.cartID(db, userID)
	if errors.Is(err, ErrCartNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := db.Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&models.CartLine{}).Error; err != nil {
		return fmt.Errorf("failed to delete cart line: %w", err)
	}
	return nil
}

func (r *cartRepo) Clear(ctx context.Context, userID uint) error {
	db := r.db.WithContext(ctx)

	cartID, err := r.cartID(db, userID)
	if errors.Is(err, ErrCartNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := db.Where("cart_id = ?", cartID).Delete(&models.CartLine{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (r *cartRepo) cartID(db *gorm.DB, userID uint) (uint, error) {
	var cart models.Cart
	if err := db.Select("id").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return 0, notFound(err, ErrCartNotFound)
	}
	return cart.ID, nil
}
