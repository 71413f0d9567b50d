package repository

import (
	"context"
	"fmt"

	"github.com/mayra-Sanchez/wm-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func validateProduct(p *models.Product) error {
	if p.Name == "" {
		return fmt.Errorf("%w: product name required", ErrInvalidInput)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: product stock cannot be negative", ErrInvalidInput)
	}
	if err := models.CheckPrice(p.Price); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if p.Slug == "" && models.ProductSlug(p.Name) == "" {
		return fmt.Errorf("%w: %v", ErrInvalidInput, models.ErrEmptySlug)
	}
	return nil
}

func (r *productRepo) Create(ctx context.Context, p *models.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: product with this slug already exists", ErrDuplicate)
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *productRepo) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, notFound(err, ErrProductNotFound)
	}
	return &p, nil
}

func (r *productRepo) GetAll(ctx context.Context, categoryID *uint) ([]models.Product, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{})
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var products []models.Product
	if err := query.Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

func (r *productRepo) Update(ctx context.Context, p *models.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: product with this slug already exists", ErrDuplicate)
		}
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// Delete removes the product and any cart lines pointing at it. Order lines
// keep their snapshot and are left untouched.
func (r *productRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.CartLine{}).Error; err != nil {
			return fmt.Errorf("failed to clear cart lines: %w", err)
		}
		res := tx.Delete(&models.Product{}, id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete product: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrProductNotFound
		}
		return nil
	})
}
