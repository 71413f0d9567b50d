package repository

import (
	"context"
	"fmt"

	"github.com/mayra-Sanchez/wm-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, c *models.Category) error {
	if !models.ValidCategoryName(c.Name) {
		return fmt.Errorf("%w: unknown category name %q", ErrInvalidInput, c.Name)
	}
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: category with this slug already exists", ErrDuplicate)
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *categoryRepo) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var c models.Category
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, notFound(err, ErrNotFound)
	}
	return &c, nil
}

func (r *categoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	if err := r.db.WithContext(ctx).Order("id").Find(&cats).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return cats, nil
}

func (r *categoryRepo) Update(ctx context.Context, c *models.Category) error {
	if !models.ValidCategoryName(c.Name) {
		return fmt.Errorf("%w: unknown category name %q", ErrInvalidInput, c.Name)
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(c).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: category with this slug already exists", ErrDuplicate)
		}
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

func (r *categoryRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c models.Category
		if err := tx.First(&c, id).Error; err != nil {
			return notFound(err, ErrNotFound)
		}

		var inUse int64
		if err := tx.Model(&models.Product{}).Where("category_id = ?", id).Count(&inUse).Error; err != nil {
			return fmt.Errorf("failed to count products: %w", err)
		}
		if inUse > 0 {
			return ErrCategoryInUse
		}

		if err := tx.Delete(&c).Error; err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}
		return nil
	})
}
