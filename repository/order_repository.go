package repository

import (
	"context"
	"fmt"

	"github.com/mayra-Sanchez/wm-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func orderLinesByID(db *gorm.DB) *gorm.DB {
	return db.Order("order_lines.id")
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepo{db: db}
}

// Create writes the order shell, then every line, then the computed total,
// all inside one transaction. Lines without a snapshot name or price take
// them from the product as it is right now.
func (r *orderRepo) Create(ctx context.Context, order *models.Order) error {
	if order == nil {
		return fmt.Errorf("%w: order cannot be nil", ErrInvalidInput)
	}
	if len(order.Lines) == 0 {
		return fmt.Errorf("%w: order must have at least one line", ErrInvalidInput)
	}
	for _, line := range order.Lines {
		if line.Quantity < 1 {
			return fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
		}
		if line.ProductID == 0 {
			return fmt.Errorf("%w: product is required", ErrInvalidInput)
		}
		if err := models.CheckPrice(line.Price); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	lines := order.Lines
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		shell := models.Order{CustomerID: order.CustomerID}
		if err := tx.Omit(clause.Associations).Create(&shell).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		created := make([]models.OrderLine, 0, len(lines))
		for _, line := range lines {
			var product models.Product
			if err := tx.First(&product, line.ProductID).Error; err != nil {
				return notFound(err, ErrProductNotFound)
			}
			if line.Name == "" {
				line.Name = product.Name
			}
			if line.Price.IsZero() {
				line.Price = product.Price
			}

			line.ID = 0
			line.OrderID = shell.ID
			if err := tx.Create(&line).Error; err != nil {
				return fmt.Errorf("failed to create order line: %w", err)
			}
			created = append(created, line)
		}

		shell.Total = models.ComputeTotal(created)
		if err := tx.Model(&shell).Update("total", shell.Total).Error; err != nil {
			return fmt.Errorf("failed to update order total: %w", err)
		}

		shell.Lines = created
		*order = shell
		return nil
	})
}

func (r *orderRepo) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).Preload("Lines", orderLinesByID).First(&order, id).Error; err != nil {
		return nil, notFound(err, ErrNotFound)
	}
	return &order, nil
}

func (r *orderRepo) GetByCustomer(ctx context.Context, customerID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Lines", orderLinesByID).
		Where("customer_id = ?", customerID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepo) GetAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Lines", orderLinesByID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}
