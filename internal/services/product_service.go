// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/orbitto/orbitto-backend/internal/models"
)

type ProductService struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description"`
	SKU          string  `json:"sku" validate:"required"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Category     string  `json:"category" validate:"required"`
	Quantity     *int    `json:"quantity"`
	ReorderLevel *int    `json:"reorder_level"`
	Supplier     string  `json:"supplier"`
}

type UpdateProductRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price" validate:"omitempty,gt=0"`
	Category     *string  `json:"category"`
	Quantity     *int     `json:"quantity"`
	ReorderLevel *int     `json:"reorder_level"`
	Supplier     *string  `json:"supplier"`
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Where("is_active = ?", true).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *ProductService) GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	// SKUs are case-normalized at creation time
	sku := strings.ToUpper(req.SKU)

	var count int64
	if err := s.db.Model(&models.Product{}).Where("sku = ?", sku).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if count > 0 {
		return nil, ErrSKUExists
	}

	product := &models.Product{
		Name:         req.Name,
		Description:  req.Description,
		SKU:          sku,
		Price:        req.Price,
		Category:     req.Category,
		Quantity:     0,
		ReorderLevel: 10,
		Supplier:     req.Supplier,
		IsActive:     true,
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	if req.ReorderLevel != nil {
		product.ReorderLevel = *req.ReorderLevel
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(id uint, req *UpdateProductRequest) (*models.Product, error) {
	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	if req.ReorderLevel != nil {
		product.ReorderLevel = *req.ReorderLevel
	}
	if req.Supplier != nil {
		product.Supplier = *req.Supplier
	}

	if err := s.db.Save(product).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

// DeleteProduct deactivates the product; order items keep referencing it.
func (s *ProductService) DeleteProduct(id uint) error {
	product, err := s.GetProduct(id)
	if err != nil {
		return err
	}

	product.IsActive = false
	if err := s.db.Save(product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
