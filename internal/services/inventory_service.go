// internal/services/inventory_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/orbitto/orbitto-backend/internal/models"
)

type InventoryService struct {
	db *gorm.DB
}

type CreateInventoryRequest struct {
	ProductID        uint `json:"product_id" validate:"required"`
	QuantityOnHand   int  `json:"quantity_on_hand"`
	QuantityReserved int  `json:"quantity_reserved"`
	ReorderPoint     *int `json:"reorder_point"`
	ReorderQuantity  *int `json:"reorder_quantity"`
}

type UpdateInventoryRequest struct {
	QuantityOnHand   *int `json:"quantity_on_hand"`
	QuantityReserved *int `json:"quantity_reserved"`
	ReorderPoint     *int `json:"reorder_point"`
	ReorderQuantity  *int `json:"reorder_quantity"`
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

func (s *InventoryService) ListInventory() ([]models.Inventory, error) {
	var items []models.Inventory
	if err := s.db.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return items, nil
}

func (s *InventoryService) GetInventory(id uint) (*models.Inventory, error) {
	var item models.Inventory
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInventoryNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &item, nil
}

// CreateInventory backs seeding and tests; there is no HTTP create route for
// inventory records.
func (s *InventoryService) CreateInventory(req *CreateInventoryRequest) (*models.Inventory, error) {
	if _, err := s.lookupProduct(req.ProductID); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Inventory{}).Where("product_id = ?", req.ProductID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if count > 0 {
		return nil, ErrInventoryExists
	}

	item := &models.Inventory{
		ProductID:        req.ProductID,
		QuantityOnHand:   req.QuantityOnHand,
		QuantityReserved: req.QuantityReserved,
		ReorderPoint:     10,
		ReorderQuantity:  50,
		LastCounted:      time.Now().UTC(),
	}
	if req.ReorderPoint != nil {
		item.ReorderPoint = *req.ReorderPoint
	}
	if req.ReorderQuantity != nil {
		item.ReorderQuantity = *req.ReorderQuantity
	}
	item.Recalculate()

	if err := s.db.Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to create inventory: %w", err)
	}
	return item, nil
}

// UpdateInventory applies the supplied fields and recomputes the available
// quantity as on-hand minus reserved, which may go negative.
func (s *InventoryService) UpdateInventory(id uint, req *UpdateInventoryRequest) (*models.Inventory, error) {
	item, err := s.GetInventory(id)
	if err != nil {
		return nil, err
	}

	counted := false
	if req.QuantityOnHand != nil {
		item.QuantityOnHand = *req.QuantityOnHand
		counted = true
	}
	if req.QuantityReserved != nil {
		item.QuantityReserved = *req.QuantityReserved
		counted = true
	}
	if req.ReorderPoint != nil {
		item.ReorderPoint = *req.ReorderPoint
	}
	if req.ReorderQuantity != nil {
		item.ReorderQuantity = *req.ReorderQuantity
	}

	item.Recalculate()
	if counted {
		item.LastCounted = time.Now().UTC()
	}

	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("failed to update inventory: %w", err)
	}
	return item, nil
}

// ListLowStock returns rows at or below their reorder point.
func (s *InventoryService) ListLowStock() ([]models.Inventory, error) {
	var items []models.Inventory
	if err := s.db.Where("quantity_on_hand <= reorder_point").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list low stock: %w", err)
	}
	return items, nil
}

func (s *InventoryService) lookupProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("Product %d: %w", id, ErrProductNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}
