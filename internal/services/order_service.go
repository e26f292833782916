// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/orbitto/orbitto-backend/internal/database"
	"github.com/orbitto/orbitto-backend/internal/models"
)

type OrderService struct {
	db *gorm.DB
}

type OrderItemRequest struct {
	ProductID uint     `json:"product_id" validate:"required"`
	Quantity  int      `json:"quantity" validate:"required,gt=0"`
	UnitPrice *float64 `json:"unit_price" validate:"omitempty,gt=0"`
}

type CreateOrderRequest struct {
	OrderNumber string             `json:"order_number" validate:"required"`
	CustomerID  uint               `json:"customer_id" validate:"required"`
	Items       []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Status      string             `json:"status"`
	Notes       string             `json:"notes"`
}

type UpdateOrderRequest struct {
	Status       *string    `json:"status"`
	DeliveryDate *time.Time `json:"delivery_date"`
	Notes        *string    `json:"notes"`
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

func (s *OrderService) ListOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("Items").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}

// CreateOrder resolves every line against its product, prices the lines, and
// persists the header together with its items in one transaction. Nothing is
// written before all lines resolve.
func (s *OrderService) CreateOrder(req *CreateOrderRequest) (*models.Order, error) {
	var count int64
	if err := s.db.Model(&models.Order{}).Where("order_number = ?", req.OrderNumber).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if count > 0 {
		return nil, ErrOrderNumberExists
	}

	status := models.OrderStatusPending
	if req.Status != "" {
		status = models.OrderStatus(req.Status)
		if !status.IsValid() {
			return nil, ErrInvalidOrderStatus
		}
	}

	var totalAmount float64
	items := make([]models.OrderItem, 0, len(req.Items))

	for _, line := range req.Items {
		product, err := s.lookupProduct(line.ProductID)
		if err != nil {
			return nil, err
		}

		// Unit price defaults to the product's current price
		unitPrice := product.Price
		if line.UnitPrice != nil {
			unitPrice = *line.UnitPrice
		}
		total := unitPrice * float64(line.Quantity)
		totalAmount += total

		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: unitPrice,
			Total:     total,
		})
	}

	order := &models.Order{
		OrderNumber: req.OrderNumber,
		CustomerID:  req.CustomerID,
		TotalAmount: totalAmount,
		Status:      status,
		OrderDate:   time.Now().UTC(),
		Notes:       req.Notes,
		Items:       items,
	}

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}

func (s *OrderService) UpdateOrder(id uint, req *UpdateOrderRequest) (*models.Order, error) {
	order, err := s.GetOrder(id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		status := models.OrderStatus(*req.Status)
		// Membership only; any valid status may follow any other.
		if !status.IsValid() {
			return nil, ErrInvalidOrderStatus
		}
		order.Status = status
	}
	if req.DeliveryDate != nil {
		order.DeliveryDate = req.DeliveryDate
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}

	if err := s.db.Save(order).Error; err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return order, nil
}

// DeleteOrder removes the order and its items in one transaction. Items are
// owned by their order and never outlive it. The API exposes no delete route
// for orders; this exists so the cascade is explicit and testable.
func (s *OrderService) DeleteOrder(id uint) error {
	order, err := s.GetOrder(id)
	if err != nil {
		return err
	}

	return database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete order items: %w", err)
		}
		if err := tx.Delete(&models.Order{}, order.ID).Error; err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}
		return nil
	})
}

func (s *OrderService) lookupProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("Product %d: %w", id, ErrProductNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}
