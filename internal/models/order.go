// internal/models/order.go
package models

import (
	"time"
)

type Order struct {
	BaseModel
	OrderNumber  string      `json:"order_number" gorm:"uniqueIndex;size:50;not null"`
	CustomerID   uint        `json:"customer_id" gorm:"not null;index"`
	TotalAmount  float64     `json:"total_amount" gorm:"type:decimal(12,2);not null"`
	Status       OrderStatus `json:"status" gorm:"type:varchar(20);default:'pending';not null"`
	OrderDate    time.Time   `json:"order_date" gorm:"autoCreateTime"`
	DeliveryDate *time.Time  `json:"delivery_date"`
	Notes        string      `json:"notes" gorm:"type:text;default:''"`

	// Items are exclusively owned by the order; they are created with it and
	// deleted through OrderService.DeleteOrder, never on their own.
	Items    []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	Customer *Customer   `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}

type OrderItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"-" gorm:"not null;index"`
	ProductID uint    `json:"product_id" gorm:"not null;index"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	UnitPrice float64 `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	Total     float64 `json:"total" gorm:"type:decimal(12,2);not null"`
}
