// internal/models/inventory.go
package models

import (
	"time"
)

type Inventory struct {
	BaseModel
	ProductID         uint      `json:"product_id" gorm:"uniqueIndex;not null"`
	QuantityOnHand    int       `json:"quantity_on_hand" gorm:"default:0"`
	QuantityReserved  int       `json:"quantity_reserved" gorm:"default:0"`
	QuantityAvailable int       `json:"quantity_available" gorm:"default:0"`
	ReorderPoint      int       `json:"reorder_point" gorm:"default:10"`
	ReorderQuantity   int       `json:"reorder_quantity" gorm:"default:50"`
	LastCounted       time.Time `json:"last_counted" gorm:"autoCreateTime"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (Inventory) TableName() string {
	return "inventory"
}

// Recalculate derives the available quantity. It can go negative; no floor is
// enforced.
func (i *Inventory) Recalculate() {
	i.QuantityAvailable = i.QuantityOnHand - i.QuantityReserved
}
