// internal/models/product.go
package models

type Product struct {
	BaseModel
	Name         string  `json:"name" gorm:"size:255;not null"`
	Description  string  `json:"description" gorm:"type:text;default:''"`
	SKU          string  `json:"sku" gorm:"uniqueIndex;size:50;not null"`
	Price        float64 `json:"price" gorm:"type:decimal(10,2);not null"`
	Category     string  `json:"category" gorm:"size:100;not null"`
	Quantity     int     `json:"quantity" gorm:"default:0"`
	ReorderLevel int     `json:"reorder_level" gorm:"default:10"`
	Supplier     string  `json:"supplier" gorm:"size:255;default:''"`
	IsActive     bool    `json:"is_active" gorm:"default:true"`
}
