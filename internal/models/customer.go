// internal/models/customer.go
package models

type Customer struct {
	BaseModel
	Name       string `json:"name" gorm:"size:255;not null"`
	Email      string `json:"email" gorm:"uniqueIndex;size:120;not null"`
	Phone      string `json:"phone" gorm:"size:20;default:''"`
	Address    string `json:"address" gorm:"type:text;default:''"`
	City       string `json:"city" gorm:"size:100;default:''"`
	State      string `json:"state" gorm:"size:100;default:''"`
	PostalCode string `json:"postal_code" gorm:"size:20;default:''"`
	Country    string `json:"country" gorm:"size:100;default:''"`
	IsActive   bool   `json:"is_active" gorm:"default:true"`
}
