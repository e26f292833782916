// internal/models/user.go
package models

import (
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Email        string   `json:"email" gorm:"uniqueIndex;size:120;not null"`
	PasswordHash string   `json:"-" gorm:"size:255;not null"`
	FirstName    string   `json:"first_name" gorm:"size:100;not null"`
	LastName     string   `json:"last_name" gorm:"size:100;not null"`
	Role         UserRole `json:"role" gorm:"type:varchar(20);default:'user'"`
	IsActive     bool     `json:"is_active" gorm:"default:true"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
