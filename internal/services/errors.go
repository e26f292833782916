// internal/services/errors.go
package services

import "errors"

// Sentinel errors the handlers map onto HTTP statuses. Messages double as the
// wire-format error strings.
var (
	ErrEmailExists         = errors.New("User already exists")
	ErrInvalidCredentials  = errors.New("Invalid credentials")
	ErrAccountInactive     = errors.New("User account is inactive")
	ErrUserNotFound        = errors.New("User not found")
	ErrUserEmailExists     = errors.New("Email already exists")
	ErrProductNotFound     = errors.New("Product not found")
	ErrSKUExists           = errors.New("Product with this SKU already exists")
	ErrCustomerNotFound    = errors.New("Customer not found")
	ErrCustomerEmailExists = errors.New("Customer with this email already exists")
	ErrOrderNotFound       = errors.New("Order not found")
	ErrOrderNumberExists   = errors.New("Order number already exists")
	ErrInvalidOrderStatus  = errors.New("Invalid status")
	ErrInventoryNotFound   = errors.New("Inventory item not found")
	ErrInventoryExists     = errors.New("Inventory record already exists for this product")
)
