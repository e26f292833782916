// internal/services/customer_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orbitto/orbitto-backend/internal/models"
)

type CustomerService struct {
	db *gorm.DB
}

type CreateCustomerRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type UpdateCustomerRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postal_code"`
	Country    *string `json:"country"`
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

func (s *CustomerService) ListCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.Where("is_active = ?", true).Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (s *CustomerService) GetCustomer(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &customer, nil
}

func (s *CustomerService) CreateCustomer(req *CreateCustomerRequest) (*models.Customer, error) {
	var count int64
	if err := s.db.Model(&models.Customer{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if count > 0 {
		return nil, ErrCustomerEmailExists
	}

	customer := &models.Customer{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		IsActive:   true,
	}

	if err := s.db.Create(customer).Error; err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

func (s *CustomerService) UpdateCustomer(id uint, req *UpdateCustomerRequest) (*models.Customer, error) {
	customer, err := s.GetCustomer(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.City != nil {
		customer.City = *req.City
	}
	if req.State != nil {
		customer.State = *req.State
	}
	if req.PostalCode != nil {
		customer.PostalCode = *req.PostalCode
	}
	if req.Country != nil {
		customer.Country = *req.Country
	}

	if err := s.db.Save(customer).Error; err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return customer, nil
}

// DeleteCustomer deactivates the customer; existing orders keep their
// reference and get-by-id still resolves.
func (s *CustomerService) DeleteCustomer(id uint) error {
	customer, err := s.GetCustomer(id)
	if err != nil {
		return err
	}

	customer.IsActive = false
	if err := s.db.Save(customer).Error; err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}
