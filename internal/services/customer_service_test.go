// internal/services/customer_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type CustomerServiceTestSuite struct {
	suite.Suite
	db  *gorm.DB
	svc *CustomerService
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.svc = NewCustomerService(suite.db)
}

func (suite *CustomerServiceTestSuite) TestCreateDuplicateEmail() {
	_, err := suite.svc.CreateCustomer(&CreateCustomerRequest{
		Name:  "ACME Corp",
		Email: "orders@acme.test",
	})
	suite.Require().NoError(err)

	_, err = suite.svc.CreateCustomer(&CreateCustomerRequest{
		Name:  "ACME Clone",
		Email: "orders@acme.test",
	})
	suite.ErrorIs(err, ErrCustomerEmailExists)
}

func (suite *CustomerServiceTestSuite) TestPartialUpdate() {
	customer, err := suite.svc.CreateCustomer(&CreateCustomerRequest{
		Name:    "ACME Corp",
		Email:   "orders@acme.test",
		City:    "Springfield",
		Country: "US",
	})
	suite.Require().NoError(err)

	city := "Shelbyville"
	updated, err := suite.svc.UpdateCustomer(customer.ID, &UpdateCustomerRequest{City: &city})
	suite.Require().NoError(err)
	suite.Equal("Shelbyville", updated.City)
	suite.Equal("ACME Corp", updated.Name)
	suite.Equal("US", updated.Country)
}

func (suite *CustomerServiceTestSuite) TestSoftDelete() {
	customer, err := suite.svc.CreateCustomer(&CreateCustomerRequest{
		Name:  "ACME Corp",
		Email: "orders@acme.test",
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.svc.DeleteCustomer(customer.ID))

	// Excluded from the active list
	customers, err := suite.svc.ListCustomers()
	suite.Require().NoError(err)
	suite.Empty(customers)

	// Still reachable by id, flagged inactive
	got, err := suite.svc.GetCustomer(customer.ID)
	suite.Require().NoError(err)
	suite.False(got.IsActive)
}

func (suite *CustomerServiceTestSuite) TestDeleteMissingCustomer() {
	suite.ErrorIs(suite.svc.DeleteCustomer(999), ErrCustomerNotFound)
}

func TestCustomerServiceSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
