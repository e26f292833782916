// internal/services/order_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/orbitto/orbitto-backend/internal/models"
)

type OrderServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	svc      *OrderService
	customer *models.Customer
	product  *models.Product
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.svc = NewOrderService(suite.db)

	suite.customer = &models.Customer{Name: "ACME Corp", Email: "orders@acme.test", IsActive: true}
	suite.Require().NoError(suite.db.Create(suite.customer).Error)

	suite.product = &models.Product{Name: "Widget", SKU: "W-1", Price: 10.0, Category: "widgets", IsActive: true}
	suite.Require().NoError(suite.db.Create(suite.product).Error)
}

func (suite *OrderServiceTestSuite) TestCreateOrderDefaultsUnitPrice() {
	order, err := suite.svc.CreateOrder(&CreateOrderRequest{
		OrderNumber: "ORD-001",
		CustomerID:  suite.customer.ID,
		Items: []OrderItemRequest{
			{ProductID: suite.product.ID, Quantity: 3},
		},
	})
	suite.Require().NoError(err)

	suite.Equal(30.0, order.TotalAmount)
	suite.Equal(models.OrderStatusPending, order.Status)
	suite.Require().Len(order.Items, 1)
	suite.Equal(10.0, order.Items[0].UnitPrice)
	suite.Equal(30.0, order.Items[0].Total)
	suite.Equal(order.ID, order.Items[0].OrderID)
}

func (suite *OrderServiceTestSuite) TestCreateOrderWithPriceOverride() {
	override := 8.0
	order, err := suite.svc.CreateOrder(&CreateOrderRequest{
		OrderNumber: "ORD-002",
		CustomerID:  suite.customer.ID,
		Items: []OrderItemRequest{
			{ProductID: suite.product.ID, Quantity: 2, UnitPrice: &override},
			{ProductID: suite.product.ID, Quantity: 1},
		},
	})
	suite.Require().NoError(err)
	suite.Equal(26.0, order.TotalAmount)
}

func (suite *OrderServiceTestSuite) TestCreateOrderDuplicateNumber() {
	_, err := suite.svc.CreateOrder(&CreateOrderRequest{
		OrderNumber: "ORD-003",
		CustomerID:  suite.customer.ID,
		Items:       []OrderItemRequest{{ProductID: suite.product.ID, Quantity: 1}},
	})
	suite.Require().NoError(err)

	_, err = suite.svc.CreateOrder(&CreateOrderRequest{
		OrderNumber: "ORD-003",
		CustomerID:  suite.customer.ID,
		Items:       []OrderItemRequest{{ProductID: suite.product.ID, Quantity: 1}},
	})
	suite.ErrorIs(err, ErrOrderNumberExists)
}

func (suite *OrderServiceTestSuite) TestCreateOrderMissingProductWritesNothing() {
	_, err := suite.svc.CreateOrder(&CreateOrderRequest{
		OrderNumber: "ORD-004",
		CustomerID:  suite.customer.ID,
		Items: []OrderItemRequest{
			{ProductID: suite.product.ID, Quantity: 1},
			{ProductID: 424242, Quantity: 1},
		},
	})
	suite.ErrorIs(err, ErrProductNotFound)
	suite.Contains(err.Error(), "424242")

	var orderCount, itemCount int64
	suite.db.Model(&models.Order{}).Count(&orderCount)
	suite.db.Model(&models.OrderItem{}).Count(&itemCount)
	suite.Equal(int64(0), orderCount)
	suite.Equal(int64(0), itemCount)
}

func (suite *OrderServiceTestSuite) TestUpdateOrderStatus() {
	order, err := suite.svc.CreateOrder(&CreateOrderRequest{
		OrderNumber: "ORD-005",
		CustomerID:  suite.customer.ID,
		Items:       []OrderItemRequest{{ProductID: suite.product.ID, Quantity: 1}},
	})
	suite.Require().NoError(err)

	delivered := "delivered"
	when := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	notes := "left at the dock"
	updated, err := suite.svc.UpdateOrder(order.ID, &UpdateOrderRequest{
		Status:       &delivered,
		DeliveryDate: &when,
		Notes:        &notes,
	})
	suite.Require().NoError(err)
	suite.Equal(models.OrderStatusDelivered, updated.Status)
	suite.Equal(when, updated.DeliveryDate.UTC())
	suite.Equal("left at the dock", updated.Notes)

	// No transition graph: delivered may go straight back to pending
	pending := "pending"
	updated, err = suite.svc.UpdateOrder(order.ID, &UpdateOrderRequest{Status: &pending})
	suite.Require().NoError(err)
	suite.Equal(models.OrderStatusPending, updated.Status)

	bogus := "misplaced"
	_, err = suite.svc.UpdateOrder(order.ID, &UpdateOrderRequest{Status: &bogus})
	suite.ErrorIs(err, ErrInvalidOrderStatus)
}

func (suite *OrderServiceTestSuite) TestDeleteOrderCascadesItems() {
	order, err := suite.svc.CreateOrder(&CreateOrderRequest{
		OrderNumber: "ORD-006",
		CustomerID:  suite.customer.ID,
		Items: []OrderItemRequest{
			{ProductID: suite.product.ID, Quantity: 2},
			{ProductID: suite.product.ID, Quantity: 5},
		},
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.svc.DeleteOrder(order.ID))

	_, err = suite.svc.GetOrder(order.ID)
	suite.ErrorIs(err, ErrOrderNotFound)

	var itemCount int64
	suite.db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount)
	suite.Equal(int64(0), itemCount)
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
