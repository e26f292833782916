// internal/services/user_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/orbitto/orbitto-backend/internal/models"
)

type UserServiceTestSuite struct {
	suite.Suite
	db   *gorm.DB
	svc  *UserService
	user *models.User
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.svc = NewUserService(suite.db)

	suite.user = &models.User{
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      models.UserRoleUser,
		IsActive:  true,
	}
	suite.Require().NoError(suite.user.SetPassword("secret123"))
	suite.Require().NoError(suite.db.Create(suite.user).Error)
}

func (suite *UserServiceTestSuite) TestUpdateNames() {
	first := "Janet"
	updated, err := suite.svc.UpdateUser(suite.user.ID, &UpdateUserRequest{FirstName: &first})
	suite.Require().NoError(err)
	suite.Equal("Janet", updated.FirstName)
	suite.Equal("Doe", updated.LastName)
}

func (suite *UserServiceTestSuite) TestUpdateEmailConflict() {
	other := &models.User{Email: "john@example.com", FirstName: "John", LastName: "Doe", IsActive: true}
	suite.Require().NoError(other.SetPassword("secret123"))
	suite.Require().NoError(suite.db.Create(other).Error)

	email := "john@example.com"
	_, err := suite.svc.UpdateUser(suite.user.ID, &UpdateUserRequest{Email: &email})
	suite.ErrorIs(err, ErrUserEmailExists)
}

func (suite *UserServiceTestSuite) TestSoftDelete() {
	suite.Require().NoError(suite.svc.DeleteUser(suite.user.ID))

	users, err := suite.svc.ListUsers()
	suite.Require().NoError(err)
	suite.Empty(users)

	got, err := suite.svc.GetUser(suite.user.ID)
	suite.Require().NoError(err)
	suite.False(got.IsActive)
}

func (suite *UserServiceTestSuite) TestGetMissingUser() {
	_, err := suite.svc.GetUser(999)
	suite.ErrorIs(err, ErrUserNotFound)
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
