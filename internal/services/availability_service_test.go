package services

import (
	"context"
	"testing"

	"foodcart/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AvailabilityServiceTestSuite struct {
	suite.Suite
	menuItemRepo *MockMenuItemRepository
	productRepo  *MockProductRepository
	service      AvailabilityService
	ctx          context.Context
}

func (suite *AvailabilityServiceTestSuite) SetupTest() {
	suite.menuItemRepo = new(MockMenuItemRepository)
	suite.productRepo = new(MockProductRepository)
	suite.service = NewAvailabilityService(suite.menuItemRepo, suite.productRepo)
	suite.ctx = context.Background()
}

func TestAvailabilityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityServiceTestSuite))
}

func (suite *AvailabilityServiceTestSuite) TestBuildIndex_GroupsRestaurantsByProduct() {
	burger := uuid.New()
	fries := uuid.New()
	restaurantX := uuid.New()
	restaurantY := uuid.New()

	suite.productRepo.On("ListIDs", suite.ctx).Return([]uuid.UUID{burger, fries}, nil)
	suite.menuItemRepo.On("ListAvailable", suite.ctx).Return([]*models.MenuListing{
		{ProductID: burger, RestaurantID: restaurantX},
		{ProductID: burger, RestaurantID: restaurantY},
		{ProductID: fries, RestaurantID: restaurantX},
	}, nil)

	index, err := suite.service.BuildIndex(suite.ctx)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), index[burger], 2)
	assert.Len(suite.T(), index[fries], 1)
	assert.Contains(suite.T(), index[fries], restaurantX)
}

func (suite *AvailabilityServiceTestSuite) TestBuildIndex_UnofferedProductHasEmptySet() {
	burger := uuid.New()
	dessert := uuid.New()
	restaurantX := uuid.New()

	suite.productRepo.On("ListIDs", suite.ctx).Return([]uuid.UUID{burger, dessert}, nil)
	suite.menuItemRepo.On("ListAvailable", suite.ctx).Return([]*models.MenuListing{
		{ProductID: burger, RestaurantID: restaurantX},
	}, nil)

	index, err := suite.service.BuildIndex(suite.ctx)
	assert.NoError(suite.T(), err)

	// Present with an empty set, not absent.
	set, ok := index[dessert]
	assert.True(suite.T(), ok)
	assert.NotNil(suite.T(), set)
	assert.Empty(suite.T(), set)
}

func (suite *AvailabilityServiceTestSuite) TestBuildIndex_EmptyCatalog() {
	suite.productRepo.On("ListIDs", suite.ctx).Return([]uuid.UUID{}, nil)
	suite.menuItemRepo.On("ListAvailable", suite.ctx).Return([]*models.MenuListing{}, nil)

	index, err := suite.service.BuildIndex(suite.ctx)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), index)
}
