package services

import (
	"context"
	"testing"

	"foodcart/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type MatchingServiceTestSuite struct {
	suite.Suite
	availability *MockAvailabilityService
	service      MatchingService
	ctx          context.Context

	burger  uuid.UUID
	fries   uuid.UUID
	dessert uuid.UUID
	restX   uuid.UUID
	restY   uuid.UUID
}

func (suite *MatchingServiceTestSuite) SetupTest() {
	suite.availability = new(MockAvailabilityService)
	suite.service = NewMatchingService(suite.availability)
	suite.ctx = context.Background()

	suite.burger = uuid.New()
	suite.fries = uuid.New()
	suite.dessert = uuid.New()
	suite.restX = uuid.New()
	suite.restY = uuid.New()

	// Restaurant X offers {burger, fries}, restaurant Y offers {fries, dessert}.
	suite.availability.On("BuildIndex", suite.ctx).Return(models.AvailabilityIndex{
		suite.burger:  {suite.restX: {}},
		suite.fries:   {suite.restX: {}, suite.restY: {}},
		suite.dessert: {suite.restY: {}},
	}, nil).Maybe()
}

func TestMatchingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MatchingServiceTestSuite))
}

func (suite *MatchingServiceTestSuite) TestMatch_IntersectionAcrossProducts() {
	result, err := suite.service.MatchRestaurants(suite.ctx, []uuid.UUID{suite.burger, suite.fries})
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 1)
	assert.Contains(suite.T(), result, suite.restX)
}

func (suite *MatchingServiceTestSuite) TestMatch_SingleProductAllOfferers() {
	result, err := suite.service.MatchRestaurants(suite.ctx, []uuid.UUID{suite.fries})
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 2)
	assert.Contains(suite.T(), result, suite.restX)
	assert.Contains(suite.T(), result, suite.restY)
}

func (suite *MatchingServiceTestSuite) TestMatch_DisjointProductsUnfulfillable() {
	result, err := suite.service.MatchRestaurants(suite.ctx, []uuid.UUID{suite.burger, suite.dessert})
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), result)
}

func (suite *MatchingServiceTestSuite) TestMatch_DuplicateProductsCollapse() {
	result, err := suite.service.MatchRestaurants(suite.ctx, []uuid.UUID{suite.fries, suite.fries, suite.fries})
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 2)
}

func (suite *MatchingServiceTestSuite) TestMatch_UnknownProductUnfulfillable() {
	result, err := suite.service.MatchRestaurants(suite.ctx, []uuid.UUID{suite.burger, uuid.New()})
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), result)
}

func (suite *MatchingServiceTestSuite) TestMatch_NoProductsYieldsEmptySet() {
	// Empty orders never match "all restaurants"; the index is not even
	// consulted.
	result, err := suite.service.MatchRestaurants(suite.ctx, nil)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), result)
	assert.Empty(suite.T(), result)
	suite.availability.AssertNotCalled(suite.T(), "BuildIndex", suite.ctx)
}
