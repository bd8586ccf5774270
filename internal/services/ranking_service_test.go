package services

import (
	"context"
	"testing"

	"foodcart/internal/geocoder"
	"foodcart/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RankingServiceTestSuite struct {
	suite.Suite
	restaurantRepo *MockRestaurantRepository
	geoRepo        *MockGeoPointRepository
	provider       *MockProvider
	service        RankingService
	ctx            context.Context
}

func (suite *RankingServiceTestSuite) SetupTest() {
	suite.restaurantRepo = new(MockRestaurantRepository)
	suite.geoRepo = new(MockGeoPointRepository)
	suite.provider = new(MockProvider)
	geoCache := NewGeoCacheService(suite.geoRepo, suite.provider, nil)
	suite.service = NewRankingService(suite.restaurantRepo, geoCache)
	suite.ctx = context.Background()
}

func TestRankingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RankingServiceTestSuite))
}

func (suite *RankingServiceTestSuite) cachePoint(address string, lon, lat float64) {
	suite.geoRepo.On("GetByAddress", suite.ctx, address).Return(&models.GeoPoint{
		Address: address, Lon: lon, Lat: lat,
	}, nil)
}

func (suite *RankingServiceTestSuite) TestRank_SortsAscendingByDistance() {
	restX := &models.Restaurant{ID: uuid.New(), Name: "X", Address: "addr-x"}
	restY := &models.Restaurant{ID: uuid.New(), Name: "Y", Address: "addr-y"}
	candidates := models.RestaurantSet{restX.ID: {}, restY.ID: {}}

	suite.cachePoint("order-addr", 37.61, 55.75)
	suite.cachePoint("addr-x", 37.62, 55.76)
	suite.cachePoint("addr-y", 37.70, 55.80)
	suite.restaurantRepo.On("GetByIDs", suite.ctx, mock.Anything).Return([]*models.Restaurant{restY, restX}, nil)

	ranked, err := suite.service.RankByDistance(suite.ctx, "order-addr", candidates)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), ranked, 2)
	assert.Equal(suite.T(), "X", ranked[0].Name)
	assert.Equal(suite.T(), "Y", ranked[1].Name)
	assert.Less(suite.T(), ranked[0].DistanceKM, ranked[1].DistanceKM)
	// X is roughly 1.3 km away, Y roughly 8 km.
	assert.InDelta(suite.T(), 1.3, ranked[0].DistanceKM, 0.3)
	assert.InDelta(suite.T(), 7.9, ranked[1].DistanceKM, 0.5)
}

func (suite *RankingServiceTestSuite) TestRank_TieBrokenByRestaurantID() {
	restA := &models.Restaurant{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Name: "A", Address: "same-addr"}
	restB := &models.Restaurant{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Name: "B", Address: "same-addr"}
	candidates := models.RestaurantSet{restA.ID: {}, restB.ID: {}}

	suite.cachePoint("order-addr", 37.61, 55.75)
	suite.cachePoint("same-addr", 37.62, 55.76)
	suite.restaurantRepo.On("GetByIDs", suite.ctx, mock.Anything).Return([]*models.Restaurant{restB, restA}, nil)

	ranked, err := suite.service.RankByDistance(suite.ctx, "order-addr", candidates)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), ranked, 2)
	assert.Equal(suite.T(), restA.ID, ranked[0].RestaurantID)
	assert.Equal(suite.T(), restB.ID, ranked[1].RestaurantID)
}

func (suite *RankingServiceTestSuite) TestRank_EmptyCandidatesReturnsEmptySlice() {
	ranked, err := suite.service.RankByDistance(suite.ctx, "order-addr", models.RestaurantSet{})
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), ranked)
	assert.Empty(suite.T(), ranked)
	suite.geoRepo.AssertNotCalled(suite.T(), "GetByAddress", mock.Anything, mock.Anything)
}

func (suite *RankingServiceTestSuite) TestRank_OrderAddressUnresolvableFailsWhole() {
	restX := &models.Restaurant{ID: uuid.New(), Name: "X", Address: "addr-x"}
	candidates := models.RestaurantSet{restX.ID: {}}

	suite.geoRepo.On("GetByAddress", suite.ctx, "nowhere").Return(nil, nil)
	suite.provider.On("Geocode", suite.ctx, "nowhere").Return(0.0, 0.0, geocoder.ErrNotFound)

	ranked, err := suite.service.RankByDistance(suite.ctx, "nowhere", candidates)
	var geocodeErr *GeocodeError
	assert.ErrorAs(suite.T(), err, &geocodeErr)
	assert.Nil(suite.T(), ranked)
}

func (suite *RankingServiceTestSuite) TestRank_RestaurantAddressUnresolvableFailsWhole() {
	restX := &models.Restaurant{ID: uuid.New(), Name: "X", Address: "bad-addr"}
	candidates := models.RestaurantSet{restX.ID: {}}

	suite.cachePoint("order-addr", 37.61, 55.75)
	suite.geoRepo.On("GetByAddress", suite.ctx, "bad-addr").Return(nil, nil)
	suite.provider.On("Geocode", suite.ctx, "bad-addr").Return(0.0, 0.0, geocoder.ErrNotFound)
	suite.restaurantRepo.On("GetByIDs", suite.ctx, mock.Anything).Return([]*models.Restaurant{restX}, nil)

	// No partial ranking with the resolvable subset.
	ranked, err := suite.service.RankByDistance(suite.ctx, "order-addr", candidates)
	var geocodeErr *GeocodeError
	assert.ErrorAs(suite.T(), err, &geocodeErr)
	assert.Nil(suite.T(), ranked)
}

func TestHaversineKM(t *testing.T) {
	// Moscow to Saint Petersburg is about 635 km.
	d := haversineKM(55.7558, 37.6173, 59.9343, 30.3351)
	assert.InDelta(t, 635, d, 10)

	assert.Zero(t, haversineKM(55.75, 37.61, 55.75, 37.61))
}
