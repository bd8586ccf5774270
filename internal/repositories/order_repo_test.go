package repositories

import (
	"context"
	"errors"
	"testing"

	"foodcart/internal/models"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type OrderRepoTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	repo OrderRepository
	ctx  context.Context
}

func (suite *OrderRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock
	suite.repo = NewOrderRepo(mock)
	suite.ctx = context.Background()
}

func (suite *OrderRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestOrderRepoTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepoTestSuite))
}

func testOrder() *models.Order {
	orderID := uuid.New()
	return &models.Order{
		ID:            orderID,
		FirstName:     "Ivan",
		LastName:      "Petrov",
		PhoneNumber:   "+79151234567",
		Address:       "Moscow, Tverskaya 1",
		Status:        models.OrderStatusNew,
		PaymentMethod: models.PaymentCashOnDelivery,
		Lines: []*models.OrderLine{
			{ID: uuid.New(), OrderID: orderID, ProductID: uuid.New(), Quantity: 2, Price: 250},
			{ID: uuid.New(), OrderID: orderID, ProductID: uuid.New(), Quantity: 1, Price: 120},
		},
	}
}

func (suite *OrderRepoTestSuite) TestCreateWithLines_CommitsAllRows() {
	order := testOrder()

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`INSERT INTO orders`).
		WithArgs(order.ID, order.FirstName, order.LastName, order.PhoneNumber, order.Address,
			order.Status, order.PaymentMethod, order.Comment, order.RestaurantID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	for _, line := range order.Lines {
		suite.mock.ExpectExec(`INSERT INTO order_lines`).
			WithArgs(line.ID, line.OrderID, line.ProductID, line.Quantity, line.Price).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	suite.mock.ExpectCommit()

	err := suite.repo.CreateWithLines(suite.ctx, order)
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *OrderRepoTestSuite) TestCreateWithLines_LineFailureRollsBack() {
	order := testOrder()

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`INSERT INTO orders`).
		WithArgs(order.ID, order.FirstName, order.LastName, order.PhoneNumber, order.Address,
			order.Status, order.PaymentMethod, order.Comment, order.RestaurantID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	suite.mock.ExpectExec(`INSERT INTO order_lines`).
		WithArgs(order.Lines[0].ID, order.Lines[0].OrderID, order.Lines[0].ProductID,
			order.Lines[0].Quantity, order.Lines[0].Price).
		WillReturnError(errors.New("constraint violation"))
	suite.mock.ExpectRollback()

	err := suite.repo.CreateWithLines(suite.ctx, order)
	assert.Error(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *OrderRepoTestSuite) TestMarkCalled_SetOnce() {
	id := uuid.New()
	suite.mock.ExpectExec(`UPDATE orders SET called_at = NOW\(\) WHERE id = \$1 AND called_at IS NULL`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.MarkCalled(suite.ctx, id)
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *OrderRepoTestSuite) TestUpdateStatus() {
	id := uuid.New()
	suite.mock.ExpectExec(`UPDATE orders SET status = \$1 WHERE id = \$2`).
		WithArgs(models.OrderStatusDone, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.UpdateStatus(suite.ctx, id, models.OrderStatusDone)
	assert.NoError(suite.T(), err)
}
