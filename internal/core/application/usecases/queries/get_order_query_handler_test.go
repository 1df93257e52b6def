package queries_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ExistingOrder_ReturnsOrderWithItems() {
	ctx := context.Background()

	id := kernel.NewUUID()
	items := []*order.Item{
		suite.createItem(order.Deluxe, order.Xlarge, 3),
		suite.createItem(order.Coke, order.Small, 1),
	}
	seededOrder, err := order.NewOrder(id, items)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, seededOrder))

	query, err := queries.NewGetOrderQuery(id)
	suite.Require().NoError(err)

	retrieved, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(id, retrieved.ID())
	suite.Equal(order.StatusCreated, retrieved.Status())
	suite.WithinDuration(seededOrder.Created(), retrieved.Created(), time.Second)

	suite.Require().Len(retrieved.Items(), len(items))
	for i, expected := range items {
		suite.Equal(expected.ID(), retrieved.Items()[i].ID())
		suite.Equal(expected.Product(), retrieved.Items()[i].Product())
		suite.Equal(expected.Size(), retrieved.Items()[i].Size())
		suite.Equal(expected.Quantity(), retrieved.Items()[i].Quantity())
	}
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ReturnsCurrentStatus() {
	ctx := context.Background()

	id := kernel.NewUUID()
	seededOrder, err := order.NewOrder(id, []*order.Item{suite.createItem(order.Cheese, order.Small, 1)})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, seededOrder))

	seededOrder.Pay()
	suite.Require().NoError(suite.orderRepo.Update(ctx, seededOrder))

	query, err := queries.NewGetOrderQuery(id)
	suite.Require().NoError(err)

	retrieved, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(order.StatusPaid, retrieved.Status())
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_NonExistentOrder_ReturnsNotFoundError() {
	nonExistentID := kernel.NewUUID()

	query, err := queries.NewGetOrderQuery(nonExistentID)
	suite.Require().NoError(err)

	retrieved, err := suite.handler.Handle(context.Background(), query)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.Contains(err.Error(), nonExistentID.String())
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderQuery{}

	retrieved, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Nil(retrieved)
	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderQuery constructor")
}

func (suite *GetOrderQueryHandlerTestSuite) createItem(
	product order.Product, size order.Size, quantity int,
) *order.Item {
	item, err := order.NewItem(kernel.NewUUID(), product, size, quantity)
	suite.Require().NoError(err)
	return item
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
