package queries_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderStatsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderStatsQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderStatsQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewGetOrderStatsQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderStatsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetOrderStatsQuery()

	stats, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(stats)
	suite.Empty(stats)
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_MixedStatuses_CountsPerStatus() {
	suite.seedOrders(
		order.StatusCreated,
		order.StatusCreated,
		order.StatusCreated,
		order.StatusPaid,
		order.StatusCancelled,
		order.StatusCancelled,
	)

	query := queries.NewGetOrderStatsQuery()

	stats, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	// Statuses with no orders are absent; rows come back in status
	// declaration order.
	suite.Require().Len(stats, 3)
	suite.Equal(queries.GetOrderStatsQueryResponse{Status: "created", Count: 3}, stats[0])
	suite.Equal(queries.GetOrderStatsQueryResponse{Status: "paid", Count: 1}, stats[1])
	suite.Equal(queries.GetOrderStatsQueryResponse{Status: "cancelled", Count: 2}, stats[2])
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderStatsQuery{}

	stats, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Nil(stats)
	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderStatsQuery constructor")
}

func (suite *GetOrderStatsQueryHandlerTestSuite) seedOrders(statuses ...order.Status) {
	for _, status := range statuses {
		item, err := order.NewItem(kernel.NewUUID(), order.Cheese, order.Small, 1)
		suite.Require().NoError(err)

		restored, err := order.RestoreOrder(
			kernel.NewUUID(),
			time.Now().UTC(),
			status,
			[]*order.Item{item},
		)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.orderRepo.Add(context.Background(), restored))
	}
}

func TestGetOrderStatsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderStatsQueryHandlerTestSuite))
}
