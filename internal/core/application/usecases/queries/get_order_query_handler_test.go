package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

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
	repo      *orderrepo.GormOrderRepository
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderQueryHandler(db)
	suite.repo = orderrepo.NewGormOrderRepository(db)
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
	err = suite.db.Exec("TRUNCATE TABLE order_items").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderQueryHandlerTestSuite) addOrder() *order.Order {
	item, err := order.NewItem(
		kernel.NewUUID(), kernel.NewUUID(), "Widget", "W-1",
		2, kernel.MustMoneyFromString("100.00"), kernel.MustMoneyFromString("10.00"), "engraved",
	)
	suite.Require().NoError(err)

	customer, err := order.NewCustomerSnapshot(
		"Jane Roe", "+15550001", "jane@example.com", "1 Main St",
	)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), order.GenerateNumber(time.Now()), nil, nil,
		customer, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		[]*order.Item{item},
		kernel.MustMoneyFromString("20.00"), kernel.MustMoneyFromString("5.00"),
		"cash", "pickup", "",
	)
	suite.Require().NoError(err)

	err = suite.repo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ReturnsFullReadModel() {
	aggregate := suite.addOrder()

	query, err := queries.NewGetOrderQuery(aggregate.ID(), false)
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.True(resp.ID.IsEqual(aggregate.ID()))
	suite.Equal(aggregate.Number().String(), resp.OrderNumber)
	suite.Equal("Jane Roe", resp.CustomerName)
	suite.Equal("pending", resp.Status)
	suite.Equal("unpaid", resp.PaymentStatus)
	suite.True(resp.Total.IsEqual(kernel.MustMoneyFromString("190.00")))
	suite.True(resp.GrandTotal.IsEqual(kernel.MustMoneyFromString("175.00")))
	suite.Require().Len(resp.Items, 1)
	suite.Equal("Widget", resp.Items[0].ProductName)
	suite.Equal(2, resp.Items[0].Quantity)
	suite.Equal("engraved", resp.Items[0].Notes)
	suite.Nil(resp.DeletedAt)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_MissingOrderIsNotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID(), false)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_SoftDeletedHiddenByDefault() {
	ctx := context.Background()
	aggregate := suite.addOrder()
	err := suite.repo.SoftDelete(ctx, aggregate.ID())
	suite.Require().NoError(err)

	query, err := queries.NewGetOrderQuery(aggregate.ID(), false)
	suite.Require().NoError(err)
	_, err = suite.handler.Handle(ctx, query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	query, err = queries.NewGetOrderQuery(aggregate.ID(), true)
	suite.Require().NoError(err)
	resp, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().NotNil(resp.DeletedAt)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_InvalidQuery() {
	var query queries.GetOrderQuery
	_, err := suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
