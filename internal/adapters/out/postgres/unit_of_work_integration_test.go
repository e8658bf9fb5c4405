package postgres_test

import (
	"context"
	"testing"
	"time"

	pg "storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/orderrepo"
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

type GormUnitOfWorkTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *pg.GormUnitOfWorkFactory
}

func (suite *GormUnitOfWorkTestSuite) SetupSuite() {
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

	suite.factory = pg.NewGormUnitOfWorkFactory(db)
}

func (suite *GormUnitOfWorkTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormUnitOfWorkTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GormUnitOfWorkTestSuite) makeOrder() *order.Order {
	item, err := order.NewItem(
		kernel.NewUUID(), kernel.NewUUID(), "Widget", "W-1",
		1, kernel.MustMoneyFromString("10.00"), kernel.ZeroMoney(), "",
	)
	suite.Require().NoError(err)

	customer, err := order.NewCustomerSnapshot("Jane Roe", "+15550001", "", "")
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), order.GenerateNumber(time.Now()), nil, nil,
		customer, time.Now(), []*order.Item{item},
		kernel.ZeroMoney(), kernel.ZeroMoney(), "", "", "",
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *GormUnitOfWorkTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	aggregate := suite.makeOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := uow.OrderRepository().GetByID(ctx, aggregate.ID(), false)
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(aggregate.ID()))
}

func (suite *GormUnitOfWorkTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	aggregate := suite.makeOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := uow.OrderRepository().GetByID(ctx, aggregate.ID(), false)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormUnitOfWorkTestSuite) TestBegin_IsIdempotent() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *GormUnitOfWorkTestSuite) TestCommit_WithoutBeginFails() {
	uow := suite.factory.Create()
	err := uow.Commit(context.Background())
	suite.Require().Error(err)
}

func TestGormUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(GormUnitOfWorkTestSuite))
}
