package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"bananex/internal/adapters/out/postgres/orderrepo"
	"bananex/internal/core/domain/model/order"
	"bananex/internal/core/domain/model/recipient"
	"bananex/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for
// GormOrderRepository using a PostgreSQL container, covering persistence of
// the recipient snapshot, the price column, and the save-as-upsert semantics.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) testOrder(rec recipient.Recipient, quantity int) *order.Order {
	price := decimal.NewFromInt(int64(quantity)).Mul(decimal.RequireFromString("2.50"))
	date := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	return order.Restore(uuid.New(), rec, date, quantity, price)
}

func (suite *OrderRepositoryIntegrationTestSuite) jean() recipient.Recipient {
	return *recipient.Restore(uuid.New(), "Jean", "1 Rue X", "80190", "Y", "France")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSaveAndGet() {
	ctx := context.Background()
	rec := suite.jean()
	ord := suite.testOrder(rec, 50)

	suite.Require().NoError(suite.repository.Save(ctx, ord))

	got, err := suite.repository.Get(ctx, ord.ID())
	suite.Require().NoError(err)
	suite.Equal(ord.ID(), got.ID())
	suite.Equal(50, got.BananaQuantity())
	suite.Equal("2026-10-01", got.DeliveryDate().Format("2006-01-02"))

	price, priced := got.Price()
	suite.True(priced)
	suite.True(decimal.RequireFromString("125").Equal(price), "price was %s", price)

	snapshot := got.Recipient()
	suite.Equal(rec.ID(), snapshot.ID())
	suite.Equal("Jean", snapshot.Name())
	suite.Equal("80190", snapshot.PostalCode())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSaveReplacesExistingOrder() {
	ctx := context.Background()
	rec := suite.jean()
	ord := suite.testOrder(rec, 50)
	suite.Require().NoError(suite.repository.Save(ctx, ord))

	resubmitted := order.Restore(ord.ID(), rec, ord.DeliveryDate(), 75,
		decimal.RequireFromString("187.50"))
	suite.Require().NoError(suite.repository.Save(ctx, resubmitted))

	got, err := suite.repository.Get(ctx, ord.ID())
	suite.Require().NoError(err)
	suite.Equal(75, got.BananaQuantity())

	price, _ := got.Price()
	suite.True(decimal.RequireFromString("187.5").Equal(price))

	orders, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(orders, 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetMissingReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), uuid.New())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestExists() {
	ctx := context.Background()
	ord := suite.testOrder(suite.jean(), 50)
	suite.Require().NoError(suite.repository.Save(ctx, ord))

	exists, err := suite.repository.Exists(ctx, ord.ID())
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.Exists(ctx, uuid.New())
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByRecipient() {
	ctx := context.Background()
	jean := suite.jean()
	marie := *recipient.Restore(uuid.New(), "Marie", "3 Rue Q", "33000", "Bordeaux", "France")

	suite.Require().NoError(suite.repository.Save(ctx, suite.testOrder(jean, 50)))
	suite.Require().NoError(suite.repository.Save(ctx, suite.testOrder(jean, 100)))
	suite.Require().NoError(suite.repository.Save(ctx, suite.testOrder(marie, 25)))

	orders, err := suite.repository.GetByRecipient(ctx, jean.ID())
	suite.Require().NoError(err)
	suite.Len(orders, 2)
	for _, ord := range orders {
		snapshot := ord.Recipient()
		suite.Equal(jean.ID(), snapshot.ID())
	}

	orders, err = suite.repository.GetByRecipient(ctx, uuid.New())
	suite.Require().NoError(err)
	suite.Empty(orders)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeleteIsIdempotent() {
	ctx := context.Background()
	ord := suite.testOrder(suite.jean(), 50)
	suite.Require().NoError(suite.repository.Save(ctx, ord))

	suite.Require().NoError(suite.repository.Delete(ctx, ord.ID()))
	suite.Require().NoError(suite.repository.Delete(ctx, ord.ID()))

	_, err := suite.repository.Get(ctx, ord.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
