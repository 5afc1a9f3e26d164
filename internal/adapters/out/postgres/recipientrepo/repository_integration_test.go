package recipientrepo_test

import (
	"context"
	"testing"
	"time"

	"bananex/internal/adapters/out/postgres/recipientrepo"
	"bananex/internal/core/domain/model/recipient"
	"bananex/internal/core/ports"
	"bananex/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// RecipientRepositoryIntegrationTestSuite provides integration tests for
// GormRecipientRepository using a PostgreSQL container, covering persistence
// behavior and the identity uniqueness invariant.
type RecipientRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *recipientrepo.GormRecipientRepository
}

func (suite *RecipientRepositoryIntegrationTestSuite) SetupSuite() {
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

	// TranslateError turns unique index violations into gorm.ErrDuplicatedKey.
	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&recipientrepo.RecipientDTO{}))
}

func (suite *RecipientRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE recipients").Error)
	suite.repository = recipientrepo.NewGormRecipientRepository(suite.db)
}

func (suite *RecipientRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RecipientRepositoryIntegrationTestSuite) jean() *recipient.Recipient {
	return recipient.Restore(uuid.New(), "Jean", "1 Rue X", "80190", "Y", "France")
}

func (suite *RecipientRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	rec := suite.jean()

	suite.Require().NoError(suite.repository.Add(ctx, rec))

	got, err := suite.repository.Get(ctx, rec.ID())
	suite.Require().NoError(err)
	suite.Equal(rec.ID(), got.ID())
	suite.Equal("Jean", got.Name())
	suite.Equal("1 Rue X", got.Address())
	suite.Equal("80190", got.PostalCode())
	suite.Equal("Y", got.City())
	suite.Equal("France", got.Country())
}

func (suite *RecipientRepositoryIntegrationTestSuite) TestGetMissingReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), uuid.New())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RecipientRepositoryIntegrationTestSuite) TestExistsByIdentity() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.jean()))

	identity := ports.RecipientIdentity{
		Name: "Jean", Address: "1 Rue X", PostalCode: "80190", City: "Y", Country: "France",
	}
	exists, err := suite.repository.ExistsByIdentity(ctx, identity)
	suite.Require().NoError(err)
	suite.True(exists)

	// Changing any single field of the tuple makes it a different identity.
	changed := identity
	changed.City = "Paris"
	exists, err = suite.repository.ExistsByIdentity(ctx, changed)
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *RecipientRepositoryIntegrationTestSuite) TestAddDuplicateIdentityFails() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.jean()))

	duplicate := recipient.Restore(uuid.New(), "Jean", "1 Rue X", "80190", "Y", "France")
	err := suite.repository.Add(ctx, duplicate)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrAlreadyExists)
}

func (suite *RecipientRepositoryIntegrationTestSuite) TestUpdateReplacesAllFields() {
	ctx := context.Background()
	rec := suite.jean()
	suite.Require().NoError(suite.repository.Add(ctx, rec))

	updated := recipient.Restore(rec.ID(), "Jeanne", "2 Rue Z", "75001", "Paris", "France")
	suite.Require().NoError(suite.repository.Update(ctx, updated))

	got, err := suite.repository.Get(ctx, rec.ID())
	suite.Require().NoError(err)
	suite.Equal("Jeanne", got.Name())
	suite.Equal("2 Rue Z", got.Address())
	suite.Equal("75001", got.PostalCode())
	suite.Equal("Paris", got.City())
}

func (suite *RecipientRepositoryIntegrationTestSuite) TestDeleteIsIdempotent() {
	ctx := context.Background()
	rec := suite.jean()
	suite.Require().NoError(suite.repository.Add(ctx, rec))

	suite.Require().NoError(suite.repository.Delete(ctx, rec.ID()))
	suite.Require().NoError(suite.repository.Delete(ctx, rec.ID()))

	_, err := suite.repository.Get(ctx, rec.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RecipientRepositoryIntegrationTestSuite) TestGetAll() {
	ctx := context.Background()

	recs, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Empty(recs)

	suite.Require().NoError(suite.repository.Add(ctx, suite.jean()))
	suite.Require().NoError(suite.repository.Add(ctx,
		recipient.Restore(uuid.New(), "Marie", "3 Rue Q", "33000", "Bordeaux", "France")))

	recs, err = suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(recs, 2)
}

func TestRecipientRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RecipientRepositoryIntegrationTestSuite))
}
