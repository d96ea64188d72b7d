package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"kitchensmart/internal/models"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type LocationRepoTestSuite struct {
	suite.Suite
	mock       pgxmock.PgxPoolIface
	repo       LocationRepository
	locationID uuid.UUID
	context    context.Context
}

func (suite *LocationRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewLocationRepository(mock)
	suite.locationID = uuid.New()
	suite.context = context.Background()
}

func (suite *LocationRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestLocationRepoTestSuite(t *testing.T) {
	suite.Run(t, new(LocationRepoTestSuite))
}

func (suite *LocationRepoTestSuite) TestCreate_Success() {
	now := time.Now().UTC()
	location := &models.Location{
		ID:        uuid.New(),
		Name:      "Fridge",
		CreatedAt: now,
		UpdatedAt: now,
	}

	suite.mock.ExpectExec(`INSERT INTO locations`).
		WithArgs(location.ID, location.Name, location.CreatedAt, location.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.context, location)
	assert.NoError(suite.T(), err)
}

func (suite *LocationRepoTestSuite) TestCreate_DatabaseError() {
	now := time.Now().UTC()
	location := &models.Location{
		ID:        uuid.New(),
		Name:      "Pantry",
		CreatedAt: now,
		UpdatedAt: now,
	}

	suite.mock.ExpectExec(`INSERT INTO locations`).
		WithArgs(location.ID, location.Name, location.CreatedAt, location.UpdatedAt).
		WillReturnError(errors.New("database connection failed"))

	err := suite.repo.Create(suite.context, location)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "database connection failed")
}

func (suite *LocationRepoTestSuite) TestGetByID_Success() {
	now := time.Now().UTC()

	suite.mock.ExpectQuery(`SELECT id, name, created_at, updated_at\s+FROM locations`).
		WithArgs(suite.locationID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
			AddRow(suite.locationID, "Fridge", now, now))

	result, err := suite.repo.GetByID(suite.context, suite.locationID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.locationID, result.ID)
	assert.Equal(suite.T(), "Fridge", result.Name)
}

func (suite *LocationRepoTestSuite) TestGetByID_NotFound() {
	suite.mock.ExpectQuery(`SELECT id, name, created_at, updated_at\s+FROM locations`).
		WithArgs(suite.locationID).
		WillReturnError(pgx.ErrNoRows)

	result, err := suite.repo.GetByID(suite.context, suite.locationID)
	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, pgx.ErrNoRows)
	assert.Nil(suite.T(), result)
}

func (suite *LocationRepoTestSuite) TestUpdate_Success() {
	now := time.Now().UTC()
	location := &models.Location{
		ID:        suite.locationID,
		Name:      "Chest Freezer",
		UpdatedAt: now,
	}

	suite.mock.ExpectExec(`UPDATE locations`).
		WithArgs(location.Name, location.UpdatedAt, location.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.Update(suite.context, location)
	assert.NoError(suite.T(), err)
}

func (suite *LocationRepoTestSuite) TestDelete_Success() {
	suite.mock.ExpectExec(`DELETE FROM locations`).
		WithArgs(suite.locationID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := suite.repo.Delete(suite.context, suite.locationID)
	assert.NoError(suite.T(), err)
}

func (suite *LocationRepoTestSuite) TestList_InsertionOrder() {
	first := time.Now().UTC().Add(-time.Hour)
	second := time.Now().UTC()
	firstID := uuid.New()
	secondID := uuid.New()

	suite.mock.ExpectQuery(`SELECT id, name, created_at, updated_at\s+FROM locations\s+ORDER BY created_at ASC`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
			AddRow(firstID, "Fridge", first, first).
			AddRow(secondID, "Pantry", second, second))

	result, err := suite.repo.List(suite.context)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 2)
	assert.Equal(suite.T(), firstID, result[0].ID)
	assert.Equal(suite.T(), secondID, result[1].ID)
}

func (suite *LocationRepoTestSuite) TestList_Empty() {
	suite.mock.ExpectQuery(`SELECT id, name, created_at, updated_at\s+FROM locations`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "created_at", "updated_at"}))

	result, err := suite.repo.List(suite.context)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), result)
}
