package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kitchensmart/internal/models"
	"kitchensmart/internal/services"
	"kitchensmart/pkg/validator"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockInventoryItemService struct {
	mock.Mock
}

func (m *MockInventoryItemService) Create(ctx context.Context, item *models.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryItemService) GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryItemService) Update(ctx context.Context, id uuid.UUID, upd *services.InventoryItemUpdate) (*models.InventoryItem, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryItemService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInventoryItemService) List(ctx context.Context, filter *models.InventoryItemFilter) ([]*models.InventoryItem, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*models.InventoryItem), args.Get(1).(int64), args.Error(2)
}

func (m *MockInventoryItemService) ListByLocation(ctx context.Context, locationID uuid.UUID, filter *models.InventoryItemFilter) ([]*models.InventoryItem, int64, error) {
	args := m.Called(ctx, locationID, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*models.InventoryItem), args.Get(1).(int64), args.Error(2)
}

type InventoryHandlersTestSuite struct {
	suite.Suite
	echo        *echo.Echo
	mockService *MockInventoryItemService
	handlers    *InventoryItemHandlers
}

func (suite *InventoryHandlersTestSuite) SetupTest() {
	suite.echo = echo.New()
	suite.echo.Validator = validator.NewEchoValidator()
	suite.mockService = &MockInventoryItemService{}
	suite.mockService.Test(suite.T())
	suite.handlers = NewInventoryItemHandlers(suite.mockService)
}

func (suite *InventoryHandlersTestSuite) TearDownTest() {
	suite.mockService.AssertExpectations(suite.T())
}

func TestInventoryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryHandlersTestSuite))
}

func (suite *InventoryHandlersTestSuite) TestCreateInventoryItem_Success() {
	productID := uuid.New()
	locationID := uuid.New()
	body := fmt.Sprintf(`{"product_id":"%s","location_id":"%s","quantity":1.5,"price":9.99}`, productID, locationID)

	suite.mockService.On("Create", mock.Anything, mock.MatchedBy(func(item *models.InventoryItem) bool {
		return item.ProductID == productID && item.LocationID == locationID &&
			item.Quantity == 1.5 && item.Price == 9.99 && item.StoreID == nil
	})).Run(func(args mock.Arguments) {
		item := args.Get(1).(*models.InventoryItem)
		item.ID = uuid.New()
	}).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/inventory_items", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := suite.echo.NewContext(req, rec)

	err := suite.handlers.CreateInventoryItem(c)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusCreated, rec.Code)

	var resp models.InventoryItem
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEqual(suite.T(), uuid.Nil, resp.ID)
	assert.Equal(suite.T(), 1.5, resp.Quantity)
	assert.Equal(suite.T(), 9.99, resp.Price)
}

func (suite *InventoryHandlersTestSuite) TestCreateInventoryItem_MissingProduct() {
	locationID := uuid.New()
	body := fmt.Sprintf(`{"location_id":"%s","quantity":1,"price":1}`, locationID)

	req := httptest.NewRequest(http.MethodPost, "/inventory_items", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := suite.echo.NewContext(req, rec)

	err := suite.handlers.CreateInventoryItem(c)
	assert.Error(suite.T(), err)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), http.StatusBadRequest, httpErr.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *InventoryHandlersTestSuite) TestCreateInventoryItem_DanglingReference() {
	productID := uuid.New()
	locationID := uuid.New()
	body := fmt.Sprintf(`{"product_id":"%s","location_id":"%s","quantity":1,"price":1}`, productID, locationID)

	notFound := fmt.Errorf("product %s not found: %w", productID, pgx.ErrNoRows)
	suite.mockService.On("Create", mock.Anything, mock.AnythingOfType("*models.InventoryItem")).Return(notFound)

	req := httptest.NewRequest(http.MethodPost, "/inventory_items", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := suite.echo.NewContext(req, rec)

	err := suite.handlers.CreateInventoryItem(c)
	assert.Error(suite.T(), err)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), http.StatusNotFound, httpErr.Code)
	assert.Contains(suite.T(), httpErr.Message, "not found")
}

func (suite *InventoryHandlersTestSuite) TestListLocationItems_Success() {
	locationID := uuid.New()
	items := []*models.InventoryItem{
		{ID: uuid.New(), LocationID: locationID, Quantity: 1.5, Price: 9.99},
		{ID: uuid.New(), LocationID: locationID, Quantity: 3, Price: 0.5},
	}

	suite.mockService.On("ListByLocation", mock.Anything, locationID, mock.AnythingOfType("*models.InventoryItemFilter")).
		Return(items, int64(2), nil)

	req := httptest.NewRequest(http.MethodGet, "/locations/"+locationID.String()+"/items", nil)
	rec := httptest.NewRecorder()
	c := suite.echo.NewContext(req, rec)
	c.SetPath("/locations/:id/items")
	c.SetParamNames("id")
	c.SetParamValues(locationID.String())

	err := suite.handlers.ListLocationItems(c)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var resp struct {
		Items []*models.InventoryItem `json:"items"`
		Total int64                   `json:"total"`
	}
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(suite.T(), resp.Items, 2)
	assert.Equal(suite.T(), int64(2), resp.Total)
}

func (suite *InventoryHandlersTestSuite) TestListLocationItems_Empty() {
	locationID := uuid.New()

	suite.mockService.On("ListByLocation", mock.Anything, locationID, mock.AnythingOfType("*models.InventoryItemFilter")).
		Return([]*models.InventoryItem(nil), int64(0), nil)

	req := httptest.NewRequest(http.MethodGet, "/locations/"+locationID.String()+"/items", nil)
	rec := httptest.NewRecorder()
	c := suite.echo.NewContext(req, rec)
	c.SetPath("/locations/:id/items")
	c.SetParamNames("id")
	c.SetParamValues(locationID.String())

	err := suite.handlers.ListLocationItems(c)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), `"items":[]`)
	assert.Contains(suite.T(), rec.Body.String(), `"total":0`)
}

func (suite *InventoryHandlersTestSuite) TestListLocationItems_UnknownLocation() {
	locationID := uuid.New()

	notFound := fmt.Errorf("location %s not found: %w", locationID, pgx.ErrNoRows)
	suite.mockService.On("ListByLocation", mock.Anything, locationID, mock.AnythingOfType("*models.InventoryItemFilter")).
		Return(nil, int64(0), notFound)

	req := httptest.NewRequest(http.MethodGet, "/locations/"+locationID.String()+"/items", nil)
	rec := httptest.NewRecorder()
	c := suite.echo.NewContext(req, rec)
	c.SetPath("/locations/:id/items")
	c.SetParamNames("id")
	c.SetParamValues(locationID.String())

	err := suite.handlers.ListLocationItems(c)
	assert.Error(suite.T(), err)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), http.StatusNotFound, httpErr.Code)
}

func (suite *InventoryHandlersTestSuite) TestListLocationItems_InvalidID() {
	req := httptest.NewRequest(http.MethodGet, "/locations/not-a-uuid/items", nil)
	rec := httptest.NewRecorder()
	c := suite.echo.NewContext(req, rec)
	c.SetPath("/locations/:id/items")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := suite.handlers.ListLocationItems(c)
	assert.Error(suite.T(), err)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), http.StatusBadRequest, httpErr.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListByLocation", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InventoryHandlersTestSuite) TestUpdateInventoryItem_NegativeQuantity() {
	itemID := uuid.New()
	body := `{"quantity":-1}`

	suite.mockService.On("Update", mock.Anything, itemID, mock.MatchedBy(func(upd *services.InventoryItemUpdate) bool {
		return upd.Quantity != nil && *upd.Quantity == -1
	})).Return(nil, &services.ValidationError{Msg: "quantity must be non-negative"})

	req := httptest.NewRequest(http.MethodPut, "/inventory_items/"+itemID.String(), strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := suite.echo.NewContext(req, rec)
	c.SetPath("/inventory_items/:id")
	c.SetParamNames("id")
	c.SetParamValues(itemID.String())

	err := suite.handlers.UpdateInventoryItem(c)
	assert.Error(suite.T(), err)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), http.StatusBadRequest, httpErr.Code)
	assert.Contains(suite.T(), httpErr.Message, "quantity")
}

func (suite *InventoryHandlersTestSuite) TestDeleteInventoryItem_NotFound() {
	itemID := uuid.New()

	suite.mockService.On("GetByID", mock.Anything, itemID).Return(nil, pgx.ErrNoRows)

	req := httptest.NewRequest(http.MethodDelete, "/inventory_items/"+itemID.String(), nil)
	rec := httptest.NewRecorder()
	c := suite.echo.NewContext(req, rec)
	c.SetPath("/inventory_items/:id")
	c.SetParamNames("id")
	c.SetParamValues(itemID.String())

	err := suite.handlers.DeleteInventoryItem(c)
	assert.Error(suite.T(), err)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), http.StatusNotFound, httpErr.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything)
}
