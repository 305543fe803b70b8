package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Antonov7512/drinkkiosk/internal/catalog"
	"github.com/Antonov7512/drinkkiosk/internal/domain"
	"github.com/Antonov7512/drinkkiosk/internal/service/catalogsvc"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCatalogUseCase is a mock implementation of catalogsvc.CatalogUseCase.
type MockCatalogUseCase struct {
	mock.Mock
}

func (m *MockCatalogUseCase) Snapshot() domain.Config {
	args := m.Called()
	return args.Get(0).(domain.Config)
}

func (m *MockCatalogUseCase) ReplaceConfig(ctx context.Context, cfg domain.Config) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

func (m *MockCatalogUseCase) ClearAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogUseCase) AddCategory(ctx context.Context, in catalog.CategoryInput) (domain.Category, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCatalogUseCase) DeleteCategory(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogUseCase) AddMixer(ctx context.Context, in catalog.MixerInput) (domain.Mixer, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Mixer), args.Error(1)
}

func (m *MockCatalogUseCase) DeleteMixer(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogUseCase) ToggleMixerNonAlcoholic(ctx context.Context, id string) (domain.Mixer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Mixer), args.Error(1)
}

func (m *MockCatalogUseCase) AddDrink(ctx context.Context, in catalog.DrinkInput) (domain.Drink, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Drink), args.Error(1)
}

func (m *MockCatalogUseCase) UpdateDrink(ctx context.Context, id string, in catalog.DrinkInput) (domain.Drink, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(domain.Drink), args.Error(1)
}

func (m *MockCatalogUseCase) DeleteDrink(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogUseCase) AddEvent(ctx context.Context, in catalog.EventInput) (domain.Event, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *MockCatalogUseCase) UpdateEvent(ctx context.Context, id string, in catalog.EventInput) (domain.Event, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *MockCatalogUseCase) DeleteEvent(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogUseCase) AppendBooking(ctx context.Context, b domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockCatalogUseCase) DeleteBooking(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogUseCase) BookingsForEvent(eventID string) ([]domain.Booking, error) {
	args := m.Called(eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func TestAdminHandler_addCategory(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	handler := NewAdminHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(catalog.CategoryInput{Name: "Gin"})
	c.Request = httptest.NewRequest("POST", "/api/admin/categories", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("AddCategory", c.Request.Context(), catalog.CategoryInput{Name: "Gin"}).
		Return(domain.Category{ID: "gin", Name: "Gin"}, nil)

	handler.addCategory(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response domain.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "gin", response.ID)
	mockService.AssertExpectations(t)
}

func TestAdminHandler_addCategory_ValidationError(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	handler := NewAdminHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("POST", "/api/admin/categories", bytes.NewReader([]byte(`{"name":"  "}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("AddCategory", c.Request.Context(), catalog.CategoryInput{Name: "  "}).
		Return(domain.Category{}, catalog.ErrNameRequired)

	handler.addCategory(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertExpectations(t)
}

func TestAdminHandler_addMixer_DefaultsFlag(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	handler := NewAdminHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("POST", "/api/admin/mixers", bytes.NewReader([]byte(`{"name":"Tonic"}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	// Omitted flag defaults to true.
	mockService.On("AddMixer", c.Request.Context(), catalog.MixerInput{Name: "Tonic", IsNonAlcoholicOption: true}).
		Return(domain.Mixer{ID: "tonic", Name: "Tonic", IsNonAlcoholicOption: true}, nil)

	handler.addMixer(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestAdminHandler_deleteCategory(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	handler := NewAdminHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "gin"}}
	c.Request = httptest.NewRequest("DELETE", "/api/admin/categories/gin", nil)

	mockService.On("DeleteCategory", c.Request.Context(), "gin").Return(nil)

	handler.deleteCategory(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestAdminHandler_replaceConfig_InvalidShape(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	handler := NewAdminHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	// Categories is not an array.
	c.Request = httptest.NewRequest("POST", "/api/admin/config",
		bytes.NewReader([]byte(`{"categories":"nope","mixers":[],"drinks":[]}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.replaceConfig(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertExpectations(t)
}

func TestAdminHandler_replaceConfig_SaveFailure(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	handler := NewAdminHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("POST", "/api/admin/config",
		bytes.NewReader([]byte(`{"categories":[],"mixers":[],"drinks":[]}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("ReplaceConfig", c.Request.Context(), mock.AnythingOfType("domain.Config")).
		Return(catalogsvc.ErrSaveFailed)

	handler.replaceConfig(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "failed to save changes", response["error"])
	mockService.AssertExpectations(t)
}

func TestAdminHandler_listBookings(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	handler := NewAdminHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "party"}}
	c.Request = httptest.NewRequest("GET", "/api/admin/events/party/bookings", nil)

	mockService.On("BookingsForEvent", "party").
		Return([]domain.Booking{{ID: "b1", EventID: "party", SummaryText: "Bombay with Tonic"}}, nil)

	handler.listBookings(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []domain.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, "b1", response[0].ID)
	mockService.AssertExpectations(t)
}

func TestRequirePIN(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/api/admin", RequirePIN("1234"))
	group.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	// No PIN.
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/admin/ping", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Wrong PIN.
	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/admin/ping", nil)
	req.Header.Set(pinHeader, "0000")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Correct PIN.
	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/admin/ping", nil)
	req.Header.Set(pinHeader, "1234")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequirePIN_Unconfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ping", RequirePIN(""), func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(pinHeader, "")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
