package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"cats-shop/internal/i18n"
	"cats-shop/internal/model"
	"cats-shop/internal/order"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductService is a mock implementation of service.ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) Get(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, product model.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductService) Update(ctx context.Context, product model.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockOrderService is a mock implementation of service.OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) ComposeIntent(ctx context.Context, productID string, quantity int, locale string) (*order.Intent, string, error) {
	args := m.Called(ctx, productID, quantity, locale)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*order.Intent), args.String(1), args.Error(2)
}

func ptr(f float64) *float64 { return &f }

func sampleProduct() model.Product {
	return model.Product{
		ID:       "cats-fresh",
		IDNumber: 1,
		Name:     model.LocalizedText{UK: "Наповнювач Cats Fresh", RU: "Наполнитель Cats Fresh"},
		Description: model.LocalizedText{
			UK: "Екологічний наповнювач з тофу",
			RU: "Экологический наполнитель из тофу",
		},
		Price: model.PriceSchedule{
			Single: 280,
			From8:  ptr(250),
			From80: ptr(200),
		},
	}
}

func newTestServer(t *testing.T, products *MockProductService, orders *MockOrderService) http.Handler {
	t.Helper()

	bundle, err := i18n.LoadBundle()
	require.NoError(t, err)

	pages, err := NewPages(products, orders, bundle, zerolog.Nop())
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Get("/", pages.RedirectRoot)
	r.Route("/{locale}", func(r chi.Router) {
		r.Get("/", pages.Home)
		r.Get("/product/{id}", pages.ProductPage)
		r.Post("/product/{id}/buy", pages.Buy)
		r.Get("/admin", pages.Admin)
		r.Post("/admin", pages.Admin)
	})
	return r
}

func TestPages_RedirectRoot(t *testing.T) {
	router := newTestServer(t, new(MockProductService), new(MockOrderService))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/uk/", rec.Header().Get("Location"))
}

func TestPages_Home(t *testing.T) {
	products := new(MockProductService)
	router := newTestServer(t, products, new(MockOrderService))

	products.On("List", mock.Anything).Return([]model.Product{sampleProduct()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/uk/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Наповнювач Cats Fresh")
	assert.Contains(t, body, "Наші товари")
	// Promotional block derived from the three-tier schedule.
	assert.Contains(t, body, "−11%")
	assert.Contains(t, body, "−29%")
}

func TestPages_Home_RussianLocale(t *testing.T) {
	products := new(MockProductService)
	router := newTestServer(t, products, new(MockOrderService))

	products.On("List", mock.Anything).Return([]model.Product{sampleProduct()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/ru/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Наполнитель Cats Fresh")
	assert.Contains(t, rec.Body.String(), "Наши товары")
}

func TestPages_Home_TwoTierScheduleHasNoPromoBlock(t *testing.T) {
	products := new(MockProductService)
	router := newTestServer(t, products, new(MockOrderService))

	product := sampleProduct()
	product.Price = model.PriceSchedule{Single: 280, From6: ptr(250)}
	products.On("List", mock.Anything).Return([]model.Product{product}, nil)

	req := httptest.NewRequest(http.MethodGet, "/uk/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Оптова знижка")
}

func TestPages_ProductPage(t *testing.T) {
	products := new(MockProductService)
	router := newTestServer(t, products, new(MockOrderService))

	product := sampleProduct()
	products.On("Get", mock.Anything, "cats-fresh").Return(&product, nil)

	req := httptest.NewRequest(http.MethodGet, "/uk/product/cats-fresh?qty=8", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "250 ₴")
	assert.Contains(t, body, "2000 ₴")
	assert.Contains(t, body, "Разом (8 шт):")
	assert.Contains(t, body, "Оптова знижка активна!")
}

func TestPages_ProductPage_InvalidQuantityCoercedToOne(t *testing.T) {
	products := new(MockProductService)
	router := newTestServer(t, products, new(MockOrderService))

	product := sampleProduct()
	products.On("Get", mock.Anything, "cats-fresh").Return(&product, nil)

	req := httptest.NewRequest(http.MethodGet, "/uk/product/cats-fresh?qty=abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "280 ₴")
	assert.Contains(t, body, "Разом (1 шт):")
}

func TestPages_ProductPage_NotFound(t *testing.T) {
	products := new(MockProductService)
	router := newTestServer(t, products, new(MockOrderService))

	products.On("Get", mock.Anything, "missing").Return(nil, model.ErrProductNotFound)

	req := httptest.NewRequest(http.MethodGet, "/uk/product/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Товар не знайдено")
}

func TestPages_Buy_RedirectsToDeepLink(t *testing.T) {
	orders := new(MockOrderService)
	router := newTestServer(t, new(MockProductService), orders)

	link := "https://t.me/catsfresh_shop_bot?start=cats1-8-2000-ukshop"
	orders.On("ComposeIntent", mock.Anything, "cats-fresh", 8, "uk").
		Return(&order.Intent{}, link, nil)

	form := url.Values{"qty": {"8"}}
	req := httptest.NewRequest(http.MethodPost, "/uk/product/cats-fresh/buy", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, link, rec.Header().Get("Location"))
}

func TestPages_Buy_DispatchFailureBouncesBack(t *testing.T) {
	orders := new(MockOrderService)
	router := newTestServer(t, new(MockProductService), orders)

	orders.On("ComposeIntent", mock.Anything, "cats-fresh", 1, "uk").
		Return(nil, "", model.ErrDispatchInFlight)

	form := url.Values{"qty": {"1"}}
	req := httptest.NewRequest(http.MethodPost, "/uk/product/cats-fresh/buy", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/uk/product/cats-fresh?qty=1&notice=dispatch", rec.Header().Get("Location"))
}

func TestPages_Buy_UnknownProduct(t *testing.T) {
	orders := new(MockOrderService)
	router := newTestServer(t, new(MockProductService), orders)

	orders.On("ComposeIntent", mock.Anything, "missing", 1, "uk").
		Return(nil, "", model.ErrProductNotFound)

	form := url.Values{"qty": {"1"}}
	req := httptest.NewRequest(http.MethodPost, "/uk/product/missing/buy", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPages_Admin_Board(t *testing.T) {
	products := new(MockProductService)
	router := newTestServer(t, products, new(MockOrderService))

	products.On("List", mock.Anything).Return([]model.Product{sampleProduct()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/uk/admin", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Панель адміністратора")
	assert.Contains(t, body, `name="price_from_80" value="200"`)
}

func TestPages_Admin_Save(t *testing.T) {
	products := new(MockProductService)
	router := newTestServer(t, products, new(MockOrderService))

	products.On("Update", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.ID == "cats-fresh" &&
			p.IDNumber == 1 &&
			p.Name.UK == "Нова назва" &&
			p.Price.Single == 300 &&
			p.Price.From6 == nil &&
			p.Price.From8 != nil && *p.Price.From8 == 260
	})).Return(nil)

	form := url.Values{
		"id":           {"cats-fresh"},
		"id_number":    {"1"},
		"name_uk":      {"Нова назва"},
		"name_ru":      {"Новое название"},
		"price_single": {"300"},
		"price_from_8": {"260"},
	}
	req := httptest.NewRequest(http.MethodPost, "/uk/admin", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/uk/admin?id=cats-fresh&saved=1", rec.Header().Get("Location"))
	products.AssertExpectations(t)
}

func TestPages_Admin_SaveUnknownProduct(t *testing.T) {
	products := new(MockProductService)
	router := newTestServer(t, products, new(MockOrderService))

	products.On("Update", mock.Anything, mock.AnythingOfType("model.Product")).
		Return(model.ErrProductNotFound)

	form := url.Values{"id": {"ghost"}, "price_single": {"100"}}
	req := httptest.NewRequest(http.MethodPost, "/uk/admin", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
