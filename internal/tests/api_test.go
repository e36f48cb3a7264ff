// internal/tests/api_test.go
package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/shahalmix/shahalmix-backend/internal/catalog"
	"github.com/shahalmix/shahalmix-backend/internal/handlers"
	"github.com/shahalmix/shahalmix-backend/internal/i18n"
	"github.com/shahalmix/shahalmix-backend/internal/middleware"
	"github.com/shahalmix/shahalmix-backend/internal/models"
	"github.com/shahalmix/shahalmix-backend/internal/services"
	"github.com/shahalmix/shahalmix-backend/internal/store"
)

type APITestSuite struct {
	suite.Suite
	store         *store.Store
	notifications *services.NotificationService
	router        *gin.Engine
}

func (suite *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(i18n.Initialize("../i18n/locales"))

	suite.store = store.New(store.NewMemoryKV())
	suite.notifications = services.NewNotificationService(time.Minute)

	cartService := services.NewCartService(suite.store, suite.notifications)
	productService := services.NewProductService(suite.store, suite.notifications)

	productHandler := handlers.NewProductHandler(suite.store, productService, nil)
	cartHandler := handlers.NewCartHandler(suite.store, cartService)
	dashboardHandler := handlers.NewDashboardHandler(productService, nil, suite.notifications)
	categoryHandler := handlers.NewCategoryHandler()
	notificationHandler := handlers.NewNotificationHandler(suite.notifications)

	suite.router = gin.New()
	suite.router.Use(middleware.I18nMiddleware())

	v1 := suite.router.Group("/v1")
	{
		v1.GET("/products", productHandler.GetProducts)
		v1.POST("/products", productHandler.CreateProduct)
		v1.DELETE("/products/:id", productHandler.DeleteProduct)
		v1.GET("/categories", categoryHandler.GetCategories)
		v1.GET("/cart", cartHandler.GetCart)
		v1.POST("/cart/items", cartHandler.AddItem)
		v1.DELETE("/cart/items/:index", cartHandler.RemoveItem)
		v1.POST("/cart/checkout", cartHandler.Checkout)
		v1.GET("/orders", dashboardHandler.GetOrders)
		v1.GET("/dashboard/stats", dashboardHandler.GetStats)
		v1.GET("/notifications", notificationHandler.GetNotifications)
		v1.DELETE("/notifications/:id", notificationHandler.DismissNotification)
	}
}

func (suite *APITestSuite) TearDownTest() {
	suite.notifications.Close()
	suite.store.Close()
}

func (suite *APITestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		assert.NoError(suite.T(), err)
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *APITestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	return response
}

func (suite *APITestSuite) TestBrowseProducts() {
	w := suite.request("GET", "/v1/products?limit=100", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	assert.True(suite.T(), response["success"].(bool))

	data := response["data"].([]interface{})
	expected := len(catalog.MockProducts) + len(catalog.WholesaleHubProducts) + len(catalog.ThriftProducts)
	assert.Len(suite.T(), data, expected)
	assert.Equal(suite.T(), "39", w.Header().Get("X-Total-Count"))
}

func (suite *APITestSuite) TestBrowseProductsWithFilters() {
	w := suite.request("GET", "/v1/products?market=thrift&limit=100", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	data := response["data"].([]interface{})
	assert.Len(suite.T(), data, len(catalog.ThriftProducts))
	for _, raw := range data {
		product := raw.(map[string]interface{})
		assert.Equal(suite.T(), "thrift", product["origin"])
	}
}

func (suite *APITestSuite) TestCreateAndDeleteProduct() {
	created := suite.request("POST", "/v1/products", map[string]interface{}{
		"name":     "Bulk Cotton Yarn",
		"price":    18500,
		"category": "cat-1",
	})
	assert.Equal(suite.T(), http.StatusCreated, created.Code)

	response := suite.decode(created)
	product := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), "Zafar Bhai Wholesale", product["seller"])

	deleted := suite.request("DELETE", "/v1/products/"+product["id"].(string), nil)
	assert.Equal(suite.T(), http.StatusOK, deleted.Code)
}

func (suite *APITestSuite) TestCreateProductValidation() {
	w := suite.request("POST", "/v1/products", map[string]interface{}{
		"name": "ab", // too short, and price is missing
	})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	response := suite.decode(w)
	assert.False(suite.T(), response["success"].(bool))
}

func (suite *APITestSuite) TestCartCheckoutFlow() {
	added := suite.request("POST", "/v1/cart/items", map[string]interface{}{
		"product_id": "wholesale-0",
	})
	assert.Equal(suite.T(), http.StatusOK, added.Code)

	checkout := suite.request("POST", "/v1/cart/checkout", nil)
	assert.Equal(suite.T(), http.StatusCreated, checkout.Code)

	response := suite.decode(checkout)
	order := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), "Guest User", order["customer_name"])
	assert.Equal(suite.T(), string(models.OrderTypeWholesale), order["type"])

	// Cart must be empty after checkout
	cart := suite.request("GET", "/v1/cart", nil)
	cartData := suite.decode(cart)["data"].(map[string]interface{})
	assert.Empty(suite.T(), cartData["items"])

	// And the order must be listed
	orders := suite.request("GET", "/v1/orders", nil)
	ordersData := suite.decode(orders)["data"].([]interface{})
	assert.Len(suite.T(), ordersData, 1)
}

func (suite *APITestSuite) TestCheckoutEmptyCart() {
	w := suite.request("POST", "/v1/cart/checkout", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	apiError := suite.decode(w)["error"].(map[string]interface{})
	assert.Equal(suite.T(), "Your cart is empty!", apiError["message"])

	orders := suite.request("GET", "/v1/orders", nil)
	ordersData := suite.decode(orders)["data"]
	assert.Empty(suite.T(), ordersData)
}

func (suite *APITestSuite) TestCheckoutEmptyCartLocalizedMessage() {
	req, _ := http.NewRequest("POST", "/v1/cart/checkout", nil)
	req.Header.Set("Accept-Language", "ur")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	apiError := suite.decode(w)["error"].(map[string]interface{})
	assert.Equal(suite.T(), "آپ کی ٹوکری خالی ہے!", apiError["message"])
}

func (suite *APITestSuite) TestBrowseProductsBySellerStorefront() {
	w := suite.request("GET", "/v1/products?seller=Thrift+Corner+1&limit=100", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	data := suite.decode(w)["data"].([]interface{})
	assert.Len(suite.T(), data, 1)
	product := data[0].(map[string]interface{})
	assert.Equal(suite.T(), "Thrift Corner 1", product["seller"])

	// A seller-name fragment is not a storefront
	partial := suite.request("GET", "/v1/products?seller=Thrift+Corner&limit=100", nil)
	partialData := suite.decode(partial)["data"]
	assert.Empty(suite.T(), partialData)
}

func (suite *APITestSuite) TestAddUnknownProductToCart() {
	w := suite.request("POST", "/v1/cart/items", map[string]interface{}{
		"product_id": "no-such-product",
	})
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestCategories() {
	w := suite.request("GET", "/v1/categories", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	data := response["data"].([]interface{})
	assert.Len(suite.T(), data, len(catalog.Categories))
}

func (suite *APITestSuite) TestNotificationLifecycle() {
	suite.request("POST", "/v1/cart/items", map[string]interface{}{
		"product_id": "main-1",
	})

	listed := suite.request("GET", "/v1/notifications", nil)
	data := suite.decode(listed)["data"].([]interface{})
	assert.Len(suite.T(), data, 1)

	entry := data[0].(map[string]interface{})
	dismissed := suite.request("DELETE", "/v1/notifications/"+entry["id"].(string), nil)
	assert.Equal(suite.T(), http.StatusOK, dismissed.Code)

	missing := suite.request("DELETE", "/v1/notifications/"+entry["id"].(string), nil)
	assert.Equal(suite.T(), http.StatusNotFound, missing.Code)
}

func (suite *APITestSuite) TestDashboardStats() {
	suite.request("POST", "/v1/cart/items", map[string]interface{}{"product_id": "thrift-0"})
	suite.request("POST", "/v1/cart/checkout", nil)

	w := suite.request("GET", "/v1/dashboard/stats", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	stats := suite.decode(w)["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(950), stats["total_sales"])
	assert.Equal(suite.T(), float64(1), stats["order_count"])
	assert.Equal(suite.T(), float64(0), stats["product_count"])
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
