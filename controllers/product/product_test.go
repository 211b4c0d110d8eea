package productcontroller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Digeee/ZENCAFE/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Product{}))
	return db
}

func seed(t *testing.T, db *gorm.DB) (models.Category, models.Category) {
	t.Helper()

	tea := models.Category{Name: "Tea", Slug: "tea", DisplayOrder: 2}
	coffee := models.Category{Name: "Coffee", Slug: "coffee", DisplayOrder: 1}
	require.NoError(t, db.Create(&tea).Error)
	require.NoError(t, db.Create(&coffee).Error)

	products := []models.Product{
		{CategoryID: tea.ID, Name: "Ceylon Black Tea", Slug: "ceylon-black-tea",
			Description: "Premium black tea from Nuwara Eliya", Price: "12.99",
			ImageURL: "/img/1.png", Featured: true},
		{CategoryID: tea.ID, Name: "Spiced Ceylon Chai", Slug: "spiced-ceylon-chai",
			Description: "Cardamom and cinnamon blend", Price: "14.50",
			ImageURL: "/img/2.png"},
		{CategoryID: coffee.ID, Name: "Kithul Coffee", Slug: "kithul-coffee",
			Description: "Dark roast with kithul sweetness", Price: "18.00",
			ImageURL: "/img/3.png"},
	}
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}
	return tea, coffee
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestGetProductsFeaturedFirst(t *testing.T) {
	db := setupDB(t)
	seed(t, db)

	r := newRouter()
	r.GET("/api/products", GetProducts(db))

	w := get(r, "/api/products")
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 3)
	assert.Equal(t, "ceylon-black-tea", products[0].Slug, "featured products sort first")
}

func TestGetProductsFilterByCategorySlug(t *testing.T) {
	db := setupDB(t)
	seed(t, db)

	r := newRouter()
	r.GET("/api/products", GetProducts(db))

	w := get(r, "/api/products?category=coffee")
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "kithul-coffee", products[0].Slug)
}

func TestGetProductsSearchIsCaseInsensitive(t *testing.T) {
	db := setupDB(t)
	seed(t, db)

	r := newRouter()
	r.GET("/api/products", GetProducts(db))

	for _, q := range []string{"CHAI", "chai", "cardamom"} {
		w := get(r, "/api/products?search="+q)
		require.Equal(t, http.StatusOK, w.Code)

		var products []models.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
		require.Len(t, products, 1, "search=%s", q)
		assert.Equal(t, "spiced-ceylon-chai", products[0].Slug)
	}
}

func TestGetProductsFeaturedFilter(t *testing.T) {
	db := setupDB(t)
	seed(t, db)

	r := newRouter()
	r.GET("/api/products", GetProducts(db))

	w := get(r, "/api/products?featured=true")
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.True(t, products[0].Featured)
}

func TestGetProductBySlugNotFound(t *testing.T) {
	db := setupDB(t)
	seed(t, db)

	r := newRouter()
	r.GET("/api/products/:slug", GetProductBySlug(db))

	assert.Equal(t, http.StatusNotFound, get(r, "/api/products/missing").Code)
	assert.Equal(t, http.StatusOK, get(r, "/api/products/kithul-coffee").Code)
}

func TestCreateProductDerivesSlug(t *testing.T) {
	db := setupDB(t)
	tea, _ := seed(t, db)

	r := newRouter()
	r.POST("/api/admin/products", CreateProduct(db))

	body, _ := json.Marshal(CreateProductRequest{
		CategoryID:  tea.ID,
		Name:        "Jaggery Hopper Mix!",
		Description: "Pastry base",
		Price:       "6.25",
		ImageURL:    "/img/4.png",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "jaggery-hopper-mix", created.Slug)
}

func TestCreateProductRejectsBadPrice(t *testing.T) {
	db := setupDB(t)
	tea, _ := seed(t, db)

	r := newRouter()
	r.POST("/api/admin/products", CreateProduct(db))

	body, _ := json.Marshal(CreateProductRequest{
		CategoryID:  tea.ID,
		Name:        "Bad Price",
		Description: "x",
		Price:       "12.999",
		ImageURL:    "/img/x.png",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProductRenameRegeneratesSlug(t *testing.T) {
	db := setupDB(t)
	seed(t, db)

	var p models.Product
	require.NoError(t, db.First(&p, "slug = ?", "kithul-coffee").Error)

	r := newRouter()
	r.PUT("/api/admin/products/:id", UpdateProduct(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/products/"+p.ID,
		bytes.NewBufferString(`{"name":"Kithul Espresso Roast"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.NoError(t, db.First(&p, "id = ?", p.ID).Error)
	assert.Equal(t, "kithul-espresso-roast", p.Slug)
}

func TestGetAllCategoriesOrderedByDisplayOrder(t *testing.T) {
	db := setupDB(t)
	seed(t, db)

	r := newRouter()
	r.GET("/api/categories", GetAllCategories(db))

	w := get(r, "/api/categories")
	require.Equal(t, http.StatusOK, w.Code)

	var categories []models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	require.Len(t, categories, 2)
	assert.Equal(t, "coffee", categories[0].Slug)
	assert.Equal(t, "tea", categories[1].Slug)
}
