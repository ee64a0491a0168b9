package reviewControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shchutski73/sport-store/models"
	"github.com/shchutski73/sport-store/serializers"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Product{},
		&models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{}, &models.Review{},
	))
	return db
}

func newReviewRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := func(c *gin.Context) { c.Set("user_id", userID) }
	r.GET("/products/:slug/reviews", GetProductReviews(db))
	r.POST("/products/:slug/reviews", auth, CreateReview(db))
	r.PUT("/reviews/:id", auth, UpdateReview(db))
	r.PATCH("/reviews/:id", auth, UpdateReview(db))
	r.DELETE("/reviews/:id", auth, DeleteReview(db))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{Username: username, Email: username + "@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name string) models.Product {
	t.Helper()
	product := models.Product{
		Name:    name,
		Slug:    strings.ToLower(strings.ReplaceAll(name, " ", "-")),
		Price:   50,
		InStock: true,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

// seedOrderWith creates an order in the given status containing one line for
// the product.
func seedOrderWith(t *testing.T, db *gorm.DB, userID, productID uint, status models.OrderStatus) {
	t.Helper()
	order := models.Order{
		OrderRef:      fmt.Sprintf("ref-%d-%d-%s", userID, productID, status),
		UserID:        userID,
		Status:        status,
		PaymentMethod: models.PaymentMethodCash,
		TotalPrice:    50,
	}
	require.NoError(t, db.Create(&order).Error)
	item := models.OrderItem{OrderID: order.ID, ProductID: productID, Quantity: 1, Price: 50}
	require.NoError(t, db.Create(&item).Error)
}

func TestCreateReviewRequiresPurchase(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "ivan")
	product := seedProduct(t, db, "Running Shoes")
	r := newReviewRouter(db, user.ID)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/products/%d/reviews", product.ID),
		gin.H{"rating": 5, "text": "great"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateReviewCancelledOrderDoesNotQualify(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "ivan")
	product := seedProduct(t, db, "Running Shoes")
	seedOrderWith(t, db, user.ID, product.ID, models.OrderStatusCancelled)
	r := newReviewRouter(db, user.ID)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/products/%d/reviews", product.ID),
		gin.H{"rating": 4, "text": "never arrived"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateReviewOncePerUserAndProduct(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "ivan")
	product := seedProduct(t, db, "Running Shoes")
	seedOrderWith(t, db, user.ID, product.ID, models.OrderStatusDelivered)
	r := newReviewRouter(db, user.ID)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/products/%d/reviews", product.ID),
		gin.H{"rating": 5, "text": "great shoes"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp serializers.ReviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ivan", resp.User)
	assert.Equal(t, 5, resp.Rating)

	// Second attempt for the same product is rejected.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/products/%d/reviews", product.ID),
		gin.H{"rating": 1, "text": "changed my mind"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReviewValidatesRating(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "ivan")
	product := seedProduct(t, db, "Running Shoes")
	seedOrderWith(t, db, user.ID, product.ID, models.OrderStatusPending)
	r := newReviewRouter(db, user.ID)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/products/%d/reviews", product.ID),
		gin.H{"rating": 9})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOnlyAuthorMayEditOrDelete(t *testing.T) {
	db := setupTestDB(t)
	author := seedUser(t, db, "ivan")
	other := seedUser(t, db, "olga")
	product := seedProduct(t, db, "Running Shoes")
	seedOrderWith(t, db, author.ID, product.ID, models.OrderStatusDelivered)

	authorRouter := newReviewRouter(db, author.ID)
	w := doJSON(t, authorRouter, http.MethodPost, fmt.Sprintf("/products/%d/reviews", product.ID),
		gin.H{"rating": 5, "text": "great"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created serializers.ReviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	otherRouter := newReviewRouter(db, other.ID)
	w = doJSON(t, otherRouter, http.MethodPatch, fmt.Sprintf("/reviews/%d", created.ID), gin.H{"rating": 1})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = doJSON(t, otherRouter, http.MethodDelete, fmt.Sprintf("/reviews/%d", created.ID), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// PATCH by the author applies only the provided fields.
	w = doJSON(t, authorRouter, http.MethodPatch, fmt.Sprintf("/reviews/%d", created.ID), gin.H{"rating": 3})
	require.Equal(t, http.StatusOK, w.Code)
	var updated serializers.ReviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 3, updated.Rating)
	assert.Equal(t, "great", updated.Text)

	w = doJSON(t, authorRouter, http.MethodDelete, fmt.Sprintf("/reviews/%d", created.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGetProductReviewsPublic(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "ivan")
	product := seedProduct(t, db, "Running Shoes")
	review := models.Review{ProductID: product.ID, UserID: user.ID, Rating: 4, Text: "solid"}
	require.NoError(t, db.Create(&review).Error)

	r := newReviewRouter(db, 0)
	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/products/%d/reviews", product.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []serializers.ReviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "ivan", resp[0].User)

	w = doJSON(t, r, http.MethodGet, "/products/9999/reviews", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
