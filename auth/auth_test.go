package auth

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

	userControllers "github.com/shchutski73/sport-store/controllers/user"
	"github.com/shchutski73/sport-store/middleware"
	"github.com/shchutski73/sport-store/models"
	"github.com/shchutski73/sport-store/serializers"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func newAuthRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/register", Register(db))
	r.POST("/token", Token(db))
	r.GET("/user", middleware.ValidateToken, userControllers.GetUser(db))
	r.GET("/admin/ping", middleware.ValidateToken, middleware.RequireAdmin, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestRegisterIssuesTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	r := newAuthRouter(db)

	w := doJSON(t, r, http.MethodPost, "/register", gin.H{
		"username": "alice", "email": "alice@example.com", "password": "hunter22",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["access"])
	assert.NotEmpty(t, resp["refresh"])

	var user models.User
	require.NoError(t, db.Where("username = ?", "alice").First(&user).Error)
	assert.NotEqual(t, "hunter22", user.PasswordHash, "password is stored hashed")
	assert.False(t, user.IsStaff)
}

func TestRegisterValidation(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.User{
		Username: "alice", Email: "alice@example.com", PasswordHash: "x",
	}).Error)
	r := newAuthRouter(db)

	w := doJSON(t, r, http.MethodPost, "/register", gin.H{"username": "bob"}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Username, email and password are required", errorMessage(t, w))

	w = doJSON(t, r, http.MethodPost, "/register", gin.H{
		"username": "alice", "email": "other@example.com", "password": "pw",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Username already exists", errorMessage(t, w))

	w = doJSON(t, r, http.MethodPost, "/register", gin.H{
		"username": "bob", "email": "alice@example.com", "password": "pw",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already exists", errorMessage(t, w))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "failed registrations leave no rows behind")
}

func TestTokenLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	r := newAuthRouter(db)

	w := doJSON(t, r, http.MethodPost, "/register", gin.H{
		"username": "alice", "email": "alice@example.com", "password": "hunter22",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/token", gin.H{"username": "alice", "password": "hunter22"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["access"])
	assert.NotEmpty(t, resp["refresh"])

	w = doJSON(t, r, http.MethodPost, "/token", gin.H{"username": "alice", "password": "wrong"}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid username or password", errorMessage(t, w))

	// Unknown users get the same message as a wrong password.
	w = doJSON(t, r, http.MethodPost, "/token", gin.H{"username": "mallory", "password": "pw"}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid username or password", errorMessage(t, w))
}

func TestAccessTokenGuardsUserEndpoint(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	user := models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	r := newAuthRouter(db)

	access, refresh, err := IssueTokenPair(user)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/user", nil, access)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var profile serializers.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "alice@example.com", profile.Email)

	w = doJSON(t, r, http.MethodGet, "/user", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Authorization header is missing", errorMessage(t, w))

	w = doJSON(t, r, http.MethodGet, "/user", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Refresh tokens cannot be used where an access token is expected.
	w = doJSON(t, r, http.MethodGet, "/user", nil, refresh)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Access token required", errorMessage(t, w))
}

func TestNonBearerSchemeRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	user := models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	r := newAuthRouter(db)

	access, _, err := IssueTokenPair(user)
	require.NoError(t, err)

	for _, header := range []string{access, "Basic " + access, "bearer " + access} {
		req := httptest.NewRequest(http.MethodGet, "/user", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code, header)
		assert.Equal(t, "Authorization header must use the Bearer scheme", errorMessage(t, w))
	}
}

func TestTokenRejectedAfterSecretChange(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	user := models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	r := newAuthRouter(db)

	access, _, err := IssueTokenPair(user)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "rotated")
	w := doJSON(t, r, http.MethodGet, "/user", nil, access)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid or expired token", errorMessage(t, w))
}

func TestRequireAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	customer := models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	staff := models.User{Username: "root", Email: "root@example.com", PasswordHash: "x", IsStaff: true}
	require.NoError(t, db.Create(&customer).Error)
	require.NoError(t, db.Create(&staff).Error)
	r := newAuthRouter(db)

	customerToken, _, err := IssueTokenPair(customer)
	require.NoError(t, err)
	staffToken, _, err := IssueTokenPair(staff)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/admin/ping", nil, customerToken)
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Admin privileges required", errorMessage(t, w))

	w = doJSON(t, r, http.MethodGet, "/admin/ping", nil, staffToken)
	assert.Equal(t, http.StatusOK, w.Code)
}
