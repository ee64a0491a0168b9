package contactControllers

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
	require.NoError(t, db.AutoMigrate(&models.Contact{}))
	return db
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

func TestCreateContact(t *testing.T) {
	db := setupTestDB(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/contact", CreateContact(db))

	w := doJSON(t, r, http.MethodPost, "/contact", gin.H{
		"name": "Alice", "email": "alice@example.com", "message": "Do you ship abroad?",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var saved models.Contact
	require.NoError(t, db.First(&saved).Error)
	assert.Equal(t, "Do you ship abroad?", saved.Message)

	// Email format is validated by the binding.
	w = doJSON(t, r, http.MethodPost, "/contact", gin.H{
		"name": "Bob", "email": "not-an-email", "message": "hi",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/contact", gin.H{"name": "Bob"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetContactsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/contact", CreateContact(db))
	r.GET("/admin/contacts", GetContacts(db))

	for _, msg := range []string{"first", "second"} {
		w := doJSON(t, r, http.MethodPost, "/contact", gin.H{
			"name": "Alice", "email": "alice@example.com", "message": msg,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/admin/contacts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []serializers.ContactResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "Alice", listed[0].Name)
}
