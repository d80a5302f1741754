package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	dbpkg "formforge/db"
	"formforge/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.AutoMigrate(&models.User{}).Error)

	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(db))
	r.POST("/api/auth/register", Register)
	r.POST("/api/auth/login", Login)
	return r, db
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterPersistsProfileFields(t *testing.T) {
	r, db := setupAuthRouter(t)

	w := postJSON(t, r, "/api/auth/register", gin.H{
		"email":        "Ada@Example.com",
		"password":     "longpassword",
		"name":         "Ada",
		"organization": "Acme",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.Equal(t, "Acme", resp.User.Organization)

	var stored models.User
	require.NoError(t, db.Where("email = ?", "ada@example.com").First(&stored).Error)
	assert.Equal(t, "Acme", stored.Organization)
	assert.NotEqual(t, "longpassword", stored.Password, "passwords are stored hashed")
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	r, _ := setupAuthRouter(t)

	w := postJSON(t, r, "/api/auth/register", gin.H{
		"email":    "a@b.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	r, _ := setupAuthRouter(t)

	payload := gin.H{"email": "a@b.com", "password": "longpassword"}
	require.Equal(t, http.StatusCreated, postJSON(t, r, "/api/auth/register", payload).Code)
	assert.Equal(t, http.StatusBadRequest, postJSON(t, r, "/api/auth/register", payload).Code)
}

func TestLoginRoundTrip(t *testing.T) {
	r, _ := setupAuthRouter(t)

	require.Equal(t, http.StatusCreated, postJSON(t, r, "/api/auth/register", gin.H{
		"email":    "a@b.com",
		"password": "longpassword",
	}).Code)

	w := postJSON(t, r, "/api/auth/login", gin.H{
		"email":    "A@B.com",
		"password": "longpassword",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)

	w = postJSON(t, r, "/api/auth/login", gin.H{
		"email":    "a@b.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
