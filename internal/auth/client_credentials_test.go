package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/platewise/gin-mealplan-api/internal/models"
)

func newTokenRouter(oauthService *OAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/oauth/token", oauthService.HandleToken)
	return router
}

func TestClientCredentialsFlow(t *testing.T) {
	db := setupTestDB(t)

	oauthService := NewOAuthService(db, "test-jwt-secret-key-32-characters")
	require.NotNil(t, oauthService)

	owner := &models.User{Email: "integration@example.com", Password: "hashed", Role: "user"}
	require.NoError(t, db.Create(owner).Error)

	hashedSecret, _ := bcrypt.GenerateFromPassword([]byte("test_secret"), bcrypt.DefaultCost)
	client := &models.OAuthClient{
		ID:     "test_client_id",
		Secret: string(hashedSecret),
		Domain: "http://localhost:8080",
		UserID: owner.ID,
		Scopes: "read,write",
	}
	require.NoError(t, db.Create(client).Error)

	router := newTokenRouter(oauthService)

	tokenReq := "grant_type=client_credentials&client_id=test_client_id&client_secret=test_secret&scope=read"
	req := httptest.NewRequest("POST", "/oauth/token", bytes.NewBufferString(tokenReq))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)

	assert.Contains(t, response, "access_token")
	assert.Equal(t, "Bearer", response["token_type"])

	// Access tokens are JWTs.
	accessToken := response["access_token"].(string)
	assert.Contains(t, accessToken, ".")
}

func TestClientCredentialsInvalidSecret(t *testing.T) {
	db := setupTestDB(t)
	oauthService := NewOAuthService(db, "test-jwt-secret-key-32-characters")
	require.NotNil(t, oauthService)

	hashedSecret, _ := bcrypt.GenerateFromPassword([]byte("correct_secret"), bcrypt.DefaultCost)
	client := &models.OAuthClient{
		ID:     "test_client_id",
		Secret: string(hashedSecret),
		Domain: "http://localhost:8080",
		Scopes: "read,write",
	}
	require.NoError(t, db.Create(client).Error)

	router := newTokenRouter(oauthService)

	tokenReq := "grant_type=client_credentials&client_id=test_client_id&client_secret=wrong_secret&scope=read"
	req := httptest.NewRequest("POST", "/oauth/token", bytes.NewBufferString(tokenReq))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
