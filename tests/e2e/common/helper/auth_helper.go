//go:build e2e

package helper

import (
	"net/http"
	"testing"
	"time"

	"bookline/internal/handler/dto/request"
	"bookline/internal/pkg/config"
	"bookline/internal/pkg/jwt"
	"bookline/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testOwnerPassword = "password123"

// AuthTestHelper drives owner registration and login through the
// public API so suites can obtain real access tokens.
type AuthTestHelper struct {
	cfg config.JWTConfig
}

func NewAuthTestHelper(cfg config.JWTConfig) *AuthTestHelper {
	return &AuthTestHelper{cfg: cfg}
}

func (h *AuthTestHelper) RegisterOwner(t *testing.T, router *gin.Engine, email, name string) uuid.UUID {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/register",
		request.RegisterRequest{Email: email, Password: testOwnerPassword, Name: name}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body struct {
		ID uuid.UUID `json:"id"`
	}
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
	require.NotEqual(t, uuid.Nil, body.ID)

	return body.ID
}

func (h *AuthTestHelper) LoginOwner(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: testOwnerPassword}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "access token cookie not set on login")
	require.NotEmpty(t, accessCookie.Value)

	return accessCookie.Value
}

func (h *AuthTestHelper) RegisterAndLogin(t *testing.T, router *gin.Engine, email, name string) string {
	t.Helper()
	h.RegisterOwner(t, router, email, name)
	return h.LoginOwner(t, router, email)
}

func (h *AuthTestHelper) CreateExpiredToken(t *testing.T, ownerID uuid.UUID) string {
	t.Helper()
	refreshDuration, _ := time.ParseDuration(h.cfg.RefreshTokenDuration)
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond, refreshDuration)
	token, err := service.GenerateAccessToken(ownerID)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
