package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotelms/internal/domain"
	"hotelms/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type stubSessionChecker struct {
	sessions map[string]*domain.Session
}

func (s *stubSessionChecker) GetByTokenID(ctx context.Context, tokenID string) (*domain.Session, error) {
	if session, ok := s.sessions[tokenID]; ok {
		return session, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newAuthRouter(jwtService *jwt.Service, sessions SessionChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth(jwtService, sessions))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetInt64("user_id"),
			"role":     c.GetString("role"),
			"token_id": c.GetString("token_id"),
		})
	})
	return router
}

func TestAuth_ValidTokenWithActiveSession(t *testing.T) {
	jwtService := jwt.New("test-secret-123", time.Hour)
	token, jti, err := jwtService.GenerateToken(42, "staff")
	assert.NoError(t, err)

	checker := &stubSessionChecker{sessions: map[string]*domain.Session{
		jti: {TokenID: jti, UserID: 42, ExpiresAt: time.Now().Add(time.Hour)},
	}}
	router := newAuthRouter(jwtService, checker)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
	assert.Contains(t, w.Body.String(), "staff")
	assert.Contains(t, w.Body.String(), jti)
}

func TestAuth_RevokedSessionRejected(t *testing.T) {
	jwtService := jwt.New("test-secret-123", time.Hour)
	token, jti, _ := jwtService.GenerateToken(42, "staff")

	revokedAt := time.Now().Add(-time.Minute)
	checker := &stubSessionChecker{sessions: map[string]*domain.Session{
		jti: {TokenID: jti, UserID: 42, ExpiresAt: time.Now().Add(time.Hour), RevokedAt: &revokedAt},
	}}
	router := newAuthRouter(jwtService, checker)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "NO_ACTIVE_SESSION")
}

func TestAuth_ExpiredSessionRejected(t *testing.T) {
	jwtService := jwt.New("test-secret-123", time.Hour)
	token, jti, _ := jwtService.GenerateToken(42, "staff")

	checker := &stubSessionChecker{sessions: map[string]*domain.Session{
		jti: {TokenID: jti, UserID: 42, ExpiresAt: time.Now().Add(-time.Minute)},
	}}
	router := newAuthRouter(jwtService, checker)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "NO_ACTIVE_SESSION")
}

func TestAuth_UnknownSessionRejected(t *testing.T) {
	jwtService := jwt.New("test-secret-123", time.Hour)
	token, _, _ := jwtService.GenerateToken(42, "staff")

	checker := &stubSessionChecker{sessions: map[string]*domain.Session{}}
	router := newAuthRouter(jwtService, checker)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "NO_ACTIVE_SESSION")
}

func TestAuth_InvalidToken(t *testing.T) {
	jwtService := jwt.New("test-secret-123", time.Hour)
	checker := &stubSessionChecker{sessions: map[string]*domain.Session{}}
	router := newAuthRouter(jwtService, checker)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
}

func TestAuth_MissingHeader(t *testing.T) {
	jwtService := jwt.New("test-secret-123", time.Hour)
	checker := &stubSessionChecker{sessions: map[string]*domain.Session{}}
	router := newAuthRouter(jwtService, checker)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_HEADER_MISSING")
}

func TestAuth_WrongScheme(t *testing.T) {
	jwtService := jwt.New("test-secret-123", time.Hour)
	checker := &stubSessionChecker{sessions: map[string]*domain.Session{}}
	router := newAuthRouter(jwtService, checker)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic dGVzdA==")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_AUTH_FORMAT")
}

func TestRequireRole_BlocksOtherRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set("role", "staff") })
	router.Use(AdminOnly())
	router.GET("/admin", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_AllowsMatchingRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set("role", "admin") })
	router.Use(AdminOnly())
	router.GET("/admin", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
