package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"savora.app/api/internal/model"
	"savora.app/api/pkg/token"
)

func newAuthRouter(t *testing.T, codec *token.Codec) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(codec, nil)

	router := gin.New()
	protected := router.Group("/", m.RequireAuth())
	protected.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	protected.GET("/admin", m.RequireRoles(model.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Miswired on purpose: RequireRoles without RequireAuth in front.
	router.GET("/orphan", m.RequireRoles(model.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	codec := token.NewCodec("test-secret", time.Hour)
	router := newAuthRouter(t, codec)

	userID := uuid.New()
	signed, _, err := codec.Issue(userID, string(model.RoleUser))
	require.NoError(t, err)

	t.Run("valid token passes", func(t *testing.T) {
		rec := doRequest(router, "/me", "Bearer "+signed)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), userID.String())
	})

	t.Run("missing header", func(t *testing.T) {
		rec := doRequest(router, "/me", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		rec := doRequest(router, "/me", "Token "+signed)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := doRequest(router, "/me", "Bearer not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expiredCodec := token.NewCodec("test-secret", -time.Minute)
		expired, _, err := expiredCodec.Issue(userID, string(model.RoleUser))
		require.NoError(t, err)

		rec := doRequest(router, "/me", "Bearer "+expired)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		otherCodec := token.NewCodec("other-secret", time.Hour)
		forged, _, err := otherCodec.Issue(userID, string(model.RoleUser))
		require.NoError(t, err)

		rec := doRequest(router, "/me", "Bearer "+forged)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown role claim", func(t *testing.T) {
		bogus, _, err := codec.Issue(userID, "superuser")
		require.NoError(t, err)

		rec := doRequest(router, "/me", "Bearer "+bogus)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRoles(t *testing.T) {
	codec := token.NewCodec("test-secret", time.Hour)
	router := newAuthRouter(t, codec)

	adminToken, _, err := codec.Issue(uuid.New(), string(model.RoleAdmin))
	require.NoError(t, err)
	userToken, _, err := codec.Issue(uuid.New(), string(model.RoleUser))
	require.NoError(t, err)

	t.Run("member role passes", func(t *testing.T) {
		rec := doRequest(router, "/admin", "Bearer "+adminToken)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-member role forbidden", func(t *testing.T) {
		rec := doRequest(router, "/admin", "Bearer "+userToken)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing claims unauthorized", func(t *testing.T) {
		rec := doRequest(router, "/orphan", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
