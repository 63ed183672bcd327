package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/social-core/internal/identity"
)

const testSecret = "test-secret"

func signToken(t *testing.T, sub string, roles []string, banned bool) string {
	t.Helper()
	claims := tokenClaims{
		Roles:  roles,
		Banned: banned,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return tok
}

func identityRouter() (*gin.Engine, *identity.Actor) {
	gin.SetMode(gin.TestMode)
	var seen identity.Actor
	r := gin.New()
	r.Use(Identity(testSecret))
	r.GET("/open", func(c *gin.Context) {
		seen = Actor(c)
		c.Status(http.StatusOK)
	})
	r.GET("/auth", RequireAuth(), func(c *gin.Context) {
		seen = Actor(c)
		c.Status(http.StatusOK)
	})
	r.GET("/admin", RequireAuth(), RequireRole(identity.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func do(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnonymousPassThrough(t *testing.T) {
	r, seen := identityRouter()
	w := do(r, "/open", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, seen.IsAnonymous())
}

func TestValidTokenInjectsActor(t *testing.T) {
	r, seen := identityRouter()
	w := do(r, "/auth", signToken(t, "42", []string{"user"}, false))
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 42, seen.ID)
	require.True(t, seen.HasRole(identity.RoleUser))
	require.False(t, seen.Banned)
}

func TestInvalidTokenRejected(t *testing.T) {
	r, _ := identityRouter()
	w := do(r, "/open", "not-a-token")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWrongSecretRejected(t *testing.T) {
	claims := jwt.RegisteredClaims{Subject: "42", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)
	r, _ := identityRouter()
	w := do(r, "/open", tok)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthBlocksAnonymous(t *testing.T) {
	r, _ := identityRouter()
	w := do(r, "/auth", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	r, _ := identityRouter()

	w := do(r, "/admin", signToken(t, "1", []string{"user"}, false))
	require.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, "/admin", signToken(t, "1", []string{"user", "admin"}, false))
	require.Equal(t, http.StatusOK, w.Code)
}
