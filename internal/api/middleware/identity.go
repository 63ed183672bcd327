package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/d60-Lab/social-core/internal/identity"
	"github.com/d60-Lab/social-core/pkg/apperr"
	"github.com/d60-Lab/social-core/pkg/response"
)

const actorKey = "actor"

// tokenClaims 外部身份系统签发的 token 载荷。
// 本服务只校验签名并透传，不负责签发。
type tokenClaims struct {
	Roles  []string `json:"roles"`
	Banned bool     `json:"banned"`
	jwt.RegisteredClaims
}

// Identity 解析 Bearer token 注入 Actor；没带 token 按匿名处理
func Identity(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(actorKey, identity.Anonymous)
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.Next()
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")
		var claims tokenClaims
		token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}
		id, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil || id <= 0 {
			response.Unauthorized(c, "invalid token subject")
			c.Abort()
			return
		}
		roles := make([]identity.Role, len(claims.Roles))
		for i, r := range claims.Roles {
			roles[i] = identity.Role(r)
		}
		c.Set(actorKey, identity.Actor{ID: id, Roles: roles, Banned: claims.Banned})
		c.Next()
	}
}

// RequireAuth 拒绝匿名
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if Actor(c).IsAnonymous() {
			response.Unauthorized(c, "login required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole 角色门槛（目前只有 admin 用到）
func RequireRole(role identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Actor(c).HasRole(role) {
			response.Error(c, apperr.Forbidden("admin role required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// Actor 从请求上下文取出发起者
func Actor(c *gin.Context) identity.Actor {
	if v, ok := c.Get(actorKey); ok {
		if a, ok := v.(identity.Actor); ok {
			return a
		}
	}
	return identity.Anonymous
}
