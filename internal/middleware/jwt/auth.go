package jwt

import (
	"JobTracker/pkg/back"
	"JobTracker/pkg/util/myjwt"
	"JobTracker/pkg/xerr"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextUserID gin 上下文中保存当前用户 id 的 key
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
)

func Auth(m *myjwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			back.Error(c, xerr.Unauthorized, "missing or invalid authorization header")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := m.ParseToken(tokenString)
		if err != nil {
			back.Error(c, xerr.Unauthorized, "invalid token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

// UserID 读取 Auth 写入的用户 id
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
