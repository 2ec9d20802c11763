package middleware

import (
	"net/http"
	"strings"

	"Echo_Board/internal/model"
	"Echo_Board/internal/pkg"
	"Echo_Board/internal/repository/mysql"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const ContextUserKey = "current_user"

// AuthMiddleware 校验 bearer token 并按ID回库加载用户，
// 角色以库里为准，不信任 token 内容
func AuthMiddleware(db *gorm.DB) gin.HandlerFunc {
	userRepo := &mysql.UserRepository{DB: db}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "no token provided, authorization denied"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid authorization format"})
			return
		}

		claims, err := pkg.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "token is not valid"})
			return
		}

		// 用户可能在签发后被移除
		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "token is not valid"})
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// AdminMiddleware 必须排在 AuthMiddleware 之后
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "user not authenticated"})
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "access denied, admin privileges required"})
			return
		}
		c.Next()
	}
}

// CurrentUser 取出 AuthMiddleware 放进上下文的用户
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*model.User)
	return user
}
