package middleware

import (
	"net/http"
	"strings"

	jwtsvc "starcatalog/internal/pkg/jwt"
	"starcatalog/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Identity resolves the acting user for the request and stores it under
// "user_id" in the gin context. Without a bearer token every request
// runs as defaultUserID; when a token signed with the configured secret
// is presented, the token's user wins. Handlers never look anywhere
// else for identity, so a real auth layer only has to swap this
// middleware.
func Identity(defaultUserID int64, jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := defaultUserID

		h := c.GetHeader("Authorization")
		if h != "" && jwt != nil {
			tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
			claims, err := jwt.ValidateToken(tokenStr)
			if err != nil {
				response.Msg(c, http.StatusUnauthorized, "Invalid token")
				c.Abort()
				return
			}
			userID = claims.UserID
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// CurrentUserID reads the identity set by Identity.
func CurrentUserID(c *gin.Context) int64 {
	return c.GetInt64("user_id")
}
