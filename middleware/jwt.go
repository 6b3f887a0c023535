package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/eduquery/eduquery-be/types"
	"github.com/eduquery/eduquery-be/utils"
)

const RequesterContextKey = "requester"

// AuthMiddleware verifies the bearer token and attaches the requester
// identity to the gin context.
func AuthMiddleware(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
			Status:  false,
			Message: "Authorization header is required",
		})
		return
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
			Status:  false,
			Message: "Authorization header format must be Bearer {token}",
		})
		return
	}

	claims, err := utils.ParseUserToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
			Status:  false,
			Message: "Invalid token",
		})
		return
	}

	c.Set(RequesterContextKey, claims.Requester())
	c.Next()
}

// RequesterFromContext pulls the identity stored by AuthMiddleware.
func RequesterFromContext(c *gin.Context) (types.Requester, bool) {
	value, exists := c.Get(RequesterContextKey)
	if !exists {
		return types.Requester{}, false
	}
	requester, ok := value.(types.Requester)
	return requester, ok
}
