package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openprocure/portal-go/models"
	"github.com/openprocure/portal-go/repositories"
	"github.com/openprocure/portal-go/response"
	"github.com/openprocure/portal-go/types"
)

type Auth struct {
	repos *repositories.Repos
}

func NewAuth(repos *repositories.Repos) *Auth {
	return &Auth{repos: repos}
}

func (a *Auth) claims(c *gin.Context) (*types.Claims, bool) {
	claims, ok := c.MustGet("claims").(*types.Claims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Invalid token claims"})
		return nil, false
	}

	user, err := a.repos.User.GetUserByID(claims.UserID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Account not found"})
		return nil, false
	}
	if !user.IsActive {
		c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Message: "Account is deactivated"})
		return nil, false
	}

	return claims, true
}

// Role restricts the route to the listed roles.
func (a *Auth) Role(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := a.claims(c)
		if !ok {
			return
		}

		for _, role := range roles {
			if claims.Role == string(role) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Message: "Forbidden"})
	}
}

func (a *Auth) Admin() gin.HandlerFunc {
	return a.Role(models.UserRoleAdmin)
}

func (a *Auth) Supplier() gin.HandlerFunc {
	return a.Role(models.UserRoleSupplier)
}

func (a *Auth) ProcuringEntity() gin.HandlerFunc {
	return a.Role(models.UserRoleProcuringEntity)
}
