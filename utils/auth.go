package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/openprocure/portal-go/types"
)

var ErrNoClaims = errors.New("no token claims in context")

func GetClaimsFromContext(c *gin.Context) (*types.Claims, error) {
	value, exists := c.Get("claims")
	if !exists {
		return nil, ErrNoClaims
	}
	claims, ok := value.(*types.Claims)
	if !ok {
		return nil, ErrNoClaims
	}
	return claims, nil
}

func GetUserIDFromContext(c *gin.Context) (uint, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}
