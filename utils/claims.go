package utils

import (
	"github.com/gin-gonic/gin"
)

// GetClaims 取出认证中间件写入的身份信息
func GetClaims(c *gin.Context) (*CustomClaims, bool) {
	value, exists := c.Get("claims")
	if !exists {
		return nil, false
	}
	claims, ok := value.(*CustomClaims)
	return claims, ok
}
