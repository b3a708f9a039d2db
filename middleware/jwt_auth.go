package middleware

import (
	"errors"
	"strings"

	"blueblog/config"
	"blueblog/global"
	"blueblog/models/res"
	"blueblog/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// publicRoute 无需认证即可访问的路由规则
type publicRoute struct {
	method string // 为空表示任意方法
	prefix string
	exact  bool
}

var publicRoutes = []publicRoute{
	{method: "POST", prefix: "/api/users/register", exact: true},
	{method: "POST", prefix: "/api/users/login", exact: true},
	{method: "GET", prefix: "/api/users/check-username/"},
	{method: "GET", prefix: "/api/users/check-email/"},
	{method: "GET", prefix: "/api/system/captcha", exact: true},
	{method: "GET", prefix: "/api/system/config/"},
	{method: "GET", prefix: "/api/categories/list", exact: true},
	{method: "GET", prefix: "/api/comments/article/"},
	{prefix: "/api/public/"},
	{prefix: "/uploads/"},
	{prefix: "/error"},
}

// isPublic 判断请求是否走公开通道。
// /api/articles 下的GET全部公开，作者专属的 my-articles 除外；点赞是公开的POST。
func isPublic(method, path string) bool {
	for _, r := range publicRoutes {
		if r.method != "" && r.method != method {
			continue
		}
		if r.exact {
			if path == r.prefix {
				return true
			}
			continue
		}
		if strings.HasPrefix(path, r.prefix) {
			return true
		}
	}

	if strings.HasPrefix(path, "/api/articles") {
		if method == "GET" {
			// 作者专属视图仍需认证
			if strings.HasPrefix(path, "/api/articles/my-articles") {
				return false
			}
			return !strings.HasSuffix(path, "/author")
		}
		if method == "POST" && strings.HasSuffix(path, "/like") {
			return true
		}
	}

	return false
}

// JwtAuth 认证中间件，验证token并将身份信息写入上下文
func JwtAuth(conf *config.Jwt) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 认证关闭时注入调试身份，方便本地联调
		if conf != nil && !conf.Enabled {
			c.Set("claims", &utils.CustomClaims{Username: "testUser", UserID: 1})
			c.Next()
			return
		}

		// 预检请求直接放行
		if c.Request.Method == "OPTIONS" {
			c.Next()
			return
		}

		if isPublic(c.Request.Method, c.Request.URL.Path) {
			c.Next()
			return
		}

		tokenString := extractToken(c)
		if tokenString == "" {
			res.ErrorWithMsg(c, res.TokenMissing, "未提供访问令牌")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			if errors.Is(err, utils.ErrTokenExpired) {
				res.ErrorWithMsg(c, res.TokenExpired, "登录已过期，请重新登录")
			} else {
				global.Log.Warn("token验证失败",
					zap.String("path", c.Request.URL.Path),
					zap.String("error", err.Error()),
				)
				res.ErrorWithMsg(c, res.TokenInvalid, "令牌验证异常: "+err.Error())
			}
			c.Abort()
			return
		}

		// 将用户信息保存到上下文中，方便后续使用
		c.Set("claims", claims)

		c.Next()
	}
}

// extractToken 优先取Authorization头的Bearer令牌，其次取token查询参数
func extractToken(c *gin.Context) string {
	header := c.Request.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return c.Query("token")
}
