package router

import (
	"net/http"

	"blueblog/core"
	"blueblog/global"
	"blueblog/middleware"
	"blueblog/utils"

	"github.com/gin-gonic/gin"
)

type RouterGroup struct {
	*gin.RouterGroup
}

func InitRouter() *gin.Engine {
	// 设置gin模式
	gin.SetMode(global.Config.System.Env)
	router := gin.New()
	router.Use(core.GinMiddleware(), core.GinRecovery(), utils.Cors())
	// 上传目录直接静态暴露，头像通过 /uploads/avatars/xxx 访问
	router.StaticFS("uploads", http.Dir(global.Config.Upload.Path))
	// 创建路由组，认证统一挂在组上，公开路径由中间件内部放行
	apiRouterGroup := router.Group("api")
	apiRouterGroup.Use(middleware.JwtAuth(&global.Config.Jwt))
	routerGroupApp := RouterGroup{apiRouterGroup}
	routerGroupApp.SystemRouter()
	routerGroupApp.UserRouter()
	routerGroupApp.ArticleRouter()
	routerGroupApp.CommentRouter()
	routerGroupApp.CategoryRouter()
	return router
}
