package router

import (
	"blueblog/api"
)

func (router RouterGroup) SystemRouter() {
	systemApi := api.AppGroupApp.SystemApi
	systemRouter := router.Group("system")
	systemRouter.GET("captcha", systemApi.CaptchaCreate)
	systemRouter.GET("config/:key", systemApi.ConfigGet)
	systemRouter.PUT("config", systemApi.ConfigSet)
}
