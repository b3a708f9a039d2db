package router

import (
	"blueblog/api"
)

func (router RouterGroup) CategoryRouter() {
	categoryApi := api.AppGroupApp.CategoryApi
	categoryRouter := router.Group("categories")
	categoryRouter.POST("", categoryApi.CategoryCreate)
	categoryRouter.GET("list", categoryApi.CategoryList)
}
