package router

import (
	"blueblog/api"
)

func (router RouterGroup) CommentRouter() {
	commentApi := api.AppGroupApp.CommentApi
	commentRouter := router.Group("comments")
	commentRouter.POST("", commentApi.CommentCreate)
	commentRouter.GET("article/:id", commentApi.CommentList)
	commentRouter.DELETE(":id", commentApi.CommentDelete)
}
