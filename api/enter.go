package api

import (
	"blueblog/api/article"
	"blueblog/api/category"
	"blueblog/api/comment"
	"blueblog/api/system"
	"blueblog/api/user"
)

type AppGroup struct {
	SystemApi   system.System
	UserApi     user.User
	ArticleApi  article.Article
	CommentApi  comment.Comment
	CategoryApi category.Category
}

var AppGroupApp = new(AppGroup)
