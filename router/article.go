package router

import (
	"blueblog/api"
)

func (router RouterGroup) ArticleRouter() {
	articleApi := api.AppGroupApp.ArticleApi
	articleRouter := router.Group("articles")

	articleRouter.POST("", articleApi.ArticleCreate)
	articleRouter.PUT(":id", articleApi.ArticleUpdate)
	articleRouter.DELETE(":id", articleApi.ArticleDelete)
	articleRouter.GET(":id", articleApi.ArticleDetail)
	articleRouter.GET(":id/author", articleApi.ArticleAuthorDetail)
	articleRouter.POST(":id/like", articleApi.ArticleLike)

	articleRouter.GET("my-articles", articleApi.ArticleMyList)
	articleRouter.GET("search", articleApi.ArticleSearch)
	articleRouter.GET("recommended", articleApi.ArticleRecommended)
	articleRouter.GET("top", articleApi.ArticleTop)
	articleRouter.GET("popular", articleApi.ArticlePopular)

	articleRouter.GET("tag/:tag", articleApi.ArticleByTag)
	articleRouter.GET("category/:category/tag/:tag", articleApi.ArticleByCategoryTag)
	articleRouter.GET("tags", articleApi.ArticleTags)
	articleRouter.GET("tags/category/:category", articleApi.ArticleTagsByCategory)
	articleRouter.GET("tags/author/:id", articleApi.ArticleTagsByAuthor)
	articleRouter.GET("categories", articleApi.ArticleCategories)
	articleRouter.GET("count/tag/:tag", articleApi.ArticleCountByTag)
	articleRouter.GET("count/category/:category/tag/:tag", articleApi.ArticleCountByCategoryTag)

	// 公开浏览入口，无需认证
	publicRouter := router.Group("public/articles")
	publicRouter.GET("", articleApi.ArticlePublicList)
	publicRouter.GET("category/:category", articleApi.ArticlePublicByCategory)
	publicRouter.GET("tags", articleApi.ArticleTags)
}
