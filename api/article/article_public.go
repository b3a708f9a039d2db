package article

import (
	"blueblog/global"
	"blueblog/models"
	"blueblog/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ArticlePublicList 已发布文章列表，支持可选的分类和标签过滤
func (a *Article) ArticlePublicList(c *gin.Context) {
	page := bindPage(c)
	list, total, err := models.PublicList(c.Query("category"), c.Query("tag"), page)
	if err != nil {
		global.Log.Error("models.PublicList() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "获取文章列表失败")
		return
	}
	res.SuccessWithPage(c, list, total, page.Page, page.Size)
}

// ArticlePublicByCategory 某个分类下的已发布文章列表
func (a *Article) ArticlePublicByCategory(c *gin.Context) {
	page := bindPage(c)
	list, total, err := models.PublicList(c.Param("category"), "", page)
	if err != nil {
		global.Log.Error("models.PublicList() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "获取分类文章失败")
		return
	}
	res.SuccessWithPage(c, list, total, page.Page, page.Size)
}
