package article

import (
	"strconv"

	"blueblog/global"
	"blueblog/models"
	"blueblog/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ArticleByTag 按标签筛选已发布文章
func (a *Article) ArticleByTag(c *gin.Context) {
	page := bindPage(c)
	list, total, err := models.ListByTag("", c.Param("tag"), page)
	if err != nil {
		global.Log.Error("models.ListByTag() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "查询文章失败")
		return
	}
	res.SuccessWithPage(c, list, total, page.Page, page.Size)
}

// ArticleByCategoryTag 按分类加标签筛选已发布文章
func (a *Article) ArticleByCategoryTag(c *gin.Context) {
	page := bindPage(c)
	list, total, err := models.ListByTag(c.Param("category"), c.Param("tag"), page)
	if err != nil {
		global.Log.Error("models.ListByTag() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "查询文章失败")
		return
	}
	res.SuccessWithPage(c, list, total, page.Page, page.Size)
}

// ArticleTags 全部已发布文章的标签
func (a *Article) ArticleTags(c *gin.Context) {
	tags, err := models.CollectTags("", 0)
	if err != nil {
		global.Log.Error("models.CollectTags() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "查询标签失败")
		return
	}
	res.Success(c, tags)
}

// ArticleTagsByCategory 某个分类下的标签
func (a *Article) ArticleTagsByCategory(c *gin.Context) {
	tags, err := models.CollectTags(c.Param("category"), 0)
	if err != nil {
		global.Log.Error("models.CollectTags() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "查询标签失败")
		return
	}
	res.Success(c, tags)
}

// ArticleTagsByAuthor 某个作者已发布文章的标签
func (a *Article) ArticleTagsByAuthor(c *gin.Context) {
	authorID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		res.ErrorWithMsg(c, res.InvalidParameter, "无效的用户ID")
		return
	}

	tags, err := models.CollectTags("", uint(authorID))
	if err != nil {
		global.Log.Error("models.CollectTags() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "查询标签失败")
		return
	}
	res.Success(c, tags)
}

// ArticleCategories 已发布文章的全部分类
func (a *Article) ArticleCategories(c *gin.Context) {
	categories, err := models.CollectCategories()
	if err != nil {
		global.Log.Error("models.CollectCategories() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "查询分类失败")
		return
	}
	res.Success(c, categories)
}

// ArticleCountByTag 标签命中的文章数
func (a *Article) ArticleCountByTag(c *gin.Context) {
	count, err := models.CountByTag("", c.Param("tag"))
	if err != nil {
		global.Log.Error("models.CountByTag() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "统计文章失败")
		return
	}
	res.Success(c, gin.H{"count": count})
}

// ArticleCountByCategoryTag 分类加标签命中的文章数
func (a *Article) ArticleCountByCategoryTag(c *gin.Context) {
	count, err := models.CountByTag(c.Param("category"), c.Param("tag"))
	if err != nil {
		global.Log.Error("models.CountByTag() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "统计文章失败")
		return
	}
	res.Success(c, gin.H{"count": count})
}
