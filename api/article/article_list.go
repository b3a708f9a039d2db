package article

import (
	"strconv"

	"blueblog/global"
	"blueblog/models"
	"blueblog/models/res"
	"blueblog/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// bindPage 从查询参数取分页信息
func bindPage(c *gin.Context) models.PageInfo {
	var page models.PageInfo
	_ = c.ShouldBindQuery(&page)
	page.Normalize()
	return page
}

// ArticleMyList 当前作者的文章列表，支持状态过滤
func (a *Article) ArticleMyList(c *gin.Context) {
	claims, ok := utils.GetClaims(c)
	if !ok {
		res.Error(c, res.Unauthorized)
		return
	}

	page := bindPage(c)
	var status *int
	if raw := c.Query("status"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || (value != models.ArticleDraft && value != models.ArticlePublished) {
			res.ErrorWithMsg(c, res.InvalidParameter, "无效的文章状态")
			return
		}
		status = &value
	}

	list, total, err := models.ListByAuthor(claims.UserID, status, page)
	if err != nil {
		global.Log.Error("models.ListByAuthor() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "查询文章失败")
		return
	}

	res.SuccessWithPage(c, list, total, page.Page, page.Size)
}

// ArticleSearch 关键词搜索已发布文章
func (a *Article) ArticleSearch(c *gin.Context) {
	page := bindPage(c)
	keyword := c.Query("keyword")

	var status *int
	if raw := c.Query("status"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || (value != models.ArticleDraft && value != models.ArticlePublished) {
			res.ErrorWithMsg(c, res.InvalidParameter, "无效的文章状态")
			return
		}
		status = &value
	}

	list, total, err := models.Search(keyword, status, page)
	if err != nil {
		global.Log.Error("models.Search() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "搜索文章失败")
		return
	}

	res.SuccessWithPage(c, list, total, page.Page, page.Size)
}

// ArticleRecommended 推荐文章列表
func (a *Article) ArticleRecommended(c *gin.Context) {
	page := bindPage(c)
	list, total, err := models.ListRecommended(page)
	if err != nil {
		global.Log.Error("models.ListRecommended() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "查询文章失败")
		return
	}
	res.SuccessWithPage(c, list, total, page.Page, page.Size)
}

// ArticleTop 置顶文章列表
func (a *Article) ArticleTop(c *gin.Context) {
	page := bindPage(c)
	list, total, err := models.ListTop(page)
	if err != nil {
		global.Log.Error("models.ListTop() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "查询文章失败")
		return
	}
	res.SuccessWithPage(c, list, total, page.Page, page.Size)
}

// ArticlePopular 按浏览量排序的文章列表
func (a *Article) ArticlePopular(c *gin.Context) {
	page := bindPage(c)
	list, total, err := models.ListPopular(page)
	if err != nil {
		global.Log.Error("models.ListPopular() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "查询文章失败")
		return
	}
	res.SuccessWithPage(c, list, total, page.Page, page.Size)
}
