package article

import (
	"errors"
	"strconv"

	"blueblog/global"
	"blueblog/models"
	"blueblog/models/res"
	"blueblog/service/redis_ser"
	"blueblog/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ArticleDetail 公开详情，只返回已发布的文章，并异步记一次浏览
func (a *Article) ArticleDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		res.ErrorWithMsg(c, res.InvalidParameter, "无效的文章ID")
		return
	}

	var article models.ArticleModel
	if err := article.GetPublished(uint(id)); err != nil {
		if errors.Is(err, models.ErrArticleNotFound) {
			res.Error(c, res.ArticleNotFound)
			return
		}
		global.Log.Error("article.GetPublished() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "获取文章失败")
		return
	}

	// 浏览计数失败不影响详情返回
	if err := redis_ser.IncrArticleViewCount(uint(id), c.ClientIP()); err != nil {
		global.Log.Warn("记录浏览量失败", zap.Uint("article_id", uint(id)), zap.String("error", err.Error()))
	}

	res.Success(c, article)
}

// ArticleAuthorDetail 作者视角详情，草稿也可见
func (a *Article) ArticleAuthorDetail(c *gin.Context) {
	claims, ok := utils.GetClaims(c)
	if !ok {
		res.Error(c, res.Unauthorized)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		res.ErrorWithMsg(c, res.InvalidParameter, "无效的文章ID")
		return
	}

	var article models.ArticleModel
	if err := article.GetByAuthor(uint(id), claims.UserID); err != nil {
		if errors.Is(err, models.ErrArticleNotFound) {
			res.Error(c, res.ArticleNotFound)
			return
		}
		global.Log.Error("article.GetByAuthor() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "获取文章失败")
		return
	}

	res.Success(c, article)
}
