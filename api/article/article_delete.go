package article

import (
	"errors"
	"strconv"

	"blueblog/global"
	"blueblog/models"
	"blueblog/models/res"
	"blueblog/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *Article) ArticleDelete(c *gin.Context) {
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

	if err := models.ArticleDelete(uint(id), claims.UserID); err != nil {
		if errors.Is(err, models.ErrArticleNotFound) {
			res.Error(c, res.ArticleNotFound)
			return
		}
		global.Log.Error("models.ArticleDelete() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "删除文章失败")
		return
	}

	global.Log.Info("删除文章成功", zap.Uint("article_id", uint(id)), zap.Uint("author_id", claims.UserID))
	res.SuccessWithMsg(c, nil, "文章删除成功")
}
