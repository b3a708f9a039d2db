package article

import (
	"errors"
	"strconv"

	"blueblog/global"
	"blueblog/models"
	"blueblog/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ArticleLike 点赞，无需登录
func (a *Article) ArticleLike(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		res.ErrorWithMsg(c, res.InvalidParameter, "无效的文章ID")
		return
	}

	if err := models.Like(uint(id)); err != nil {
		if errors.Is(err, models.ErrArticleNotFound) {
			res.Error(c, res.ArticleNotFound)
			return
		}
		global.Log.Error("models.Like() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "点赞失败")
		return
	}

	res.SuccessWithMsg(c, nil, "点赞成功")
}
