package comment

import (
	"strconv"

	"blueblog/global"
	"blueblog/models"
	"blueblog/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CommentList 文章评论列表，最新在前
func (cm *Comment) CommentList(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		res.ErrorWithMsg(c, res.InvalidParameter, "无效的文章ID")
		return
	}

	comments, err := models.CommentsByArticle(uint(articleID))
	if err != nil {
		global.Log.Error("models.CommentsByArticle() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "获取评论失败")
		return
	}

	res.Success(c, comments)
}
