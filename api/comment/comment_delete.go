package comment

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

func (cm *Comment) CommentDelete(c *gin.Context) {
	claims, ok := utils.GetClaims(c)
	if !ok {
		res.Error(c, res.Unauthorized)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		res.ErrorWithMsg(c, res.InvalidParameter, "无效的评论ID")
		return
	}

	if err := models.CommentDelete(uint(id), claims.UserID); err != nil {
		if errors.Is(err, models.ErrCommentDenied) {
			res.Error(c, res.CommentNotFound)
			return
		}
		global.Log.Error("models.CommentDelete() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "删除评论失败")
		return
	}

	res.SuccessWithMsg(c, nil, "评论删除成功")
}
