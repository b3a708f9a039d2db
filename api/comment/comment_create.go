package comment

import (
	"errors"

	"blueblog/global"
	"blueblog/models"
	"blueblog/models/res"
	"blueblog/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type CommentCreateRequest struct {
	ArticleID uint   `json:"articleId" validate:"required,gt=0"`
	Content   string `json:"content" validate:"required,min=1,max=1000"`
}

func (cm *Comment) CommentCreate(c *gin.Context) {
	claims, ok := utils.GetClaims(c)
	if !ok {
		res.Error(c, res.Unauthorized)
		return
	}

	var req CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		res.ErrorWithMsg(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := utils.Validate(req); err != nil {
		res.ErrorWithMsg(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	comment := models.CommentModel{
		Content:   req.Content,
		ArticleID: req.ArticleID,
		UserID:    claims.UserID,
	}
	if err := models.CommentCreate(&comment); err != nil {
		switch {
		case errors.Is(err, models.ErrArticleNotFound):
			res.Error(c, res.ArticleNotFound)
		case errors.Is(err, models.ErrEmptyContent), errors.Is(err, models.ErrContentTooLong):
			res.ErrorWithMsg(c, res.InvalidParameter, err.Error())
		default:
			global.Log.Error("models.CommentCreate() failed", zap.String("error", err.Error()))
			res.ErrorWithMsg(c, res.ServerError, "发表评论失败")
		}
		return
	}

	res.Created(c, comment, "评论成功")
}
