package article

import (
	"errors"
	"strconv"

	"blueblog/global"
	"blueblog/models"
	"blueblog/models/res"
	"blueblog/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type ArticleUpdateRequest struct {
	Title         *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Content       *string  `json:"content" validate:"omitempty,min=1"`
	Summary       *string  `json:"summary" validate:"omitempty,max=500"`
	CoverImage    *string  `json:"coverImage" validate:"omitempty,max=255"`
	Category      *string  `json:"category" validate:"omitempty,max=50"`
	Tags          []string `json:"tags" validate:"omitempty,max=20,dive,min=1,max=50"`
	Status        *int     `json:"status" validate:"omitempty,oneof=0 1"`
	IsTop         *bool    `json:"isTop"`
	IsRecommended *bool    `json:"isRecommended"`
}

func (a *Article) ArticleUpdate(c *gin.Context) {
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

	var req ArticleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		global.Log.Error("c.ShouldBindJSON() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := utils.Validate(req); err != nil {
		res.ErrorWithMsg(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Summary != nil {
		updates["summary"] = *req.Summary
	}
	if req.CoverImage != nil {
		updates["cover_image"] = *req.CoverImage
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Tags != nil {
		updates["tags"] = req.Tags
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.IsTop != nil {
		updates["is_top"] = *req.IsTop
	}
	if req.IsRecommended != nil {
		updates["is_recommended"] = *req.IsRecommended
	}
	if len(updates) == 0 {
		res.ErrorWithMsg(c, res.InvalidParameter, "没有需要更新的字段")
		return
	}

	var article models.ArticleModel
	if err := article.Update(uint(id), claims.UserID, updates); err != nil {
		if errors.Is(err, models.ErrArticleNotFound) {
			res.Error(c, res.ArticleNotFound)
			return
		}
		global.Log.Error("article.Update() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "更新文章失败")
		return
	}

	res.SuccessWithMsg(c, article, "文章更新成功")
}
