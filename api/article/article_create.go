package article

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

type ArticleCreateRequest struct {
	Title          string   `json:"title" validate:"required,min=1,max=200"`
	Content        string   `json:"content" validate:"required"`
	Summary        string   `json:"summary" validate:"omitempty,max=500"`
	CoverImage     string   `json:"coverImage" validate:"omitempty,max=255"`
	Category       string   `json:"category" validate:"omitempty,max=50"`
	Tags           []string `json:"tags" validate:"omitempty,max=20,dive,min=1,max=50"`
	Status         *int     `json:"status" validate:"omitempty,oneof=0 1"`
	IsTop          bool     `json:"isTop"`
	IsRecommended  bool     `json:"isRecommended"`
	AccessPassword string   `json:"accessPassword" validate:"omitempty,max=50"`
}

func (a *Article) ArticleCreate(c *gin.Context) {
	claims, ok := utils.GetClaims(c)
	if !ok {
		res.Error(c, res.Unauthorized)
		return
	}

	var req ArticleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		global.Log.Error("c.ShouldBindJSON() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := utils.Validate(req); err != nil {
		global.Log.Error("utils.Validate() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	status := models.ArticlePublished
	if req.Status != nil {
		status = *req.Status
	}

	article := models.ArticleModel{
		Title:          req.Title,
		Content:        req.Content,
		Summary:        req.Summary,
		CoverImage:     req.CoverImage,
		Category:       req.Category,
		TagList:        req.Tags,
		Status:         status,
		IsTop:          req.IsTop,
		IsRecommended:  req.IsRecommended,
		AccessPassword: req.AccessPassword,
		AuthorID:       claims.UserID,
	}
	if err := article.Create(); err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			res.Error(c, res.UserNotFound)
			return
		}
		global.Log.Error("article.Create() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "创建文章失败")
		return
	}

	global.Log.Info("创建文章成功", zap.Uint("article_id", article.ID), zap.Uint("author_id", claims.UserID))
	res.Created(c, article, "文章创建成功")
}
