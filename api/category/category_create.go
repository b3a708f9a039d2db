package category

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

type CategoryCreateRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=50"`
	Description string `json:"description" validate:"omitempty,max=255"`
}

func (ca *Category) CategoryCreate(c *gin.Context) {
	if _, ok := utils.GetClaims(c); !ok {
		res.Error(c, res.Unauthorized)
		return
	}

	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		res.ErrorWithMsg(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := utils.Validate(req); err != nil {
		res.ErrorWithMsg(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	cat := models.CategoryModel{Name: req.Name, Description: req.Description}
	if err := cat.Create(); err != nil {
		if errors.Is(err, models.ErrCategoryTaken) {
			res.ErrorWithMsg(c, res.BadRequest, "分类已存在")
			return
		}
		global.Log.Error("category.Create() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "创建分类失败")
		return
	}

	res.Created(c, cat, "分类创建成功")
}
