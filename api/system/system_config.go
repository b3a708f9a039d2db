package system

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

type ConfigSetRequest struct {
	Key         string `json:"key" validate:"required,max=100"`
	Value       string `json:"value" validate:"required,max=1000"`
	Description string `json:"description" validate:"omitempty,max=255"`
}

// ConfigGet 读取系统配置
func (s *System) ConfigGet(c *gin.Context) {
	conf, err := models.ConfigGet(c.Param("key"))
	if err != nil {
		if errors.Is(err, models.ErrConfigNotFound) {
			res.ErrorWithMsg(c, res.NotFound, "配置不存在")
			return
		}
		global.Log.Error("models.ConfigGet() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "获取配置失败")
		return
	}
	res.Success(c, conf)
}

// ConfigSet 写入系统配置
func (s *System) ConfigSet(c *gin.Context) {
	if _, ok := utils.GetClaims(c); !ok {
		res.Error(c, res.Unauthorized)
		return
	}

	var req ConfigSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		res.ErrorWithMsg(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := utils.Validate(req); err != nil {
		res.ErrorWithMsg(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	conf, err := models.ConfigSet(req.Key, req.Value, req.Description)
	if err != nil {
		global.Log.Error("models.ConfigSet() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "保存配置失败")
		return
	}
	res.SuccessWithMsg(c, conf, "配置保存成功")
}
