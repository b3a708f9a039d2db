package user

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

type UserRegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Nickname string `json:"nickname" validate:"omitempty,max=50"`
}

func (u *User) UserRegister(c *gin.Context) {
	var req UserRegisterRequest
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

	user := models.UserModel{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Nickname: req.Nickname,
	}
	if err := user.Register(); err != nil {
		switch {
		case errors.Is(err, models.ErrUsernameTaken):
			res.ErrorWithMsg(c, res.UserAlreadyExists, "用户名已存在")
		case errors.Is(err, models.ErrEmailTaken):
			res.ErrorWithMsg(c, res.UserAlreadyExists, "邮箱已被注册")
		default:
			global.Log.Error("user.Register() failed", zap.String("error", err.Error()))
			res.ErrorWithMsg(c, res.ServerError, "注册失败")
		}
		return
	}

	global.Log.Info("用户注册成功", zap.String("username", user.Username), zap.Uint("user_id", user.ID))
	res.Created(c, user, "注册成功")
}
