package user

import (
	"errors"

	"blueblog/api/system"
	"blueblog/global"
	"blueblog/models"
	"blueblog/models/res"
	"blueblog/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type UserLoginRequest struct {
	Username  string `json:"username" validate:"required,min=1,max=50"`
	Password  string `json:"password" validate:"required,min=6,max=50"`
	Captcha   string `json:"captcha"`
	CaptchaId string `json:"captchaId"`
}

type UserLoginResponse struct {
	User  models.UserModel `json:"user"`
	Token string           `json:"token"`
}

func (u *User) UserLogin(c *gin.Context) {
	var req UserLoginRequest
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

	if global.Config.Captcha.Open {
		if req.Captcha == "" || req.CaptchaId == "" || !system.Store.Verify(req.CaptchaId, req.Captcha, true) {
			res.ErrorWithMsg(c, res.InvalidParameter, "验证码错误")
			return
		}
	}

	var user models.UserModel
	if err := user.Login(req.Username, req.Password, c.ClientIP()); err != nil {
		switch {
		case errors.Is(err, models.ErrBadCredentials):
			res.ErrorWithMsg(c, res.PasswordError, "用户名或密码错误")
		case errors.Is(err, models.ErrAccountDisabled):
			res.ErrorWithMsg(c, res.AccountDisabled, "账号已被禁用")
		default:
			global.Log.Error("user.Login() failed", zap.String("error", err.Error()))
			res.ErrorWithMsg(c, res.ServerError, "登录失败")
		}
		return
	}

	token, err := utils.GenerateToken(user.Username, user.ID)
	if err != nil {
		global.Log.Error("utils.GenerateToken() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "生成token失败")
		return
	}

	global.Log.Info("用户登录成功", zap.String("username", user.Username), zap.Uint("user_id", user.ID))
	res.SuccessWithMsg(c, UserLoginResponse{User: user, Token: token}, "登录成功")
}
