package user

import (
	"errors"

	"blueblog/global"
	"blueblog/models"
	"blueblog/models/res"
	"blueblog/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (u *User) UserProfile(c *gin.Context) {
	claims, ok := utils.GetClaims(c)
	if !ok {
		res.Error(c, res.Unauthorized)
		return
	}

	var user models.UserModel
	if err := user.FindByID(claims.UserID); err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			res.Error(c, res.UserNotFound)
			return
		}
		global.Log.Error("user.FindByID() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "获取用户信息失败")
		return
	}

	res.Success(c, user)
}
