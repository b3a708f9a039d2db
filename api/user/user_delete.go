package user

import (
	"strconv"

	"blueblog/global"
	"blueblog/models"
	"blueblog/models/res"
	"blueblog/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserDelete 注销账号，只允许本人操作
func (u *User) UserDelete(c *gin.Context) {
	claims, ok := utils.GetClaims(c)
	if !ok {
		res.Error(c, res.Unauthorized)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		res.ErrorWithMsg(c, res.InvalidParameter, "无效的用户ID")
		return
	}

	if claims.UserID != uint(id) {
		res.Error(c, res.PermissionDenied)
		return
	}

	var user models.UserModel
	if err := user.FindByID(uint(id)); err != nil {
		res.Error(c, res.UserNotFound)
		return
	}

	if err := user.Delete(); err != nil {
		global.Log.Error("user.Delete() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "删除用户失败")
		return
	}

	global.Log.Info("用户注销成功", zap.Uint("user_id", uint(id)))
	res.SuccessWithMsg(c, nil, "账号已注销")
}
