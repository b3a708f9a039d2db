package user

import (
	"strings"
	"unicode/utf8"

	"blueblog/global"
	"blueblog/models"
	"blueblog/models/res"
	"blueblog/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UpdateNicknameRequest struct {
	Nickname string `json:"nickname"`
}

func (u *User) UserUpdateNickname(c *gin.Context) {
	claims, ok := utils.GetClaims(c)
	if !ok {
		res.Error(c, res.Unauthorized)
		return
	}

	var req UpdateNicknameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		res.ErrorWithMsg(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	nickname := strings.TrimSpace(req.Nickname)
	length := utf8.RuneCountInString(nickname)
	if length < 2 || length > 20 {
		res.ErrorWithMsg(c, res.InvalidParameter, "昵称长度必须在2-20个字符之间")
		return
	}

	var user models.UserModel
	if err := user.FindByID(claims.UserID); err != nil {
		res.Error(c, res.UserNotFound)
		return
	}

	if user.Nickname == nickname {
		res.ErrorWithMsg(c, res.InvalidParameter, "新昵称不能与当前昵称相同")
		return
	}

	if err := user.UpdateNickname(nickname); err != nil {
		global.Log.Error("user.UpdateNickname() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "更新昵称失败")
		return
	}

	res.SuccessWithMsg(c, user, "昵称更新成功")
}
