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

type UpdateBioRequest struct {
	Bio string `json:"bio"`
}

func (u *User) UserUpdateBio(c *gin.Context) {
	claims, ok := utils.GetClaims(c)
	if !ok {
		res.Error(c, res.Unauthorized)
		return
	}

	var req UpdateBioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		res.ErrorWithMsg(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	bio := strings.TrimSpace(req.Bio)
	if utf8.RuneCountInString(bio) > 200 {
		res.ErrorWithMsg(c, res.InvalidParameter, "个人简介不能超过200个字符")
		return
	}

	var user models.UserModel
	if err := user.FindByID(claims.UserID); err != nil {
		res.Error(c, res.UserNotFound)
		return
	}

	if err := user.UpdateBio(bio); err != nil {
		global.Log.Error("user.UpdateBio() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "更新个人简介失败")
		return
	}

	res.SuccessWithMsg(c, user, "个人简介更新成功")
}
