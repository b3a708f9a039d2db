package user

import (
	"strconv"

	"blueblog/models"
	"blueblog/models/res"
	"blueblog/utils"

	"github.com/gin-gonic/gin"
)

// UserDetail 查看用户信息，只允许本人查看
func (u *User) UserDetail(c *gin.Context) {
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

	res.Success(c, user)
}
