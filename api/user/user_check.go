package user

import (
	"blueblog/global"
	"blueblog/models"
	"blueblog/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (u *User) CheckUsername(c *gin.Context) {
	username := c.Param("username")
	exists, err := models.UsernameExists(username)
	if err != nil {
		global.Log.Error("models.UsernameExists() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "检查用户名失败")
		return
	}
	res.Success(c, gin.H{"exists": exists})
}

func (u *User) CheckEmail(c *gin.Context) {
	email := c.Param("email")
	exists, err := models.EmailExists(email)
	if err != nil {
		global.Log.Error("models.EmailExists() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "检查邮箱失败")
		return
	}
	res.Success(c, gin.H{"exists": exists})
}
