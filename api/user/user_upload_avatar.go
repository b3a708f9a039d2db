package user

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"blueblog/global"
	"blueblog/models"
	"blueblog/models/res"
	"blueblog/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (u *User) UserUploadAvatar(c *gin.Context) {
	claims, ok := utils.GetClaims(c)
	if !ok {
		res.Error(c, res.Unauthorized)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		res.ErrorWithMsg(c, res.InvalidParameter, "请选择要上传的头像文件")
		return
	}

	if file.Size == 0 {
		res.ErrorWithMsg(c, res.InvalidParameter, "上传文件不能为空")
		return
	}

	maxSize := int64(global.Config.Upload.Size)
	if maxSize <= 0 {
		maxSize = 5
	}
	if file.Size > maxSize<<20 {
		res.ErrorWithMsg(c, res.FileTooLarge, fmt.Sprintf("文件大小不能超过%dMB", maxSize))
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		res.ErrorWithMsg(c, res.InvalidFileType, "只支持图片文件")
		return
	}

	var user models.UserModel
	if err := user.FindByID(claims.UserID); err != nil {
		res.Error(c, res.UserNotFound)
		return
	}

	avatarDir := filepath.Join(global.Config.Upload.Path, "avatars")
	if err := os.MkdirAll(avatarDir, fs.ModePerm); err != nil {
		global.Log.Error("os.MkdirAll() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "创建上传目录失败")
		return
	}

	id, err := utils.GenerateID()
	if err != nil {
		global.Log.Error("utils.GenerateID() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "生成文件名失败")
		return
	}
	filename := fmt.Sprintf("%d%s", id, filepath.Ext(file.Filename))

	if err := c.SaveUploadedFile(file, filepath.Join(avatarDir, filename)); err != nil {
		global.Log.Error("c.SaveUploadedFile() failed", zap.String("error", err.Error()))
		res.Error(c, res.FileUploadFailed)
		return
	}

	avatarURL := "/uploads/avatars/" + filename
	if err := user.UpdateAvatar(avatarURL); err != nil {
		global.Log.Error("user.UpdateAvatar() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "保存头像失败")
		return
	}

	global.Log.Info("头像上传成功", zap.Uint("user_id", user.ID), zap.String("avatar", avatarURL))
	res.SuccessWithMsg(c, gin.H{"avatarUrl": avatarURL}, "头像上传成功")
}
