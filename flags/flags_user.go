package flags

import (
	"blueblog/global"
	"blueblog/models"
	"blueblog/models/ctypes"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func User(c *cli.Context) error {
	username := c.String("username")
	password := c.String("password")
	email := c.String("email")
	role := ctypes.RoleUser
	if c.String("role") == string(ctypes.RoleAdmin) {
		role = ctypes.RoleAdmin
	}

	user := &models.UserModel{
		Username: username,
		Password: password,
		Email:    email,
		Role:     role,
	}

	if err := user.Register(); err != nil {
		global.Log.Error("用户创建失败", zap.String("error", err.Error()))
		return err
	}

	global.Log.Infof("用户%s创建成功,role:%s", username, string(role))
	return nil
}
