package flags

import (
	"fmt"
	"os"

	"blueblog/global"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func NewFlags() {
	var app = cli.NewApp()
	app.Name = "blueblog"
	app.Usage = "博客后端服务"
	app.Commands = []*cli.Command{
		{
			Name:    "database",
			Aliases: []string{"db"},
			Usage:   "建表",
			Action:  DB,
		},
		{
			Name:    "user",
			Aliases: []string{"u"},
			Usage:   "创建用户",
			Action:  User,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "username",
					Aliases: []string{"u"},
					Usage:   "用户名",
					Value:   "admin",
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "用户密码",
					Value:   "admin123",
				},
				&cli.StringFlag{
					Name:    "email",
					Aliases: []string{"e"},
					Usage:   "邮箱",
					Value:   "admin@example.com",
				},
				&cli.StringFlag{
					Name:    "role",
					Aliases: []string{"r"},
					Usage:   "用户角色 (ADMIN/USER)",
					Value:   "ADMIN",
				},
			},
		},
		{
			Name:   "version",
			Usage:  "版本信息",
			Action: Version,
		},
	}
	if len(os.Args) > 1 {
		err := app.Run(os.Args)
		if err != nil {
			global.Log.Fatal("执行命令失败", zap.String("error", err.Error()))
		}
		os.Exit(0)
	}
}

func Version(c *cli.Context) error {
	fmt.Println("blueblog v1.0.0")
	return nil
}
