package main

import (
	"fmt"

	"blueblog/core"
	"blueblog/flags"
	"blueblog/global"
	"blueblog/router"
	"blueblog/service/cron_ser"
	"blueblog/utils"

	"go.uber.org/zap"
)

func main() {
	// 初始化配置
	core.InitConf()
	// 初始化日志
	global.Log = core.NewLogManager(&global.Config.Log)
	// 初始化数据库
	global.DB = core.InitGorm()
	// 初始化redis
	global.Redis = core.InitRedis()
	// 初始化地址数据库
	global.AddrDB = core.InitAddrDB()
	// 初始化雪花ID节点
	utils.Init(global.Config.System.StartTime, global.Config.System.MachineID)
	// 初始化命令行参数
	flags.NewFlags()
	// 初始化定时任务
	cron_ser.CronInit()
	// 初始化路由
	engine := router.InitRouter()
	// 启动服务
	if err := engine.Run(fmt.Sprintf(":%d", global.Config.System.Port)); err != nil {
		global.Log.Fatal("启动服务失败", zap.String("error", err.Error()))
	}
}
