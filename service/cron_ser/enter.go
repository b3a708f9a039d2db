package cron_ser

import (
	"time"

	"github.com/robfig/cron/v3"
)

// CronInit 注册定时任务
func CronInit() {
	timezone, _ := time.LoadLocation("Asia/Shanghai")
	c := cron.New(cron.WithSeconds(), cron.WithLocation(timezone))
	// 每分钟把redis里的浏览量增量刷进MySQL
	c.AddFunc("0 */1 * * * *", FlushViewCounts)
	c.Start()
}
