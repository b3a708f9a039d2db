package cron_ser

import (
	"blueblog/global"
	"blueblog/models"
	"blueblog/service/redis_ser"

	"github.com/avast/retry-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// flushWorkers 并发落库的上限
const flushWorkers = 8

// FlushViewCounts 把redis中累计的浏览量增量写回MySQL。
// 单篇失败时增量退回redis，下一轮重试。
func FlushViewCounts() {
	deltas, err := redis_ser.PopViewDeltas()
	if err != nil {
		global.Log.Error("获取浏览量增量失败", zap.String("error", err.Error()))
		return
	}
	if len(deltas) == 0 {
		return
	}

	var g errgroup.Group
	g.SetLimit(flushWorkers)

	for articleID, delta := range deltas {
		articleID, delta := articleID, delta
		g.Go(func() error {
			err := retry.Do(
				func() error {
					return models.AddViewCount(articleID, delta)
				},
				retry.Attempts(3),
				retry.LastErrorOnly(true),
			)
			if err != nil {
				global.Log.Error("浏览量落库失败",
					zap.Uint("article_id", articleID),
					zap.Int64("delta", delta),
					zap.String("error", err.Error()),
				)
				if restoreErr := redis_ser.RestoreViewDelta(articleID, delta); restoreErr != nil {
					global.Log.Error("浏览量增量回滚失败",
						zap.Uint("article_id", articleID),
						zap.String("error", restoreErr.Error()),
					)
				}
			}
			return nil
		})
	}
	g.Wait()
}
