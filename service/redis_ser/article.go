package redis_ser

import (
	"context"
	"strconv"
	"time"

	"blueblog/global"

	"go.uber.org/zap"
)

const (
	// 待落库的浏览量增量，hash字段为文章ID
	viewDeltaKey = Prefix + "article:view_delta"

	// 同一IP的重复浏览在窗口内只计一次
	viewIPExpire = 10 * time.Minute
)

func viewIPKey(articleID uint, ip string) string {
	return Prefix + "article:view:ip:" + strconv.FormatUint(uint64(articleID), 10) + ":" + ip
}

// IncrArticleViewCount 记录一次浏览。
// SetNX占位成功说明该IP在窗口内首次访问，才累加增量。
func IncrArticleViewCount(articleID uint, ip string) error {
	ctx := context.Background()

	isNewView, err := global.Redis.SetNX(ctx, viewIPKey(articleID, ip), 1, viewIPExpire).Result()
	if err != nil {
		global.Log.Error("检查IP访问记录失败",
			zap.Uint("article_id", articleID),
			zap.String("ip", ip),
			zap.String("error", err.Error()),
		)
		return err
	}
	if !isNewView {
		return nil
	}

	err = global.Redis.HIncrBy(ctx, viewDeltaKey, strconv.FormatUint(uint64(articleID), 10), 1).Err()
	if err != nil {
		global.Log.Error("增加文章浏览数失败",
			zap.Uint("article_id", articleID),
			zap.String("error", err.Error()),
		)
		return err
	}
	return nil
}

// PopViewDeltas 取走当前累计的浏览量增量。
// 读取后按字段删除，落库失败的增量由调用方负责补偿。
func PopViewDeltas() (map[uint]int64, error) {
	ctx := context.Background()

	raw, err := global.Redis.HGetAll(ctx, viewDeltaKey).Result()
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	fields := make([]string, 0, len(raw))
	deltas := make(map[uint]int64, len(raw))
	for field, value := range raw {
		id, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			global.Log.Warn("非法的浏览量字段", zap.String("field", field))
			fields = append(fields, field)
			continue
		}
		delta, err := strconv.ParseInt(value, 10, 64)
		if err != nil || delta == 0 {
			fields = append(fields, field)
			continue
		}
		deltas[uint(id)] = delta
		fields = append(fields, field)
	}

	if err := global.Redis.HDel(ctx, viewDeltaKey, fields...).Err(); err != nil {
		return nil, err
	}
	return deltas, nil
}

// RestoreViewDelta 落库失败时把增量加回redis，等待下一轮
func RestoreViewDelta(articleID uint, delta int64) error {
	return global.Redis.HIncrBy(
		context.Background(),
		viewDeltaKey,
		strconv.FormatUint(uint64(articleID), 10),
		delta,
	).Err()
}
