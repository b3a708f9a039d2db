package redis_ser

const Prefix = "blueblog:"

func GetRedisKey(key string) string {
	return Prefix + key
}
