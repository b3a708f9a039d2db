package config

type Article struct {
	// 标签匹配模式：false为遗留的子串匹配（标签"a"会命中"java"），true为精确匹配
	ExactTagMatch bool `mapstructure:"exact_tag_match"`
}
