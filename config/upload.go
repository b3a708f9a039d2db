package config

type Upload struct {
	Path string `mapstructure:"path"` // 上传根目录
	Size int    `mapstructure:"size"` // 单文件大小限制（MB）
}
