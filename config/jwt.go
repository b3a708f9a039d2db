package config

type Jwt struct {
	Enabled bool   `mapstructure:"enabled"` // 关闭后所有请求使用调试身份，仅用于本地联调
	Secret  string `mapstructure:"secret"`
	Expires int    `mapstructure:"expires"` // token有效期，单位小时
	Issuer  string `mapstructure:"issuer"`
}
