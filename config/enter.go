package config

import (
	"fmt"
)

type Config struct {
	Mysql   Mysql   `mapstructure:"mysql"`
	Redis   Redis   `mapstructure:"redis"`
	Log     Log     `mapstructure:"log"`
	System  System  `mapstructure:"system"`
	Jwt     Jwt     `mapstructure:"jwt"`
	Upload  Upload  `mapstructure:"upload"`
	Captcha Captcha `mapstructure:"captcha"`
	Article Article `mapstructure:"article"`
}

func (m Mysql) Dsn() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		m.User, m.Password, m.Host, m.Port, m.DB)
}

func (m Mysql) DSNWithoutDB() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/?charset=utf8mb4&parseTime=True&loc=Local",
		m.User, m.Password, m.Host, m.Port)
}
