package models

import (
	"errors"
	"fmt"

	"blueblog/global"

	"gorm.io/gorm"
)

var ErrConfigNotFound = errors.New("配置不存在")

// SystemConfigModel 系统配置，键值对
type SystemConfigModel struct {
	MODEL       `json:","`
	ConfigKey   string `json:"configKey" gorm:"uniqueIndex:idx_config_key,length:100;size:100" validate:"required,max=100"`
	ConfigValue string `json:"configValue" gorm:"size:1000"`
	Description string `json:"description" gorm:"size:255"`
}

func (SystemConfigModel) TableName() string {
	return "system_config"
}

// ConfigGet 按键读取配置
func ConfigGet(key string) (*SystemConfigModel, error) {
	var conf SystemConfigModel
	err := global.DB.Where("config_key = ?", key).Take(&conf).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("查询配置失败: %w", err)
	}
	return &conf, nil
}

// ConfigSet 写入配置，键已存在时覆盖值
func ConfigSet(key, value, description string) (*SystemConfigModel, error) {
	var conf SystemConfigModel
	err := global.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("config_key = ?", key).Take(&conf).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			conf = SystemConfigModel{ConfigKey: key, ConfigValue: value, Description: description}
			return tx.Create(&conf).Error
		}
		if err != nil {
			return err
		}
		updates := map[string]interface{}{"config_value": value}
		if description != "" {
			updates["description"] = description
		}
		conf.ConfigValue = value
		return tx.Model(&conf).Updates(updates).Error
	})
	if err != nil {
		return nil, fmt.Errorf("写入配置失败: %w", err)
	}
	return &conf, nil
}
