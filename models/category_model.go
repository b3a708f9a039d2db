package models

import (
	"errors"
	"fmt"

	"blueblog/global"

	"gorm.io/gorm"
)

var ErrCategoryTaken = errors.New("分类已存在")

// CategoryModel 分类模型
type CategoryModel struct {
	MODEL       `json:","`
	Name        string `json:"name" gorm:"uniqueIndex:idx_category_name,length:50;size:50" validate:"required,max=50"`
	Description string `json:"description" gorm:"size:255" validate:"max=255"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

// Create 创建分类
func (c *CategoryModel) Create() error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&CategoryModel{}).Where("name = ?", c.Name).Count(&count).Error; err != nil {
			return fmt.Errorf("检查分类失败: %w", err)
		}
		if count > 0 {
			return ErrCategoryTaken
		}
		if err := tx.Create(c).Error; err != nil {
			return fmt.Errorf("创建分类失败: %w", err)
		}
		return nil
	})
}

// CategoryList 全部分类
func CategoryList() ([]CategoryModel, error) {
	var list []CategoryModel
	err := global.DB.Order("name").Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("查询分类失败: %w", err)
	}
	return list, nil
}
