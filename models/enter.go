package models

import (
	"blueblog/models/ctypes"
)

// PageInfo 分页请求参数，页码从0开始
type PageInfo struct {
	Page int `json:"page" form:"page" validate:"gte=0"`
	Size int `json:"size" form:"size" validate:"gte=0"`
}

// Normalize 处理缺省值与上限
func (p *PageInfo) Normalize() {
	if p.Size <= 0 {
		p.Size = 10
	}
	if p.Size > 100 {
		p.Size = 100
	}
	if p.Page < 0 {
		p.Page = 0
	}
}

// Offset 转换为SQL偏移量
func (p PageInfo) Offset() int {
	return p.Page * p.Size
}

// MODEL 公共字段，删除为物理删除，不使用软删除
type MODEL struct {
	ID        uint          `gorm:"primaryKey;comment:id" json:"id" structs:"-"`
	CreatedAt ctypes.MyTime `gorm:"type:datetime NOT NULL DEFAULT CURRENT_TIMESTAMP;comment:创建时间" json:"createdAt" structs:"-"`
	UpdatedAt ctypes.MyTime `gorm:"type:datetime NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP;comment:更新时间" json:"updatedAt" structs:"-"`
}

type IDRequest struct {
	ID uint `json:"id" uri:"id" form:"id" validate:"required,gt=0"`
}
