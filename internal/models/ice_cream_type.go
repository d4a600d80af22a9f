package models

import (
	"time"

	"gorm.io/gorm"
)

// IceCreamType 冰淇淋容器类型表（杯装/蛋筒等）
type IceCreamType struct {
	ID        uint           `gorm:"primarykey" json:"id"`             // 主键
	Name      string         `gorm:"not null" json:"name"`             // 名称
	Slug      string         `gorm:"uniqueIndex;not null" json:"slug"` // 唯一标识
	Image     string         `gorm:"type:varchar(500)" json:"image"`   // 展示图片
	MaxScoops int            `gorm:"not null;default:1" json:"max_scoops"` // 最大球数
	CreatedAt time.Time      `gorm:"index" json:"created_at"`          // 创建时间
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`          // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                   // 软删除时间
}

// TableName 指定表名
func (IceCreamType) TableName() string {
	return "ice_cream_types"
}
