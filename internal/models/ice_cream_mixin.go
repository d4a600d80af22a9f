package models

import (
	"time"

	"gorm.io/gorm"
)

// IceCreamMixin 冰淇淋配料表
type IceCreamMixin struct {
	ID        uint           `gorm:"primarykey" json:"id"`                     // 主键
	Name      string         `gorm:"uniqueIndex;not null" json:"name"`         // 名称
	Price     Money          `gorm:"type:decimal(20,2);not null" json:"price"` // 单份价格
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                  // 创建时间
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`                  // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                           // 软删除时间
}

// TableName 指定表名
func (IceCreamMixin) TableName() string {
	return "ice_cream_mixins"
}
