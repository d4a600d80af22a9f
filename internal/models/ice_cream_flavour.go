package models

import (
	"time"

	"gorm.io/gorm"
)

// IceCreamFlavour 冰淇淋口味表
type IceCreamFlavour struct {
	ID        uint           `gorm:"primarykey" json:"id"`                     // 主键
	Name      string         `gorm:"uniqueIndex;not null" json:"name"`         // 名称
	Price     Money          `gorm:"type:decimal(20,2);not null" json:"price"` // 单球价格
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                  // 创建时间
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`                  // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                           // 软删除时间
}

// TableName 指定表名
func (IceCreamFlavour) TableName() string {
	return "ice_cream_flavours"
}
