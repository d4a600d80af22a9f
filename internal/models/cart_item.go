package models

import (
	"time"

	"gorm.io/gorm"
)

// CartItem 购物车项
// 说明：同一配置重复加购会生成多条记录，不做合并。
type CartItem struct {
	ID                uint              `gorm:"primarykey" json:"id"`                    // 主键
	UserID            uint              `gorm:"index;not null" json:"user_id"`           // 用户ID
	TypeSlug          string            `gorm:"index;not null" json:"type_slug"`         // 容器类型标识
	FlavourSelections FlavourSelections `gorm:"type:json" json:"flavour_selections"`     // 口味与球数
	MixinIDs          UintArray         `gorm:"type:json" json:"mixin_ids"`              // 配料ID列表
	CreatedAt         time.Time         `gorm:"index" json:"created_at"`                 // 创建时间
	UpdatedAt         time.Time         `gorm:"index" json:"updated_at"`                 // 更新时间
	DeletedAt         gorm.DeletedAt    `gorm:"index" json:"-"`                          // 软删除时间
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
