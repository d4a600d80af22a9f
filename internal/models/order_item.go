package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem 订单项表
// 说明：口味球数不单独落库，仅保留口味ID列表快照。
type OrderItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`                                // 主键
	OrderID   uint           `gorm:"index;not null" json:"order_id"`                      // 订单ID
	Type      string         `gorm:"not null" json:"type"`                                // 容器类型标识快照
	Amount    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"amount"` // 该项金额（服务端计算）
	FlavourIDs UintArray     `gorm:"type:json" json:"flavour_ids"`                        // 口味ID列表快照
	MixinIDs  UintArray      `gorm:"type:json" json:"mixin_ids"`                          // 配料ID列表快照
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                             // 创建时间
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`                             // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                      // 软删除时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
