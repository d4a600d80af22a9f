package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表
type Order struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                      // 主键
	OrderNo     string         `gorm:"uniqueIndex;not null" json:"order_no"`                      // 订单编号
	UserID      uint           `gorm:"index;not null" json:"user_id"`                             // 用户ID
	Type        string         `gorm:"index;not null" json:"type"`                                // 订单类型（PICKUP/DELIVERY）
	Status      string         `gorm:"index;not null" json:"status"`                              // 订单状态
	Currency    string         `gorm:"not null" json:"currency"`                                  // 币种
	TotalAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"` // 实付金额
	PickupTime  *time.Time     `gorm:"index" json:"pickup_time,omitempty"`                        // 自取时间（PICKUP 必填）
	CanceledAt  *time.Time     `gorm:"index" json:"canceled_at"`                                  // 取消时间
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt   time.Time      `gorm:"index" json:"updated_at"`                                   // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间

	Items   []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`   // 订单项
	Payment *Payment    `gorm:"foreignKey:OrderID" json:"payment,omitempty"` // 支付记录（一单一付）
	User    *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`     // 关联用户
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
