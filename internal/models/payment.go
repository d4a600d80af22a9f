package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment 支付记录
// 说明：下单即记账，一个订单恰好对应一条支付记录。
type Payment struct {
	ID            uint           `gorm:"primarykey" json:"id"`                      // 主键
	OrderID       uint           `gorm:"uniqueIndex;not null" json:"order_id"`      // 订单ID
	UserID        uint           `gorm:"index;not null" json:"user_id"`             // 用户ID
	PaymentMethod string         `gorm:"not null" json:"payment_method"`            // 支付方式（CREDIT_CARD/DEBIT_CARD）
	Amount        Money          `gorm:"type:decimal(20,2);not null" json:"amount"` // 支付金额（服务端计算）
	Currency      string         `gorm:"not null" json:"currency"`                  // 币种
	Address       string         `gorm:"type:text" json:"address,omitempty"`        // 配送地址（DELIVERY 必填）
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                   // 创建时间
	UpdatedAt     time.Time      `gorm:"index" json:"updated_at"`                   // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                            // 软删除时间
}

// TableName 指定表名
func (Payment) TableName() string {
	return "payments"
}
