package queue

import (
	"encoding/json"

	"github.com/creamery-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderStatusNotify 订单状态通知任务
	TaskOrderStatusNotify = constants.TaskOrderStatusNotify
	// TaskOrderPickupReminder 自取提醒任务
	TaskOrderPickupReminder = constants.TaskOrderPickupReminder
)

// OrderStatusNotifyPayload 订单状态通知任务载荷
type OrderStatusNotifyPayload struct {
	OrderID uint   `json:"order_id"`
	Status  string `json:"status"`
}

// OrderPickupReminderPayload 自取提醒任务载荷
type OrderPickupReminderPayload struct {
	OrderID uint `json:"order_id"`
}

// NewOrderStatusNotifyTask 创建订单状态通知任务
func NewOrderStatusNotifyTask(payload OrderStatusNotifyPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderStatusNotify, body), nil
}

// NewOrderPickupReminderTask 创建自取提醒任务
func NewOrderPickupReminderTask(payload OrderPickupReminderPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderPickupReminder, body), nil
}
