package worker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/creamery-next/internal/constants"
	"github.com/creamery-next/internal/logger"
	"github.com/creamery-next/internal/provider"
	"github.com/creamery-next/internal/queue"
	"github.com/creamery-next/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderStatusNotify, c.handleOrderStatusNotify)
	mux.HandleFunc(queue.TaskOrderPickupReminder, c.handleOrderPickupReminder)
}

func (c *Consumer) handleOrderStatusNotify(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_status_notify_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderStatusNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_notify_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_status_notify_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_status_notify_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_status_notify_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	user, err := c.UserRepo.GetByID(order.UserID)
	if err != nil {
		logger.Warnw("worker_order_status_notify_fetch_user_failed", "order_id", order.ID, "user_id", order.UserID, "error", err)
		return err
	}
	if user == nil || strings.TrimSpace(user.Email) == "" {
		logger.Debugw("worker_order_status_notify_skip_empty_receiver", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = order.Status
	}
	input := service.OrderStatusEmailInput{
		OrderNo:  order.OrderNo,
		Status:   status,
		Amount:   order.TotalAmount,
		Currency: order.Currency,
	}
	if err := c.EmailService.SendOrderStatusEmail(user.Email, input, ""); err != nil {
		if errors.Is(err, service.ErrEmailServiceDisabled) || errors.Is(err, service.ErrEmailServiceNotConfigured) {
			logger.Debugw("worker_order_status_notify_skip_email_disabled", "order_id", order.ID, "order_no", order.OrderNo)
			return nil
		}
		logger.Warnw("worker_order_status_notify_send_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"receiver_email", user.Email,
			"status", status,
			"error", err,
		)
		return err
	}
	return nil
}

func (c *Consumer) handleOrderPickupReminder(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_pickup_reminder_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderPickupReminderPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_pickup_reminder_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_pickup_reminder_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_pickup_reminder_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_pickup_reminder_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	// 已取消或已推进的订单不再提醒
	switch order.Status {
	case constants.OrderStatusOrderPlaced, constants.OrderStatusReady:
	default:
		logger.Debugw("worker_order_pickup_reminder_skip_status", "order_id", order.ID, "status", order.Status)
		return nil
	}
	if order.PickupTime == nil {
		logger.Debugw("worker_order_pickup_reminder_skip_no_pickup_time", "order_id", order.ID)
		return nil
	}
	user, err := c.UserRepo.GetByID(order.UserID)
	if err != nil {
		logger.Warnw("worker_order_pickup_reminder_fetch_user_failed", "order_id", order.ID, "user_id", order.UserID, "error", err)
		return err
	}
	if user == nil || strings.TrimSpace(user.Email) == "" {
		logger.Debugw("worker_order_pickup_reminder_skip_empty_receiver", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	if err := c.EmailService.SendPickupReminderEmail(user.Email, order.OrderNo, *order.PickupTime, ""); err != nil {
		if errors.Is(err, service.ErrEmailServiceDisabled) || errors.Is(err, service.ErrEmailServiceNotConfigured) {
			logger.Debugw("worker_order_pickup_reminder_skip_email_disabled", "order_id", order.ID, "order_no", order.OrderNo)
			return nil
		}
		logger.Warnw("worker_order_pickup_reminder_send_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"receiver_email", user.Email,
			"error", err,
		)
		return err
	}
	return nil
}
