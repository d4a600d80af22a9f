package worker

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/creamery-next/internal/constants"
	"github.com/creamery-next/internal/models"
	"github.com/creamery-next/internal/provider"
	"github.com/creamery-next/internal/queue"
	"github.com/creamery-next/internal/repository"

	"github.com/hibiken/asynq"
)

func newTestConsumer(t *testing.T) *Consumer {
	t.Helper()
	// 纯 Go sqlite 驱动下每个连接各有一份匿名内存库，必须用命名共享缓存
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	// 保持至少一个常驻连接，否则内存库会在空闲时被释放
	if err := models.InitDB("sqlite", dsn, models.DBPoolConfig{MaxOpenConns: 1, MaxIdleConns: 1}); err != nil {
		t.Fatalf("init db: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	c := &provider.Container{
		OrderRepo: repository.NewOrderRepository(models.DB),
		UserRepo:  repository.NewUserRepository(models.DB),
	}
	return NewConsumer(c)
}

func TestRegisterNilSafe(t *testing.T) {
	var c *Consumer
	c.Register(nil)
	c.Register(asynq.NewServeMux())
}

func TestHandleOrderStatusNotifyInvalidPayload(t *testing.T) {
	consumer := newTestConsumer(t)

	task := asynq.NewTask(queue.TaskOrderStatusNotify, []byte("{not json"))
	if err := consumer.handleOrderStatusNotify(context.Background(), task); err == nil {
		t.Fatalf("expected unmarshal error for malformed payload")
	}
}

func TestHandleOrderStatusNotifySkipsZeroOrderID(t *testing.T) {
	consumer := newTestConsumer(t)

	task, err := queue.NewOrderStatusNotifyTask(queue.OrderStatusNotifyPayload{OrderID: 0})
	if err != nil {
		t.Fatalf("build task: %v", err)
	}
	if err := consumer.handleOrderStatusNotify(context.Background(), task); err != nil {
		t.Fatalf("expected nil for zero order id, got %v", err)
	}
}

func TestHandleOrderStatusNotifySkipsMissingOrder(t *testing.T) {
	consumer := newTestConsumer(t)

	task, err := queue.NewOrderStatusNotifyTask(queue.OrderStatusNotifyPayload{OrderID: 999})
	if err != nil {
		t.Fatalf("build task: %v", err)
	}
	if err := consumer.handleOrderStatusNotify(context.Background(), task); err != nil {
		t.Fatalf("expected nil for missing order, got %v", err)
	}
}

func TestHandleOrderPickupReminderSkipsTerminalStatus(t *testing.T) {
	consumer := newTestConsumer(t)

	order := models.Order{
		OrderNo: "ORD-TEST-1",
		UserID:  1,
		Type:    constants.OrderTypePickup,
		Status:  constants.OrderStatusCancelled,
	}
	if err := models.DB.Create(&order).Error; err != nil {
		t.Fatalf("create order: %v", err)
	}

	task, err := queue.NewOrderPickupReminderTask(queue.OrderPickupReminderPayload{OrderID: order.ID})
	if err != nil {
		t.Fatalf("build task: %v", err)
	}
	if err := consumer.handleOrderPickupReminder(context.Background(), task); err != nil {
		t.Fatalf("expected nil for cancelled order, got %v", err)
	}
}

func TestHandleOrderPickupReminderSkipsMissingPickupTime(t *testing.T) {
	consumer := newTestConsumer(t)

	order := models.Order{
		OrderNo: "ORD-TEST-2",
		UserID:  1,
		Type:    constants.OrderTypePickup,
		Status:  constants.OrderStatusOrderPlaced,
	}
	if err := models.DB.Create(&order).Error; err != nil {
		t.Fatalf("create order: %v", err)
	}

	task, err := queue.NewOrderPickupReminderTask(queue.OrderPickupReminderPayload{OrderID: order.ID})
	if err != nil {
		t.Fatalf("build task: %v", err)
	}
	if err := consumer.handleOrderPickupReminder(context.Background(), task); err != nil {
		t.Fatalf("expected nil when pickup time missing, got %v", err)
	}
}
