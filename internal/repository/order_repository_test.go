package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/creamery-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderRepoTest(t *testing.T) *GormOrderRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}, &models.Payment{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewOrderRepository(db)
}

func seedOrder(t *testing.T, repo *GormOrderRepository, orderNo string, userID uint, status string) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderNo:     orderNo,
		UserID:      userID,
		Type:        "PICKUP",
		Status:      status,
		Currency:    "USD",
		TotalAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(3.50)),
	}
	payment := &models.Payment{
		UserID:        userID,
		PaymentMethod: "CREDIT_CARD",
		Amount:        order.TotalAmount,
		Currency:      "USD",
	}
	items := []models.OrderItem{
		{Type: "cup", Amount: order.TotalAmount, FlavourIDs: models.UintArray{1}, MixinIDs: models.UintArray{2}},
	}
	if err := repo.Create(order, payment, items); err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func TestOrderRepositoryCreateLinksPaymentAndItems(t *testing.T) {
	repo := setupOrderRepoTest(t)
	order := seedOrder(t, repo, "IC-1", 1, "ORDER_PLACED")

	loaded, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if loaded == nil {
		t.Fatalf("order not found")
	}
	if loaded.Payment == nil || loaded.Payment.OrderID != order.ID {
		t.Fatalf("payment should be linked to order")
	}
	if len(loaded.Items) != 1 || loaded.Items[0].OrderID != order.ID {
		t.Fatalf("items should be linked to order, got %+v", loaded.Items)
	}
}

func TestOrderRepositoryGetByIDMissingReturnsNil(t *testing.T) {
	repo := setupOrderRepoTest(t)

	loaded, err := repo.GetByID(42)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if loaded != nil {
		t.Fatalf("missing order should return nil, got %+v", loaded)
	}
}

func TestOrderRepositoryGetByIDAndUserScopesOwner(t *testing.T) {
	repo := setupOrderRepoTest(t)
	order := seedOrder(t, repo, "IC-1", 1, "ORDER_PLACED")

	loaded, err := repo.GetByIDAndUser(order.ID, 2)
	if err != nil {
		t.Fatalf("get by id and user failed: %v", err)
	}
	if loaded != nil {
		t.Fatalf("foreign user should not see the order")
	}
}

func TestOrderRepositoryListAdminFilters(t *testing.T) {
	repo := setupOrderRepoTest(t)
	seedOrder(t, repo, "IC-1", 1, "ORDER_PLACED")
	seedOrder(t, repo, "IC-2", 1, "READY")
	seedOrder(t, repo, "IC-3", 2, "ORDER_PLACED")

	orders, total, err := repo.ListAdmin(OrderListFilter{Status: "ORDER_PLACED", Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list admin failed: %v", err)
	}
	if total != 2 || len(orders) != 2 {
		t.Fatalf("want 2 ORDER_PLACED orders, got total=%d len=%d", total, len(orders))
	}

	orders, total, err = repo.ListAdmin(OrderListFilter{UserID: 2, Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list admin by user failed: %v", err)
	}
	if total != 1 || len(orders) != 1 || orders[0].OrderNo != "IC-3" {
		t.Fatalf("user filter mismatch: total=%d orders=%+v", total, orders)
	}
}

func TestOrderRepositoryListByUserPagination(t *testing.T) {
	repo := setupOrderRepoTest(t)
	for i := 1; i <= 5; i++ {
		seedOrder(t, repo, fmt.Sprintf("IC-%d", i), 1, "ORDER_PLACED")
	}

	orders, total, err := repo.ListByUser(OrderListFilter{UserID: 1, Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("list by user failed: %v", err)
	}
	if total != 5 {
		t.Fatalf("want total 5, got %d", total)
	}
	if len(orders) != 2 {
		t.Fatalf("want page of 2, got %d", len(orders))
	}
	// 最新在前：第二页应当是 IC-3、IC-2
	if orders[0].OrderNo != "IC-3" || orders[1].OrderNo != "IC-2" {
		t.Fatalf("page ordering mismatch: %s, %s", orders[0].OrderNo, orders[1].OrderNo)
	}
}

func TestOrderRepositoryListByUserTypeFilter(t *testing.T) {
	repo := setupOrderRepoTest(t)
	seedOrder(t, repo, "IC-1", 1, "ORDER_PLACED")
	delivery := seedOrder(t, repo, "IC-2", 1, "ORDER_PLACED")
	if err := repo.db.Model(&models.Order{}).Where("id = ?", delivery.ID).
		Update("type", "DELIVERY").Error; err != nil {
		t.Fatalf("switch order type: %v", err)
	}

	orders, total, err := repo.ListByUser(OrderListFilter{UserID: 1, Type: "DELIVERY", Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list by user with type failed: %v", err)
	}
	if total != 1 || len(orders) != 1 || orders[0].OrderNo != "IC-2" {
		t.Fatalf("type filter mismatch: total=%d orders=%+v", total, orders)
	}
}

func TestOrderRepositoryUpdateStatus(t *testing.T) {
	repo := setupOrderRepoTest(t)
	order := seedOrder(t, repo, "IC-1", 1, "ORDER_PLACED")

	if err := repo.UpdateStatus(order.ID, "READY", nil); err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	loaded, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.Status != "READY" {
		t.Fatalf("want READY, got %s", loaded.Status)
	}
}
