package service

import (
	"errors"
	"testing"
	"time"

	"github.com/creamery-next/internal/constants"
	"github.com/creamery-next/internal/models"
	"github.com/creamery-next/internal/repository"
)

func newOrderService() *OrderService {
	return NewOrderService(
		repository.NewOrderRepository(models.DB),
		repository.NewCartRepository(models.DB),
		repository.NewIceCreamTypeRepository(models.DB),
		repository.NewIceCreamFlavourRepository(models.DB),
		repository.NewIceCreamMixinRepository(models.DB),
		nil,
	)
}

func futureTime(d time.Duration) *time.Time {
	t := time.Now().Add(d)
	return &t
}

func placePickupOrder(t *testing.T, svc *OrderService, fixture catalogFixture, userID uint) *models.Order {
	t.Helper()
	order, err := svc.PlaceOrder(PlaceOrderInput{
		UserID: userID,
		Items: []PlaceOrderItem{
			{
				TypeSlug:          "cup",
				FlavourSelections: models.FlavourSelections{{FlavourID: fixture.vanilla.ID, Scoops: 2}},
				MixinIDs:          []uint{fixture.sprinkles.ID},
			},
		},
		Type:          constants.OrderTypePickup,
		PaymentMethod: constants.PaymentMethodCreditCard,
		PickupTime:    futureTime(2 * time.Hour),
	})
	if err != nil {
		t.Fatalf("place pickup order: %v", err)
	}
	return order
}

func TestPlaceOrderValidation(t *testing.T) {
	setupTestDB(t)
	fixture := seedCatalog(t)
	svc := newOrderService()

	item := PlaceOrderItem{
		TypeSlug:          "cup",
		FlavourSelections: models.FlavourSelections{{FlavourID: fixture.vanilla.ID, Scoops: 1}},
	}

	cases := []struct {
		name  string
		input PlaceOrderInput
		want  error
	}{
		{
			name: "empty items",
			input: PlaceOrderInput{
				UserID: 1, Type: constants.OrderTypePickup,
				PaymentMethod: constants.PaymentMethodCreditCard,
				PickupTime:    futureTime(time.Hour),
			},
			want: ErrEmptyOrderItems,
		},
		{
			name: "unknown order type",
			input: PlaceOrderInput{
				UserID: 1, Items: []PlaceOrderItem{item}, Type: "DRIVE_THROUGH",
				PaymentMethod: constants.PaymentMethodCreditCard,
			},
			want: ErrInvalidOrderType,
		},
		{
			name: "unknown payment method",
			input: PlaceOrderInput{
				UserID: 1, Items: []PlaceOrderItem{item}, Type: constants.OrderTypePickup,
				PaymentMethod: "CASH",
				PickupTime:    futureTime(time.Hour),
			},
			want: ErrInvalidPaymentMethod,
		},
		{
			name: "delivery without address",
			input: PlaceOrderInput{
				UserID: 1, Items: []PlaceOrderItem{item}, Type: constants.OrderTypeDelivery,
				PaymentMethod: constants.PaymentMethodCreditCard,
			},
			want: ErrAddressRequired,
		},
		{
			name: "pickup without pickup time",
			input: PlaceOrderInput{
				UserID: 1, Items: []PlaceOrderItem{item}, Type: constants.OrderTypePickup,
				PaymentMethod: constants.PaymentMethodCreditCard,
			},
			want: ErrPickupTimeRequired,
		},
		{
			name: "pickup time in past",
			input: PlaceOrderInput{
				UserID: 1, Items: []PlaceOrderItem{item}, Type: constants.OrderTypePickup,
				PaymentMethod: constants.PaymentMethodCreditCard,
				PickupTime:    futureTime(-time.Hour),
			},
			want: ErrPickupTimeInPast,
		},
	}
	for _, tc := range cases {
		if _, err := svc.PlaceOrder(tc.input); !errors.Is(err, tc.want) {
			t.Fatalf("%s: want %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestPlaceOrderCreatesOrderPaymentAndItems(t *testing.T) {
	setupTestDB(t)
	fixture := seedCatalog(t)
	svc := newOrderService()

	order, err := svc.PlaceOrder(PlaceOrderInput{
		UserID: 1,
		Items: []PlaceOrderItem{
			{
				TypeSlug: "cup",
				FlavourSelections: models.FlavourSelections{
					{FlavourID: fixture.vanilla.ID, Scoops: 2},
					{FlavourID: fixture.chocolate.ID, Scoops: 1},
				},
				MixinIDs: []uint{fixture.sprinkles.ID},
			},
			{
				TypeSlug:          "cone",
				FlavourSelections: models.FlavourSelections{{FlavourID: fixture.vanilla.ID, Scoops: 1}},
			},
		},
		Type:          constants.OrderTypeDelivery,
		PaymentMethod: constants.PaymentMethodDebitCard,
		Address:       "1 Scoop Street",
	})
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	if order.Status != constants.OrderStatusOrderPlaced {
		t.Fatalf("want status %s, got %s", constants.OrderStatusOrderPlaced, order.Status)
	}
	// 1.50*3 + 0.50 + 1.50 = 6.50，金额由服务端重算
	if got := order.TotalAmount.Decimal.StringFixed(2); got != "6.50" {
		t.Fatalf("want total 6.50, got %s", got)
	}

	var orderCount, paymentCount, itemCount int64
	models.DB.Model(&models.Order{}).Count(&orderCount)
	models.DB.Model(&models.Payment{}).Count(&paymentCount)
	models.DB.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount)
	if orderCount != 1 || paymentCount != 1 || itemCount != 2 {
		t.Fatalf("want 1 order, 1 payment, 2 items; got %d/%d/%d", orderCount, paymentCount, itemCount)
	}

	var payment models.Payment
	if err := models.DB.Where("order_id = ?", order.ID).First(&payment).Error; err != nil {
		t.Fatalf("load payment: %v", err)
	}
	if payment.Amount.Decimal.StringFixed(2) != "6.50" {
		t.Fatalf("payment amount mismatch: %s", payment.Amount.Decimal.StringFixed(2))
	}
	if payment.Address != "1 Scoop Street" {
		t.Fatalf("payment address mismatch: %q", payment.Address)
	}
}

func TestPlaceOrderClearsCart(t *testing.T) {
	setupTestDB(t)
	fixture := seedCatalog(t)
	orderSvc := newOrderService()
	cartSvc := newCartService()

	if _, err := cartSvc.AddItem(AddItemInput{
		UserID:            1,
		TypeSlug:          "cup",
		FlavourSelections: models.FlavourSelections{{FlavourID: fixture.vanilla.ID, Scoops: 1}},
	}); err != nil {
		t.Fatalf("add cart item: %v", err)
	}

	placePickupOrder(t, orderSvc, fixture, 1)

	detail, err := cartSvc.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart: %v", err)
	}
	if len(detail.Items) != 0 {
		t.Fatalf("cart should be cleared after order, got %d items", len(detail.Items))
	}
}

func TestPlaceOrderUnknownTypeRollsBack(t *testing.T) {
	setupTestDB(t)
	fixture := seedCatalog(t)
	svc := newOrderService()

	_, err := svc.PlaceOrder(PlaceOrderInput{
		UserID: 1,
		Items: []PlaceOrderItem{
			{
				TypeSlug:          "bucket",
				FlavourSelections: models.FlavourSelections{{FlavourID: fixture.vanilla.ID, Scoops: 1}},
			},
		},
		Type:          constants.OrderTypePickup,
		PaymentMethod: constants.PaymentMethodCreditCard,
		PickupTime:    futureTime(time.Hour),
	})
	if !errors.Is(err, ErrTypeNotFound) {
		t.Fatalf("want ErrTypeNotFound, got %v", err)
	}

	var orderCount int64
	models.DB.Model(&models.Order{}).Count(&orderCount)
	if orderCount != 0 {
		t.Fatalf("no order should be persisted, got %d", orderCount)
	}
}

func TestUpdateOrderStatusTransitions(t *testing.T) {
	setupTestDB(t)
	fixture := seedCatalog(t)
	svc := newOrderService()

	order := placePickupOrder(t, svc, fixture, 1)

	// PICKUP 不允许直接 COMPLETED
	if _, err := svc.UpdateOrderStatus(order.ID, constants.OrderStatusCompleted); !errors.Is(err, ErrTransitionNotAllowed) {
		t.Fatalf("want ErrTransitionNotAllowed, got %v", err)
	}
	// PICKUP 不允许 DELIVERED
	if _, err := svc.UpdateOrderStatus(order.ID, constants.OrderStatusDelivered); !errors.Is(err, ErrTransitionNotAllowed) {
		t.Fatalf("want ErrTransitionNotAllowed for DELIVERED, got %v", err)
	}

	updated, err := svc.UpdateOrderStatus(order.ID, constants.OrderStatusReady)
	if err != nil {
		t.Fatalf("advance to READY: %v", err)
	}
	if updated.Status != constants.OrderStatusReady {
		t.Fatalf("want READY, got %s", updated.Status)
	}

	updated, err = svc.UpdateOrderStatus(order.ID, constants.OrderStatusCompleted)
	if err != nil {
		t.Fatalf("advance to COMPLETED: %v", err)
	}
	if updated.Status != constants.OrderStatusCompleted {
		t.Fatalf("want COMPLETED, got %s", updated.Status)
	}
	// 终态不可再推进
	if _, err := svc.UpdateOrderStatus(order.ID, constants.OrderStatusReady); !errors.Is(err, ErrTransitionNotAllowed) {
		t.Fatalf("terminal state must not advance, got %v", err)
	}

	if _, err := svc.UpdateOrderStatus(order.ID, "FROZEN"); !errors.Is(err, ErrInvalidOrderStatus) {
		t.Fatalf("want ErrInvalidOrderStatus, got %v", err)
	}
	if _, err := svc.UpdateOrderStatus(9999, constants.OrderStatusReady); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("want ErrOrderNotFound, got %v", err)
	}
}

func TestUpdateOrderStatusDeliveryPath(t *testing.T) {
	setupTestDB(t)
	fixture := seedCatalog(t)
	svc := newOrderService()

	order, err := svc.PlaceOrder(PlaceOrderInput{
		UserID: 1,
		Items: []PlaceOrderItem{
			{
				TypeSlug:          "cup",
				FlavourSelections: models.FlavourSelections{{FlavourID: fixture.vanilla.ID, Scoops: 1}},
			},
		},
		Type:          constants.OrderTypeDelivery,
		PaymentMethod: constants.PaymentMethodCreditCard,
		Address:       "1 Scoop Street",
	})
	if err != nil {
		t.Fatalf("place delivery order: %v", err)
	}

	// DELIVERY 不允许 READY
	if _, err := svc.UpdateOrderStatus(order.ID, constants.OrderStatusReady); !errors.Is(err, ErrTransitionNotAllowed) {
		t.Fatalf("want ErrTransitionNotAllowed for READY, got %v", err)
	}
	updated, err := svc.UpdateOrderStatus(order.ID, constants.OrderStatusDelivered)
	if err != nil {
		t.Fatalf("advance to DELIVERED: %v", err)
	}
	if updated.Status != constants.OrderStatusDelivered {
		t.Fatalf("want DELIVERED, got %s", updated.Status)
	}
}

func TestCancelOrderRules(t *testing.T) {
	setupTestDB(t)
	fixture := seedCatalog(t)
	svc := newOrderService()

	order := placePickupOrder(t, svc, fixture, 1)

	// ORDER_PLACED 不在可取消集合内
	if _, err := svc.CancelOrder(order.ID, 1); !errors.Is(err, ErrOrderNotCancellable) {
		t.Fatalf("want ErrOrderNotCancellable from ORDER_PLACED, got %v", err)
	}

	if _, err := svc.UpdateOrderStatus(order.ID, constants.OrderStatusReady); err != nil {
		t.Fatalf("advance to READY: %v", err)
	}

	// 非归属人不可见，也就不可取消
	if _, err := svc.CancelOrder(order.ID, 2); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("want ErrOrderNotFound for foreign user, got %v", err)
	}

	cancelled, err := svc.CancelOrder(order.ID, 1)
	if err != nil {
		t.Fatalf("cancel from READY: %v", err)
	}
	if cancelled.Status != constants.OrderStatusCancelled {
		t.Fatalf("want CANCELLED, got %s", cancelled.Status)
	}
	if cancelled.CanceledAt == nil {
		t.Fatalf("canceled_at should be set")
	}

	// 幂等：重复取消视为成功
	again, err := svc.CancelOrder(order.ID, 1)
	if err != nil {
		t.Fatalf("repeat cancel: %v", err)
	}
	if again.Status != constants.OrderStatusCancelled {
		t.Fatalf("repeat cancel should keep CANCELLED, got %s", again.Status)
	}

	// 已取消的订单不可再推进
	if _, err := svc.UpdateOrderStatus(order.ID, constants.OrderStatusCompleted); !errors.Is(err, ErrTransitionNotAllowed) {
		t.Fatalf("cancelled order must not advance, got %v", err)
	}
}

func TestGetOrderForUserScopesByOwner(t *testing.T) {
	setupTestDB(t)
	fixture := seedCatalog(t)
	svc := newOrderService()

	order := placePickupOrder(t, svc, fixture, 1)

	got, err := svc.GetOrderForUser(order.ID, 1)
	if err != nil {
		t.Fatalf("owner fetch: %v", err)
	}
	if got.OrderNo != order.OrderNo {
		t.Fatalf("order no mismatch: %s vs %s", got.OrderNo, order.OrderNo)
	}
	if len(got.Items) != 1 || got.Payment == nil {
		t.Fatalf("expected preloaded items and payment")
	}

	if _, err := svc.GetOrderForUser(order.ID, 2); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("want ErrOrderNotFound for foreign user, got %v", err)
	}
}

func TestListByUserFiltersByOwner(t *testing.T) {
	setupTestDB(t)
	fixture := seedCatalog(t)
	svc := newOrderService()

	placePickupOrder(t, svc, fixture, 1)
	placePickupOrder(t, svc, fixture, 1)
	placePickupOrder(t, svc, fixture, 2)

	orders, total, err := svc.ListByUser(repository.OrderListFilter{UserID: 1, Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if total != 2 || len(orders) != 2 {
		t.Fatalf("want 2 orders for user 1, got total=%d len=%d", total, len(orders))
	}
}
