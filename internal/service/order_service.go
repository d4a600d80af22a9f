package service

import (
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"github.com/creamery-next/internal/constants"
	"github.com/creamery-next/internal/logger"
	"github.com/creamery-next/internal/models"
	"github.com/creamery-next/internal/queue"
	"github.com/creamery-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const pickupReminderLead = 30 * time.Minute

// OrderService 订单服务
type OrderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	typeRepo    repository.IceCreamTypeRepository
	flavourRepo repository.IceCreamFlavourRepository
	mixinRepo   repository.IceCreamMixinRepository
	queueClient *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, typeRepo repository.IceCreamTypeRepository, flavourRepo repository.IceCreamFlavourRepository, mixinRepo repository.IceCreamMixinRepository, queueClient *queue.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		typeRepo:    typeRepo,
		flavourRepo: flavourRepo,
		mixinRepo:   mixinRepo,
		queueClient: queueClient,
	}
}

// PlaceOrderItem 下单订单项参数
type PlaceOrderItem struct {
	TypeSlug          string
	FlavourSelections models.FlavourSelections
	MixinIDs          []uint
}

// PlaceOrderInput 下单参数
type PlaceOrderInput struct {
	UserID        uint
	Items         []PlaceOrderItem
	Type          string
	PaymentMethod string
	Address       string
	PickupTime    *time.Time
}

// PlaceOrder 下单
// 金额一律按目录现价在服务端重算，客户端提交的金额不参与计价。
// 订单、支付记录、订单项在同一事务内落库，成功后清空购物车。
func (s *OrderService) PlaceOrder(input PlaceOrderInput) (*models.Order, error) {
	if err := s.validatePlaceOrder(&input); err != nil {
		return nil, err
	}

	flavours, mixins, err := s.catalogSnapshot()
	if err != nil {
		return nil, err
	}

	orderNo, err := generateOrderNo()
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(input.Items))
	for _, in := range input.Items {
		slug := strings.TrimSpace(in.TypeSlug)
		iceCreamType, err := s.typeRepo.GetBySlug(slug)
		if err != nil {
			return nil, err
		}
		if iceCreamType == nil {
			return nil, ErrTypeNotFound
		}

		amount := priceLineItem(in.FlavourSelections, in.MixinIDs, flavours, mixins)
		total = total.Add(amount)

		flavourIDs := make(models.UintArray, 0, len(in.FlavourSelections))
		for _, sel := range in.FlavourSelections {
			flavourIDs = append(flavourIDs, sel.FlavourID)
		}
		items = append(items, models.OrderItem{
			Type:       slug,
			Amount:     models.NewMoneyFromDecimal(amount),
			FlavourIDs: flavourIDs,
			MixinIDs:   models.UintArray(in.MixinIDs),
		})
	}

	order := &models.Order{
		OrderNo:     orderNo,
		UserID:      input.UserID,
		Type:        input.Type,
		Status:      constants.OrderStatusOrderPlaced,
		Currency:    constants.SiteCurrencyDefault,
		TotalAmount: models.NewMoneyFromDecimal(total),
		PickupTime:  input.PickupTime,
	}
	payment := &models.Payment{
		UserID:        input.UserID,
		PaymentMethod: input.PaymentMethod,
		Amount:        models.NewMoneyFromDecimal(total),
		Currency:      constants.SiteCurrencyDefault,
		Address:       strings.TrimSpace(input.Address),
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order, payment, items); err != nil {
			return err
		}
		return s.cartRepo.WithTx(tx).ClearByUser(input.UserID)
	})
	if err != nil {
		logger.Errorw("order_create_failed", "user_id", input.UserID, "error", err)
		return nil, ErrOrderCreateFailed
	}
	order.Items = items
	order.Payment = payment

	s.notifyStatus(order.ID, order.Status)
	s.schedulePickupReminder(order)

	return order, nil
}

func (s *OrderService) validatePlaceOrder(input *PlaceOrderInput) error {
	if len(input.Items) == 0 {
		return ErrEmptyOrderItems
	}
	switch input.Type {
	case constants.OrderTypePickup, constants.OrderTypeDelivery:
	default:
		return ErrInvalidOrderType
	}
	switch input.PaymentMethod {
	case constants.PaymentMethodCreditCard, constants.PaymentMethodDebitCard:
	default:
		return ErrInvalidPaymentMethod
	}
	if input.Type == constants.OrderTypeDelivery {
		if strings.TrimSpace(input.Address) == "" {
			return ErrAddressRequired
		}
		input.PickupTime = nil
	}
	if input.Type == constants.OrderTypePickup {
		if input.PickupTime == nil {
			return ErrPickupTimeRequired
		}
		if input.PickupTime.Before(time.Now()) {
			return ErrPickupTimeInPast
		}
	}
	return nil
}

// CancelOrder 顾客取消订单
// 仅订单归属人可取消；已取消的订单重复取消视为成功（幂等）。
func (s *OrderService) CancelOrder(orderID, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status == constants.OrderStatusCancelled {
		return order, nil
	}
	if !isCancellable(order.Status) {
		return nil, ErrOrderNotCancellable
	}

	now := time.Now()
	updates := map[string]interface{}{
		"canceled_at": now,
		"updated_at":  now,
	}
	if err := s.orderRepo.UpdateStatus(order.ID, constants.OrderStatusCancelled, updates); err != nil {
		return nil, err
	}
	order.Status = constants.OrderStatusCancelled
	order.CanceledAt = &now

	s.notifyStatus(order.ID, order.Status)
	return order, nil
}

// UpdateOrderStatus 管理端推进订单状态
// 迁移表按订单类型校验，终态不允许再推进。
func (s *OrderService) UpdateOrderStatus(orderID uint, target string) (*models.Order, error) {
	if !isKnownStatus(target) {
		return nil, ErrInvalidOrderStatus
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !isTransitionAllowed(order.Type, order.Status, target) {
		return nil, ErrTransitionNotAllowed
	}

	now := time.Now()
	if err := s.orderRepo.UpdateStatus(order.ID, target, map[string]interface{}{"updated_at": now}); err != nil {
		return nil, err
	}
	order.Status = target

	s.notifyStatus(order.ID, order.Status)
	return order, nil
}

// GetOrderForUser 获取用户订单详情
func (s *OrderService) GetOrderForUser(orderID, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetOrder 获取订单详情（管理端）
func (s *OrderService) GetOrder(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListByUser 获取用户订单列表
func (s *OrderService) ListByUser(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListByUser(filter)
}

// ListAdmin 管理端订单列表
func (s *OrderService) ListAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(filter)
}

func (s *OrderService) catalogSnapshot() (map[uint]models.IceCreamFlavour, map[uint]models.IceCreamMixin, error) {
	flavours, err := s.flavourRepo.List()
	if err != nil {
		return nil, nil, err
	}
	mixins, err := s.mixinRepo.List()
	if err != nil {
		return nil, nil, err
	}
	return flavourMap(flavours), mixinMap(mixins), nil
}

func (s *OrderService) notifyStatus(orderID uint, status string) {
	if err := s.queueClient.EnqueueOrderStatusNotify(queue.OrderStatusNotifyPayload{
		OrderID: orderID,
		Status:  status,
	}); err != nil {
		logger.Warnw("order_status_notify_enqueue_failed", "order_id", orderID, "status", status, "error", err)
	}
}

func (s *OrderService) schedulePickupReminder(order *models.Order) {
	if order == nil || order.Type != constants.OrderTypePickup || order.PickupTime == nil {
		return
	}
	delay := time.Until(order.PickupTime.Add(-pickupReminderLead))
	if err := s.queueClient.EnqueueOrderPickupReminder(queue.OrderPickupReminderPayload{OrderID: order.ID}, delay); err != nil {
		logger.Warnw("order_pickup_reminder_enqueue_failed", "order_id", order.ID, "error", err)
	}
}

// generateOrderNo 生成订单编号：IC + 时间戳 + 6位随机数
func generateOrderNo() (string, error) {
	suffix, err := randNumeric(6)
	if err != nil {
		return "", err
	}
	return "IC" + time.Now().Format("20060102150405") + suffix, nil
}

func randNumeric(length int) (string, error) {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + n.Int64()))
	}
	return b.String(), nil
}
