package public

import (
	"strconv"
	"strings"
	"time"

	"github.com/creamery-next/internal/http/response"
	"github.com/creamery-next/internal/models"
	"github.com/creamery-next/internal/repository"
	"github.com/creamery-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateOrderItemRequest 订单项请求
type CreateOrderItemRequest struct {
	TypeSlug          string                        `json:"type_slug" binding:"required"`
	FlavourSelections []CartFlavourSelectionRequest `json:"flavour_selections" binding:"required"`
	MixinIDs          []uint                        `json:"mixin_ids"`
}

// CreateOrderRequest 下单请求
// 金额由服务端按目录现价重算，请求中不携带价格字段。
type CreateOrderRequest struct {
	Items         []CreateOrderItemRequest `json:"items" binding:"required"`
	Type          string                   `json:"type" binding:"required"`
	PaymentMethod string                   `json:"payment_method" binding:"required"`
	Address       string                   `json:"address"`
	PickupTime    *time.Time               `json:"pickup_time"`
}

// CreateOrder 下单
func (h *Handler) CreateOrder(c *gin.Context) {
	id, ok := getUserID(c)
	if !ok {
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	items := make([]service.PlaceOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		selections := make(models.FlavourSelections, 0, len(item.FlavourSelections))
		for _, sel := range item.FlavourSelections {
			selections = append(selections, models.FlavourSelection{
				FlavourID: sel.FlavourID,
				Scoops:    sel.Scoops,
			})
		}
		items = append(items, service.PlaceOrderItem{
			TypeSlug:          item.TypeSlug,
			FlavourSelections: selections,
			MixinIDs:          item.MixinIDs,
		})
	}

	order, err := h.OrderService.PlaceOrder(service.PlaceOrderInput{
		UserID:        id,
		Items:         items,
		Type:          strings.ToUpper(strings.TrimSpace(req.Type)),
		PaymentMethod: strings.ToUpper(strings.TrimSpace(req.PaymentMethod)),
		Address:       req.Address,
		PickupTime:    req.PickupTime,
	})
	if err != nil {
		respondOrderCreateError(c, err)
		return
	}

	response.Success(c, order)
}

// ListOrders 获取当前用户订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	id, ok := getUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	orders, total, err := h.OrderService.ListByUser(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   id,
		Type:     strings.ToUpper(strings.TrimSpace(c.Query("type"))),
		Status:   strings.ToUpper(strings.TrimSpace(c.Query("status"))),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, orders, response.BuildPagination(page, pageSize, total))
}

// GetOrder 获取当前用户订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, ok := parseOrderIDParam(c)
	if !ok {
		return
	}

	order, err := h.OrderService.GetOrderForUser(orderID, id)
	if err != nil {
		respondOrderFetchError(c, err)
		return
	}
	response.Success(c, order)
}

// CancelOrder 顾客取消订单（幂等）
func (h *Handler) CancelOrder(c *gin.Context) {
	id, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, ok := parseOrderIDParam(c)
	if !ok {
		return
	}

	order, err := h.OrderService.CancelOrder(orderID, id)
	if err != nil {
		respondOrderCancelError(c, err)
		return
	}
	response.Success(c, order)
}

func parseOrderIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return 0, false
	}
	return uint(id), true
}

func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
