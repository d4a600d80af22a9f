package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/creamery-next/internal/http/response"
	"github.com/creamery-next/internal/repository"
	"github.com/creamery-next/internal/service"

	"github.com/gin-gonic/gin"
)

// UpdateOrderStatusRequest 订单状态推进请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GetAdminOrders 获取订单列表 (Admin)
func (h *Handler) GetAdminOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	var userID uint
	if raw := strings.TrimSpace(c.Query("user_id")); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
		userID = uint(parsed)
	}
	createdFrom, err := parseTimeNullable(c.Query("created_from"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	createdTo, err := parseTimeNullable(c.Query("created_to"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	orders, total, err := h.OrderService.ListAdmin(repository.OrderListFilter{
		Page:        page,
		PageSize:    pageSize,
		UserID:      userID,
		Type:        strings.ToUpper(strings.TrimSpace(c.Query("type"))),
		Status:      strings.ToUpper(strings.TrimSpace(c.Query("status"))),
		OrderNo:     strings.TrimSpace(c.Query("order_no")),
		CreatedFrom: createdFrom,
		CreatedTo:   createdTo,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, orders, response.BuildPagination(page, pageSize, total))
}

// GetAdminOrder 获取订单详情 (Admin)
func (h *Handler) GetAdminOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	order, err := h.OrderService.GetOrder(id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}
	response.Success(c, order)
}

// UpdateAdminOrderStatus 推进订单状态 (Admin)
// 状态机按订单类型校验，非法流转直接拒绝。
func (h *Handler) UpdateAdminOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	target := strings.ToUpper(strings.TrimSpace(req.Status))
	order, err := h.OrderService.UpdateOrderStatus(id, target)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrderStatus):
			respondError(c, response.CodeBadRequest, "error.invalid_order_status", nil)
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
		case errors.Is(err, service.ErrTransitionNotAllowed):
			respondError(c, response.CodeConflict, "error.transition_not_allowed", nil)
		default:
			respondError(c, response.CodeInternal, "error.order_status_update_failed", err)
		}
		return
	}

	requestLog(c).Infow("admin_order_status_updated",
		"operator_id", currentOperatorID(c),
		"order_id", order.ID,
		"status", order.Status,
	)
	response.Success(c, order)
}
