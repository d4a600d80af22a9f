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

// BatchUpdateUserStatusRequest 批量启用/禁用用户请求
type BatchUpdateUserStatusRequest struct {
	UserIDs []uint `json:"user_ids" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

// GetAdminUsers 获取用户列表 (Admin)
func (h *Handler) GetAdminUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

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

	users, total, err := h.UserAdminService.List(repository.UserListFilter{
		Page:        page,
		PageSize:    pageSize,
		Keyword:     strings.TrimSpace(c.Query("keyword")),
		Role:        strings.ToUpper(strings.TrimSpace(c.Query("role"))),
		Status:      strings.ToLower(strings.TrimSpace(c.Query("status"))),
		CreatedFrom: createdFrom,
		CreatedTo:   createdTo,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.user_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, users, response.BuildPagination(page, pageSize, total))
}

// GetAdminUser 获取用户详情 (Admin)
func (h *Handler) GetAdminUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := h.UserAdminService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.user_fetch_failed", err)
		return
	}
	response.Success(c, user)
}

// BatchUpdateUserStatus 批量启用/禁用用户 (Admin)
// 禁用用户会同步失效其全部已签发 Token。
func (h *Handler) BatchUpdateUserStatus(c *gin.Context) {
	var req BatchUpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if len(req.UserIDs) == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.UserAdminService.BatchUpdateStatus(req.UserIDs, req.Status); err != nil {
		if errors.Is(err, service.ErrInvalidUserStatus) {
			respondError(c, response.CodeBadRequest, "error.invalid_user_status", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.user_update_failed", err)
		return
	}

	requestLog(c).Infow("admin_user_status_updated",
		"operator_id", currentOperatorID(c),
		"user_ids", req.UserIDs,
		"status", strings.ToLower(strings.TrimSpace(req.Status)),
	)
	response.Success(c, gin.H{"updated": len(req.UserIDs)})
}
