package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/creamery-next/internal/http/response"
	"github.com/creamery-next/internal/models"
	"github.com/creamery-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CartFlavourSelectionRequest 口味选择请求
type CartFlavourSelectionRequest struct {
	FlavourID uint `json:"flavour_id" binding:"required"`
	Scoops    int  `json:"scoops" binding:"required"`
}

// AddCartItemRequest 加购请求
type AddCartItemRequest struct {
	TypeSlug          string                        `json:"type_slug" binding:"required"`
	FlavourSelections []CartFlavourSelectionRequest `json:"flavour_selections" binding:"required"`
	MixinIDs          []uint                        `json:"mixin_ids"`
}

// GetCart 获取购物车明细（按目录现价计价）
func (h *Handler) GetCart(c *gin.Context) {
	id, ok := getUserID(c)
	if !ok {
		return
	}

	detail, err := h.CartService.ListByUser(id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.cart_fetch_failed", err)
		return
	}
	response.Success(c, cartDetailResponse(detail))
}

// AddCartItem 加入购物车
func (h *Handler) AddCartItem(c *gin.Context) {
	id, ok := getUserID(c)
	if !ok {
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	selections := make(models.FlavourSelections, 0, len(req.FlavourSelections))
	for _, sel := range req.FlavourSelections {
		selections = append(selections, models.FlavourSelection{
			FlavourID: sel.FlavourID,
			Scoops:    sel.Scoops,
		})
	}

	item, err := h.CartService.AddItem(service.AddItemInput{
		UserID:            id,
		TypeSlug:          req.TypeSlug,
		FlavourSelections: selections,
		MixinIDs:          req.MixinIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCartItemInvalid):
			respondError(c, response.CodeBadRequest, "error.cart_item_invalid", nil)
		case errors.Is(err, service.ErrTypeNotFound):
			respondError(c, response.CodeNotFound, "error.type_not_found", nil)
		case errors.Is(err, service.ErrTooManyScoops):
			respondError(c, response.CodeBadRequest, "error.too_many_scoops", nil)
		default:
			respondError(c, response.CodeInternal, "error.cart_save_failed", err)
		}
		return
	}

	response.Success(c, item)
}

// DeleteCartItem 删除购物车项（不存在视为成功）
func (h *Handler) DeleteCartItem(c *gin.Context) {
	id, ok := getUserID(c)
	if !ok {
		return
	}

	itemID, err := strconv.ParseUint(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || itemID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.CartService.RemoveItem(id, uint(itemID)); err != nil {
		respondError(c, response.CodeInternal, "error.cart_save_failed", err)
		return
	}
	response.Success(c, gin.H{"removed": true})
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	id, ok := getUserID(c)
	if !ok {
		return
	}

	if err := h.CartService.Clear(id); err != nil {
		respondError(c, response.CodeInternal, "error.cart_save_failed", err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}

func cartDetailResponse(detail *service.CartDetail) gin.H {
	items := make([]gin.H, 0, len(detail.Items))
	for _, entry := range detail.Items {
		items = append(items, gin.H{
			"id":                 entry.Item.ID,
			"type_slug":          entry.Item.TypeSlug,
			"flavour_selections": entry.Item.FlavourSelections,
			"mixin_ids":          entry.Item.MixinIDs,
			"total":              entry.Total,
			"created_at":         entry.Item.CreatedAt,
		})
	}
	return gin.H{
		"items": items,
		"total": detail.Total,
	}
}
