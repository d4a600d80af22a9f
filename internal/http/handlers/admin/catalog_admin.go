package admin

import (
	"errors"

	"github.com/creamery-next/internal/http/response"
	"github.com/creamery-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// IceCreamTypeRequest 容器类型创建/更新请求
type IceCreamTypeRequest struct {
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Image     string `json:"image"`
	MaxScoops int    `json:"max_scoops"`
}

// PricedItemRequest 口味/配料创建与更新请求
type PricedItemRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// CreateIceCreamType 创建容器类型
func (h *Handler) CreateIceCreamType(c *gin.Context) {
	var req IceCreamTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	iceCreamType, err := h.CatalogService.CreateType(service.TypeInput{
		Name:      req.Name,
		Slug:      req.Slug,
		Image:     req.Image,
		MaxScoops: req.MaxScoops,
	})
	if err != nil {
		respondCatalogSaveError(c, err)
		return
	}
	response.Success(c, iceCreamType)
}

// UpdateIceCreamType 更新容器类型
func (h *Handler) UpdateIceCreamType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req IceCreamTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	iceCreamType, err := h.CatalogService.UpdateType(id, service.TypeInput{
		Name:      req.Name,
		Slug:      req.Slug,
		Image:     req.Image,
		MaxScoops: req.MaxScoops,
	})
	if err != nil {
		respondCatalogSaveError(c, err)
		return
	}
	response.Success(c, iceCreamType)
}

// CreateFlavour 创建口味
func (h *Handler) CreateFlavour(c *gin.Context) {
	var req PricedItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	flavour, err := h.CatalogService.CreateFlavour(service.PricedItemInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		respondCatalogSaveError(c, err)
		return
	}
	response.Success(c, flavour)
}

// UpdateFlavour 更新口味
func (h *Handler) UpdateFlavour(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req PricedItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	flavour, err := h.CatalogService.UpdateFlavour(id, service.PricedItemInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		respondCatalogSaveError(c, err)
		return
	}
	response.Success(c, flavour)
}

// DeleteFlavour 删除口味
func (h *Handler) DeleteFlavour(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.CatalogService.DeleteFlavour(id); err != nil {
		respondCatalogSaveError(c, err)
		return
	}
	response.Success(c, nil)
}

// CreateMixin 创建配料
func (h *Handler) CreateMixin(c *gin.Context) {
	var req PricedItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	mixin, err := h.CatalogService.CreateMixin(service.PricedItemInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		respondCatalogSaveError(c, err)
		return
	}
	response.Success(c, mixin)
}

// UpdateMixin 更新配料
func (h *Handler) UpdateMixin(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req PricedItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	mixin, err := h.CatalogService.UpdateMixin(id, service.PricedItemInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		respondCatalogSaveError(c, err)
		return
	}
	response.Success(c, mixin)
}

// DeleteMixin 删除配料
func (h *Handler) DeleteMixin(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.CatalogService.DeleteMixin(id); err != nil {
		respondCatalogSaveError(c, err)
		return
	}
	response.Success(c, nil)
}

func respondCatalogSaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
	case errors.Is(err, service.ErrInvalidPrice):
		respondError(c, response.CodeBadRequest, "error.invalid_price", nil)
	case errors.Is(err, service.ErrNameExists):
		respondError(c, response.CodeConflict, "error.name_exists", nil)
	case errors.Is(err, service.ErrSlugExists):
		respondError(c, response.CodeConflict, "error.slug_exists", nil)
	case errors.Is(err, service.ErrTypeNotFound):
		respondError(c, response.CodeNotFound, "error.type_not_found", nil)
	case errors.Is(err, service.ErrFlavourNotFound):
		respondError(c, response.CodeNotFound, "error.flavour_not_found", nil)
	case errors.Is(err, service.ErrMixinNotFound):
		respondError(c, response.CodeNotFound, "error.mixin_not_found", nil)
	default:
		respondError(c, response.CodeInternal, "error.catalog_save_failed", err)
	}
}
