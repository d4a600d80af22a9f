package public

import (
	"errors"

	"github.com/creamery-next/internal/http/response"
	"github.com/creamery-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetIceCreamTypes 获取容器类型列表
func (h *Handler) GetIceCreamTypes(c *gin.Context) {
	types, err := h.CatalogService.ListTypes()
	if err != nil {
		respondError(c, response.CodeInternal, "error.catalog_fetch_failed", err)
		return
	}
	response.Success(c, types)
}

// GetIceCreamTypeBySlug 按标识获取容器类型，附带可选口味与配料（定制页一次取全）
func (h *Handler) GetIceCreamTypeBySlug(c *gin.Context) {
	iceCreamType, err := h.CatalogService.GetTypeBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrTypeNotFound) {
			respondError(c, response.CodeNotFound, "error.type_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.catalog_fetch_failed", err)
		return
	}
	flavours, err := h.CatalogService.ListFlavours()
	if err != nil {
		respondError(c, response.CodeInternal, "error.catalog_fetch_failed", err)
		return
	}
	mixins, err := h.CatalogService.ListMixins()
	if err != nil {
		respondError(c, response.CodeInternal, "error.catalog_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{
		"type":     iceCreamType,
		"flavours": flavours,
		"mixins":   mixins,
	})
}

// GetFlavours 获取口味列表
func (h *Handler) GetFlavours(c *gin.Context) {
	flavours, err := h.CatalogService.ListFlavours()
	if err != nil {
		respondError(c, response.CodeInternal, "error.catalog_fetch_failed", err)
		return
	}
	response.Success(c, flavours)
}

// GetMixins 获取配料列表
func (h *Handler) GetMixins(c *gin.Context) {
	mixins, err := h.CatalogService.ListMixins()
	if err != nil {
		respondError(c, response.CodeInternal, "error.catalog_fetch_failed", err)
		return
	}
	response.Success(c, mixins)
}
