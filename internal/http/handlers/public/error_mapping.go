package public

import (
	"errors"

	"github.com/creamery-next/internal/http/response"
	"github.com/creamery-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

var orderCreateErrorRules = []mappedHandlerError{
	{target: service.ErrEmptyOrderItems, code: response.CodeBadRequest, key: "error.order_items_empty"},
	{target: service.ErrInvalidOrderType, code: response.CodeBadRequest, key: "error.invalid_order_type"},
	{target: service.ErrInvalidPaymentMethod, code: response.CodeBadRequest, key: "error.invalid_payment_method"},
	{target: service.ErrAddressRequired, code: response.CodeBadRequest, key: "error.address_required"},
	{target: service.ErrPickupTimeRequired, code: response.CodeBadRequest, key: "error.pickup_time_required"},
	{target: service.ErrPickupTimeInPast, code: response.CodeBadRequest, key: "error.pickup_time_in_past"},
	{target: service.ErrTypeNotFound, code: response.CodeNotFound, key: "error.type_not_found"},
	{target: service.ErrFlavourNotFound, code: response.CodeNotFound, key: "error.flavour_not_found"},
	{target: service.ErrMixinNotFound, code: response.CodeNotFound, key: "error.mixin_not_found"},
}

var orderCancelErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
	{target: service.ErrOrderNotCancellable, code: response.CodeConflict, key: "error.order_not_cancellable"},
}

var orderFetchErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
}

func respondOrderCreateError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderCreateErrorRules, response.CodeInternal, "error.order_create_failed")
}

func respondOrderCancelError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderCancelErrorRules, response.CodeInternal, "error.order_cancel_failed")
}

func respondOrderFetchError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderFetchErrorRules, response.CodeInternal, "error.order_fetch_failed")
}
