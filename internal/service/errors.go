package service

import "errors"

// 服务层统一哨兵错误，处理器据此映射响应码
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrWeakPassword       = errors.New("weak password")
	ErrUserDisabled       = errors.New("user disabled")
	ErrProfileEmpty       = errors.New("profile update is empty")
	ErrInvalidUserStatus  = errors.New("invalid user status")

	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")

	ErrCaptchaRequired      = errors.New("captcha required")
	ErrCaptchaInvalid       = errors.New("captcha invalid")
	ErrCaptchaConfigInvalid = errors.New("captcha config invalid")

	ErrTypeNotFound    = errors.New("ice cream type not found")
	ErrFlavourNotFound = errors.New("ice cream flavour not found")
	ErrMixinNotFound   = errors.New("ice cream mixin not found")
	ErrNameExists      = errors.New("name already exists")
	ErrSlugExists      = errors.New("slug already exists")
	ErrInvalidPrice    = errors.New("invalid price")

	ErrCartItemInvalid  = errors.New("cart item invalid")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrTooManyScoops    = errors.New("too many scoops for this type")

	ErrOrderNotFound        = errors.New("order not found")
	ErrEmptyOrderItems      = errors.New("order items empty")
	ErrInvalidOrderType     = errors.New("invalid order type")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrAddressRequired      = errors.New("address required for delivery")
	ErrPickupTimeRequired   = errors.New("pickup time required for pickup")
	ErrPickupTimeInPast     = errors.New("pickup time is in the past")
	ErrInvalidOrderStatus   = errors.New("invalid order status")
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
	ErrOrderNotCancellable  = errors.New("order not cancellable in current status")
	ErrOrderCreateFailed    = errors.New("order create failed")
)
