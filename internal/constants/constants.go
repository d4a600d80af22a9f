package constants

// 订单状态常量（与历史数据保持大写枚举值）
const (
	OrderStatusPending     = "PENDING"
	OrderStatusOrderPlaced = "ORDER_PLACED"
	OrderStatusReady       = "READY"
	OrderStatusDelivered   = "DELIVERED"
	OrderStatusCompleted   = "COMPLETED"
	OrderStatusCancelled   = "CANCELLED"
)

// 订单类型常量
const (
	OrderTypePickup   = "PICKUP"
	OrderTypeDelivery = "DELIVERY"
)

// 支付方式常量
const (
	PaymentMethodCreditCard = "CREDIT_CARD"
	PaymentMethodDebitCard  = "DEBIT_CARD"
)

// 用户角色常量
const (
	RoleCustomer = "CUSTOMER"
	RoleAdmin    = "ADMIN"
)

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 登录日志状态常量
const (
	LoginLogStatusSuccess = "success"
	LoginLogStatusFailed  = "failed"
)

// 登录日志失败原因常量
const (
	LoginLogFailReasonBadRequest            = "bad_request"
	LoginLogFailReasonCaptchaRequired       = "captcha_required"
	LoginLogFailReasonCaptchaInvalid        = "captcha_invalid"
	LoginLogFailReasonCaptchaConfigInvalid  = "captcha_config_invalid"
	LoginLogFailReasonInvalidEmail          = "invalid_email"
	LoginLogFailReasonInvalidCredentials    = "invalid_credentials"
	LoginLogFailReasonUserDisabled          = "user_disabled"
	LoginLogFailReasonInternalError         = "internal_error"
)

// 登录日志来源常量
const (
	LoginLogSourceWeb = "web"
)

// 验证码提供方常量
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)

// 验证码场景常量
const (
	CaptchaSceneLogin    = "login"
	CaptchaSceneRegister = "register"
)

// 队列常量
const (
	QueueDefault            = "default"
	TaskOrderStatusNotify   = "order:status_notify"
	TaskOrderPickupReminder = "order:pickup_reminder"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "ic"
)

// 币种常量
const (
	SiteCurrencyDefault = "USD"
)

// 站点语言常量
const (
	LocaleEnUS = "en-US"
	LocaleZhCN = "zh-CN"
)

// 支持的站点语言顺序（含回退顺序）
var SupportedLocales = []string{LocaleEnUS, LocaleZhCN}
