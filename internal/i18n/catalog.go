package i18n

var catalogs = map[string]map[string]string{
	LocaleEN: {
		"error.internal":         "internal server error",
		"error.bad_request":      "bad request",
		"error.unauthorized":     "unauthorized",
		"error.forbidden":        "forbidden",
		"error.not_found":        "not found",
		"error.too_many_requests": "too many requests, please try again later",

		"error.jwt_secret_missing":  "authentication is not configured",
		"error.auth_header_missing": "authorization header is missing",
		"error.auth_header_invalid": "authorization header is invalid",
		"error.token_invalid":       "invalid or expired token",
		"error.token_revoked":       "token has been revoked",

		"error.rate_limited":            "too many attempts, please retry in %d seconds",
		"error.rate_limit_unavailable":  "rate limiter is unavailable",

		"error.invalid_email":       "invalid email address",
		"error.email_exists":        "email already registered",
		"error.invalid_credentials": "invalid email or password",
		"error.invalid_password":    "current password is incorrect",
		"error.weak_password":       "password does not meet the policy",
		"error.user_disabled":       "account is disabled",
		"error.profile_empty":       "nothing to update",
		"error.invalid_user_status": "invalid user status",
		"error.invalid_user_id":     "invalid user id",
		"error.user_id_type":        "user id type error",

		"error.password_min_length":      "password must be at least %d characters",
		"error.password_require_upper":   "password must contain an uppercase letter",
		"error.password_require_lower":   "password must contain a lowercase letter",
		"error.password_require_number":  "password must contain a number",
		"error.password_require_special": "password must contain a special character",

		"error.captcha_required":        "captcha is required",
		"error.captcha_invalid":         "captcha verification failed",
		"error.captcha_config_invalid":  "captcha is not available",
		"error.captcha_unavailable":     "captcha is not available",
		"error.captcha_generate_failed": "failed to generate captcha",

		"error.user_not_found":        "user not found",
		"error.user_fetch_failed":     "failed to load user",
		"error.user_update_failed":    "failed to update user",
		"error.register_failed":       "failed to register",
		"error.login_failed":          "failed to log in",
		"error.logout_failed":         "failed to log out",
		"error.save_failed":           "failed to save changes",
		"error.login_log_fetch_failed": "failed to load login logs",

		"error.catalog_fetch_failed": "failed to load catalog",
		"error.catalog_save_failed":  "failed to save catalog item",
		"error.cart_fetch_failed":    "failed to load cart",
		"error.cart_save_failed":     "failed to update cart",

		"error.order_fetch_failed":         "failed to load orders",
		"error.order_cancel_failed":        "failed to cancel order",
		"error.order_status_update_failed": "failed to update order status",

		"error.authz_fetch_failed": "failed to load permissions",
		"error.authz_save_failed":  "failed to save permissions",

		"error.type_not_found":    "ice cream type not found",
		"error.flavour_not_found": "flavour not found",
		"error.mixin_not_found":   "mixin not found",
		"error.name_exists":       "name already exists",
		"error.slug_exists":       "slug already exists",
		"error.invalid_price":     "price must be greater than zero",

		"error.cart_item_invalid":   "invalid cart item",
		"error.cart_item_not_found": "cart item not found",
		"error.too_many_scoops":     "too many scoops for this type",

		"error.order_not_found":        "order not found",
		"error.order_items_empty":      "order must contain at least one item",
		"error.invalid_order_type":     "invalid order type",
		"error.invalid_payment_method": "invalid payment method",
		"error.address_required":       "address is required for delivery orders",
		"error.pickup_time_required":   "pickup time is required for pickup orders",
		"error.pickup_time_in_past":    "pickup time cannot be in the past",
		"error.invalid_order_status":   "invalid order status",
		"error.transition_not_allowed": "status transition is not allowed",
		"error.order_not_cancellable":  "order cannot be cancelled in its current status",
		"error.order_create_failed":    "failed to place order",

		"order.status.pending":      "Pending",
		"order.status.order_placed": "Order Placed",
		"order.status.ready":        "Ready for Pickup",
		"order.status.delivered":    "Delivered",
		"order.status.completed":    "Completed",
		"order.status.cancelled":    "Cancelled",

		"email.order_status.subject":      "Your order is %s",
		"email.order_status.body":         "Order %s is now %s.\nTotal: %s %s\n\nThank you for choosing us!",
		"email.pickup_reminder.subject":   "Pickup reminder",
		"email.pickup_reminder.body":      "Order %s is scheduled for pickup at %s.\nSee you soon!",
	},
	LocaleZH: {
		"error.internal":         "服务器内部错误",
		"error.bad_request":      "请求参数错误",
		"error.unauthorized":     "未登录或登录已失效",
		"error.forbidden":        "没有权限执行该操作",
		"error.not_found":        "资源不存在",
		"error.too_many_requests": "请求过于频繁，请稍后再试",

		"error.jwt_secret_missing":  "认证服务未配置",
		"error.auth_header_missing": "缺少认证头",
		"error.auth_header_invalid": "认证头格式不正确",
		"error.token_invalid":       "Token 无效或已过期",
		"error.token_revoked":       "Token 已失效",

		"error.rate_limited":            "操作过于频繁，请 %d 秒后重试",
		"error.rate_limit_unavailable":  "限流服务不可用",

		"error.invalid_email":       "邮箱格式不正确",
		"error.email_exists":        "邮箱已被注册",
		"error.invalid_credentials": "邮箱或密码错误",
		"error.invalid_password":    "当前密码不正确",
		"error.weak_password":       "密码不符合安全策略",
		"error.user_disabled":       "账号已被禁用",
		"error.profile_empty":       "没有需要更新的内容",
		"error.invalid_user_status": "用户状态不合法",
		"error.invalid_user_id":     "用户ID不合法",
		"error.user_id_type":        "用户ID类型错误",

		"error.password_min_length":      "密码长度不能少于 %d 位",
		"error.password_require_upper":   "密码必须包含大写字母",
		"error.password_require_lower":   "密码必须包含小写字母",
		"error.password_require_number":  "密码必须包含数字",
		"error.password_require_special": "密码必须包含特殊字符",

		"error.captcha_required":        "请输入验证码",
		"error.captcha_invalid":         "验证码错误",
		"error.captcha_config_invalid":  "验证码服务不可用",
		"error.captcha_unavailable":     "验证码服务不可用",
		"error.captcha_generate_failed": "验证码生成失败",

		"error.user_not_found":        "用户不存在",
		"error.user_fetch_failed":     "获取用户信息失败",
		"error.user_update_failed":    "更新用户信息失败",
		"error.register_failed":       "注册失败",
		"error.login_failed":          "登录失败",
		"error.logout_failed":         "退出登录失败",
		"error.save_failed":           "保存失败",
		"error.login_log_fetch_failed": "获取登录日志失败",

		"error.catalog_fetch_failed": "获取目录数据失败",
		"error.catalog_save_failed":  "保存目录数据失败",
		"error.cart_fetch_failed":    "获取购物车失败",
		"error.cart_save_failed":     "更新购物车失败",

		"error.order_fetch_failed":         "获取订单失败",
		"error.order_cancel_failed":        "取消订单失败",
		"error.order_status_update_failed": "更新订单状态失败",

		"error.authz_fetch_failed": "获取权限数据失败",
		"error.authz_save_failed":  "保存权限数据失败",

		"error.type_not_found":    "冰淇淋容器类型不存在",
		"error.flavour_not_found": "口味不存在",
		"error.mixin_not_found":   "配料不存在",
		"error.name_exists":       "名称已存在",
		"error.slug_exists":       "标识已存在",
		"error.invalid_price":     "价格必须大于零",

		"error.cart_item_invalid":   "购物车条目不合法",
		"error.cart_item_not_found": "购物车条目不存在",
		"error.too_many_scoops":     "球数超出该容器上限",

		"error.order_not_found":        "订单不存在",
		"error.order_items_empty":      "订单至少需要一个条目",
		"error.invalid_order_type":     "订单类型不合法",
		"error.invalid_payment_method": "支付方式不合法",
		"error.address_required":       "配送订单必须填写地址",
		"error.pickup_time_required":   "自取订单必须选择自取时间",
		"error.pickup_time_in_past":    "自取时间不能早于当前时间",
		"error.invalid_order_status":   "订单状态不合法",
		"error.transition_not_allowed": "订单状态不允许该流转",
		"error.order_not_cancellable":  "当前状态的订单不可取消",
		"error.order_create_failed":    "下单失败",

		"order.status.pending":      "待处理",
		"order.status.order_placed": "已下单",
		"order.status.ready":        "待自取",
		"order.status.delivered":    "已送达",
		"order.status.completed":    "已完成",
		"order.status.cancelled":    "已取消",

		"email.order_status.subject":      "您的订单已%s",
		"email.order_status.body":         "订单 %s 当前状态：%s。\n合计：%s %s\n\n感谢您的惠顾！",
		"email.pickup_reminder.subject":   "自取提醒",
		"email.pickup_reminder.body":      "订单 %s 预约自取时间为 %s。\n期待与您见面！",
	},
}
