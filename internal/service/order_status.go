package service

import "github.com/creamery-next/internal/constants"

// allowedTransitions 管理端推进状态的合法迁移表（按订单类型区分）
var allowedTransitions = map[string]map[string]map[string]bool{
	constants.OrderTypePickup: {
		constants.OrderStatusOrderPlaced: {
			constants.OrderStatusReady: true,
		},
		constants.OrderStatusReady: {
			constants.OrderStatusCompleted: true,
		},
	},
	constants.OrderTypeDelivery: {
		constants.OrderStatusOrderPlaced: {
			constants.OrderStatusDelivered: true,
		},
	},
}

// cancellableStatuses 允许顾客发起取消的当前状态集合
var cancellableStatuses = map[string]bool{
	constants.OrderStatusReady:     true,
	constants.OrderStatusDelivered: true,
	constants.OrderStatusCompleted: true,
}

// knownStatuses 全部合法订单状态
var knownStatuses = map[string]bool{
	constants.OrderStatusPending:     true,
	constants.OrderStatusOrderPlaced: true,
	constants.OrderStatusReady:       true,
	constants.OrderStatusDelivered:   true,
	constants.OrderStatusCompleted:   true,
	constants.OrderStatusCancelled:   true,
}

// isTransitionAllowed 判断管理端状态迁移是否合法
func isTransitionAllowed(orderType, current, target string) bool {
	table, ok := allowedTransitions[orderType]
	if !ok {
		return false
	}
	targets, ok := table[current]
	if !ok {
		return false
	}
	return targets[target]
}

// isCancellable 判断当前状态能否被顾客取消
func isCancellable(current string) bool {
	return cancellableStatuses[current]
}

// isKnownStatus 判断状态值是否合法
func isKnownStatus(status string) bool {
	return knownStatuses[status]
}
