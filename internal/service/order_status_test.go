package service

import (
	"testing"

	"github.com/creamery-next/internal/constants"
)

func TestIsTransitionAllowed(t *testing.T) {
	cases := []struct {
		orderType string
		current   string
		target    string
		want      bool
	}{
		{constants.OrderTypePickup, constants.OrderStatusOrderPlaced, constants.OrderStatusReady, true},
		{constants.OrderTypePickup, constants.OrderStatusReady, constants.OrderStatusCompleted, true},
		{constants.OrderTypePickup, constants.OrderStatusOrderPlaced, constants.OrderStatusCompleted, false},
		{constants.OrderTypePickup, constants.OrderStatusOrderPlaced, constants.OrderStatusDelivered, false},
		{constants.OrderTypePickup, constants.OrderStatusCompleted, constants.OrderStatusReady, false},
		{constants.OrderTypeDelivery, constants.OrderStatusOrderPlaced, constants.OrderStatusDelivered, true},
		{constants.OrderTypeDelivery, constants.OrderStatusOrderPlaced, constants.OrderStatusReady, false},
		{constants.OrderTypeDelivery, constants.OrderStatusDelivered, constants.OrderStatusOrderPlaced, false},
		{"UNKNOWN", constants.OrderStatusOrderPlaced, constants.OrderStatusReady, false},
		{constants.OrderTypePickup, constants.OrderStatusCancelled, constants.OrderStatusReady, false},
	}
	for _, tc := range cases {
		if got := isTransitionAllowed(tc.orderType, tc.current, tc.target); got != tc.want {
			t.Fatalf("%s %s->%s: want %v, got %v", tc.orderType, tc.current, tc.target, tc.want, got)
		}
	}
}

func TestIsCancellable(t *testing.T) {
	cancellable := []string{
		constants.OrderStatusReady,
		constants.OrderStatusDelivered,
		constants.OrderStatusCompleted,
	}
	for _, status := range cancellable {
		if !isCancellable(status) {
			t.Fatalf("%s should be cancellable", status)
		}
	}
	notCancellable := []string{
		constants.OrderStatusPending,
		constants.OrderStatusOrderPlaced,
		constants.OrderStatusCancelled,
	}
	for _, status := range notCancellable {
		if isCancellable(status) {
			t.Fatalf("%s should not be cancellable", status)
		}
	}
}

func TestIsKnownStatus(t *testing.T) {
	if !isKnownStatus(constants.OrderStatusReady) {
		t.Fatalf("READY should be a known status")
	}
	if isKnownStatus("FROZEN") {
		t.Fatalf("FROZEN should not be a known status")
	}
}
