package service

import (
	"context"
)

// NotificationEvent is published after a notification row is committed so the
// delivery worker can push it to the recipient's devices. Publishing is
// best-effort; a publish failure never rolls back the ledger mutation that
// produced the notification.
type NotificationEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string `json:"notification_id"`
	Kind           string `json:"kind"`
	RecipientID    string `json:"recipient_id"`
	Title          string `json:"title"`
	Body           string `json:"body"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event for async delivery
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
