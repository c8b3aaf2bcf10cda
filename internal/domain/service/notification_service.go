package service

import (
	"context"
)

// NotificationService defines the interface for push notification delivery.
type NotificationService interface {
	// SendSingleNotification sends a push notification to a single device token
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error

	// SendToTopic sends a push notification to every device subscribed to a
	// topic. Recipients subscribe to a per-account topic on login.
	SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error
}
