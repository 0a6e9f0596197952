package service

import (
	"context"
)

// PushMessage is the content of a mobile push notification.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// BatchResult summarises a multicast send.
type BatchResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string // Tokens the provider reported as unregistered or malformed.
}

// MaxPushBatch is the largest token list a single multicast accepts.
const MaxPushBatch = 500

// NotificationService defines the interface for push notification providers.
type NotificationService interface {
	// SendBatch pushes msg to up to MaxPushBatch device tokens.
	SendBatch(ctx context.Context, tokens []string, msg PushMessage) (*BatchResult, error)
}
