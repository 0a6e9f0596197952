package notification

import (
	"context"
	"testing"

	"dabeli/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	got      *messaging.MulticastMessage
	response *messaging.BatchResponse
	err      error
}

func (f *fakeSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.got = message

	return f.response, f.err
}

func TestFirebaseService_SendBatch(t *testing.T) {
	sender := &fakeSender{response: &messaging.BatchResponse{
		SuccessCount: 1,
		FailureCount: 1,
		Responses: []*messaging.SendResponse{
			{Success: true, MessageID: "m1"},
			{Error: errors.New("transient")},
		},
	}}
	svc := &firebaseService{client: sender}

	result, err := svc.SendBatch(context.Background(), []string{"a", "b"}, service.PushMessage{
		Title: "Order update",
		Body:  "Your order is Ready",
		Data:  map[string]string{"event": "order_update"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
	assert.Empty(t, result.InvalidTokens)
	assert.Equal(t, []string{"a", "b"}, sender.got.Tokens)
	assert.Equal(t, "Order update", sender.got.Notification.Title)
}

func TestFirebaseService_SendBatch_Empty(t *testing.T) {
	svc := &firebaseService{client: &fakeSender{}}

	result, err := svc.SendBatch(context.Background(), nil, service.PushMessage{})
	require.NoError(t, err)
	assert.Zero(t, result.SuccessCount)
}

func TestFirebaseService_SendBatch_TooMany(t *testing.T) {
	svc := &firebaseService{client: &fakeSender{}}

	_, err := svc.SendBatch(context.Background(), make([]string, service.MaxPushBatch+1), service.PushMessage{})
	assert.Error(t, err)
}

func TestFirebaseService_SendBatch_TransportError(t *testing.T) {
	svc := &firebaseService{client: &fakeSender{err: errors.New("unavailable")}}

	_, err := svc.SendBatch(context.Background(), []string{"a"}, service.PushMessage{})
	assert.Error(t, err)
}
