// Package notification implements push delivery through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"dabeli/config"
	"dabeli/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// multicastSender is the subset of *messaging.Client the service calls.
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
}

// Params holds dependencies for the Firebase service, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFirebaseService creates a Firebase messaging client. Without a credentials file it
// falls back to application default credentials.
func NewFirebaseService(params Params) (service.NotificationService, error) {
	var fbConfig *firebase.Config
	var opts []option.ClientOption

	if fc := params.Config.Firebase; fc != nil {
		if fc.ProjectID != "" {
			fbConfig = &firebase.Config{ProjectID: fc.ProjectID}
		}
		if fc.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(fc.CredentialsPath))
		}
	}

	app, err := firebase.NewApp(params.Ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	params.Logger.Info("Firebase messaging initialized")

	return &firebaseService{client: client}, nil
}

// SendBatch sends msg to up to service.MaxPushBatch device tokens.
func (s *firebaseService) SendBatch(ctx context.Context, tokens []string, msg service.PushMessage) (*service.BatchResult, error) {
	if len(tokens) == 0 {
		return &service.BatchResult{}, nil
	}

	if len(tokens) > service.MaxPushBatch {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), service.MaxPushBatch)
	}

	response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result := &service.BatchResult{
		SuccessCount:  response.SuccessCount,
		FailureCount:  response.FailureCount,
		InvalidTokens: make([]string, 0),
	}

	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			result.InvalidTokens = append(result.InvalidTokens, tokens[idx])
		}
	}

	return result, nil
}
