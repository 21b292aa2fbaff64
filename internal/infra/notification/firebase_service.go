package notification

import (
	"context"
	"fmt"

	"pushcart/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// topicForVendor derives the FCM topic a vendor's followers subscribe to.
func topicForVendor(vendorID uuid.UUID) string {
	return "vendor-" + vendorID.String()
}

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase alert service instance
func NewFirebaseService(ctx context.Context, credentialsPath string) (service.AlertService, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendArrivalAlert publishes an arrival notification to the vendor's topic.
// Customers following the vendor subscribe their devices to that topic, so a
// single send fans out to everyone without tracking individual tokens.
func (s *firebaseService) SendArrivalAlert(ctx context.Context, vendorID uuid.UUID, vendorName, message string) error {
	body := message
	if body == "" {
		body = fmt.Sprintf("%s is nearby and open for business", vendorName)
	}

	msg := &messaging.Message{
		Topic: topicForVendor(vendorID),
		Notification: &messaging.Notification{
			Title: vendorName + " has arrived",
			Body:  body,
		},
		Data: map[string]string{
			"vendor_id": vendorID.String(),
			"kind":      "arrival",
		},
	}

	if _, err := s.client.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send arrival alert: %w", err)
	}

	return nil
}
