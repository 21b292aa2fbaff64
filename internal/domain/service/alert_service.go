package service

import (
	"context"

	"github.com/google/uuid"
)

// AlertService defines the interface for vendor arrival alerts pushed to
// subscribed customer devices.
type AlertService interface {
	// SendArrivalAlert notifies the vendor's topic subscribers that the
	// vendor has arrived near their area.
	SendArrivalAlert(ctx context.Context, vendorID uuid.UUID, vendorName, message string) error
}
