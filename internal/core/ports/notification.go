package ports

import (
	"context"

	"catering/internal/core/domain/events"
)

// EventPublisher receives domain events after the emitting transaction has
// committed. Implementations must not block the caller and must not return
// delivery failures into the mutation path.
type EventPublisher interface {
	PublishStatusChanged(event events.StatusChanged)
	PublishPaymentRecorded(event events.PaymentRecorded)
}

// NotificationClient is the external messaging collaborator (email, SMS).
// It takes a contact identifier and a message; delivery is best-effort and
// failures are the caller's to log, never to propagate.
type NotificationClient interface {
	Notify(ctx context.Context, contact string, message string) error
}
