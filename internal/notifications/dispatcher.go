// Package notifications delivers customer-facing messages for domain
// events. Events are handed over on a buffered channel and sent by a
// background worker, so the mutation path never waits on, or fails
// because of, the messaging side.
package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"catering/internal/core/domain/events"
	"catering/internal/core/ports"
)

const defaultQueueSize = 256

// Dispatcher implements ports.EventPublisher. Publishing is non-blocking:
// when the queue is full the event is dropped and logged, never queued
// synchronously at the caller's expense.
type Dispatcher struct {
	client ports.NotificationClient
	logger *slog.Logger

	queue chan func(ctx context.Context)
	stop  chan struct{}
	wg    sync.WaitGroup

	startOnce sync.Once
	stopOnce  sync.Once
}

// NewDispatcher creates a dispatcher with the default queue size.
func NewDispatcher(client ports.NotificationClient, logger *slog.Logger) *Dispatcher {
	return NewDispatcherWithQueueSize(client, logger, defaultQueueSize)
}

// NewDispatcherWithQueueSize creates a dispatcher with an explicit queue
// size.
func NewDispatcherWithQueueSize(client ports.NotificationClient, logger *slog.Logger, size int) *Dispatcher {
	if size <= 0 {
		size = defaultQueueSize
	}
	return &Dispatcher{
		client: client,
		logger: logger.With("component", "notifications"),
		queue:  make(chan func(ctx context.Context), size),
		stop:   make(chan struct{}),
	}
}

// Start launches the delivery worker. Safe to call once; subsequent calls
// are no-ops.
func (d *Dispatcher) Start() {
	d.startOnce.Do(func() {
		d.wg.Add(1)
		go d.run()
	})
}

// Stop drains the queued events and stops the worker. Events published
// after Stop are dropped.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.stop)
		d.wg.Wait()
	})
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for {
		select {
		case deliver := <-d.queue:
			deliver(context.Background())
		case <-d.stop:
			for {
				select {
				case deliver := <-d.queue:
					deliver(context.Background())
				default:
					return
				}
			}
		}
	}
}

// PublishStatusChanged enqueues a status notification for the customer.
func (d *Dispatcher) PublishStatusChanged(event events.StatusChanged) {
	message := fmt.Sprintf("Your order %s is now %s.", event.OrderID, event.NewStatus)
	d.enqueue("status_changed", event.OrderID.String(), event.CustomerID.String(), message)
}

// PublishPaymentRecorded enqueues a payment receipt notification.
func (d *Dispatcher) PublishPaymentRecorded(event events.PaymentRecorded) {
	message := fmt.Sprintf("We received your payment of %s for order %s. Payment status: %s.",
		event.Amount, event.OrderID, event.PaymentStatus)
	d.enqueue("payment_recorded", event.OrderID.String(), event.CustomerID.String(), message)
}

func (d *Dispatcher) enqueue(kind, orderID, contact, message string) {
	deliver := func(ctx context.Context) {
		if err := d.client.Notify(ctx, contact, message); err != nil {
			d.logger.Warn("notification delivery failed",
				"event", kind, "order_id", orderID, "error", err)
		}
	}

	select {
	case d.queue <- deliver:
	default:
		d.logger.Warn("notification queue full, event dropped",
			"event", kind, "order_id", orderID)
	}
}
