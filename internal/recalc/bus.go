// Package recalc coordinates the recomputation of obligation aggregates
// when installment statuses change.
//
// Cross-view consistency is event based: views subscribe to the in-process
// bus and refresh when an obligation they display was recalculated. The
// durable part is the pending_recalculations table, so a request that no
// subscriber processed is replayed on the next start.
package recalc

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

// RecalcRequested asks for the aggregates of one obligation to be
// recomputed.
type RecalcRequested struct {
	Kind     models.ObligationKind
	ParentID uuid.UUID
}

// InstallmentStatusChanged notifies that some installment changed status.
// Views that only need to know that "something changed" (e.g. list
// refreshes) subscribe to this without caring about the parent.
type InstallmentStatusChanged struct {
	Kind          models.ObligationKind
	InstallmentID uuid.UUID
	ParentID      uuid.UUID
	Status        models.InstallmentStatus
}

// Event is either RecalcRequested or InstallmentStatusChanged.
type Event any

// subscriberBuffer is the channel capacity per subscriber. Delivery is
// best-effort: a subscriber that falls this far behind loses events, and
// the durable pending list heals the miss.
const subscriberBuffer = 16

// Bus is an in-process publish/subscribe channel for recalculation events.
type Bus struct {
	mu     sync.Mutex
	subs   []chan Event
	closed bool
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a new subscriber and returns its event channel.
// The channel is closed when the bus is closed.
func (b *Bus) Subscribe() <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)
	if b.closed {
		close(ch)
		return ch
	}

	b.subs = append(b.subs, ch)
	return ch
}

// Publish delivers the event to all subscribers without blocking.
func (b *Bus) Publish(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	for _, ch := range b.subs {
		select {
		case ch <- event:
		default:
			log.Warn().Msgf("recalc: dropping %T event for slow subscriber", event)
		}
	}
}

// Close shuts the bus down and closes all subscriber channels.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true
	for _, ch := range b.subs {
		close(ch)
	}
	b.subs = nil
}
