// Package eventbus implements a bounded multi-consumer broadcast that fans
// syscall events out to every live subscriber without ever blocking the
// publisher. Lagging subscribers lose the oldest events they haven't yet
// read: the cost of falling behind lands on the slow subscriber, never on
// the kernel-side producer upstream. Publishers and subscribers each run
// as a supervised goroutine joined by a single error group, which Close
// cancels and waits on, so no task outlives the bus.
package eventbus

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/sikte-go/sikte/internal/logging"
	"github.com/sikte-go/sikte/internal/tracererr"
	"github.com/sikte-go/sikte/internal/wire"
)

// Capacity is the fixed number of slots held per subscriber mailbox.
const Capacity = 1 << 16

// Event is the payload type carried on the bus. Syscall is the only
// variant in scope for this pipeline; the type is a struct rather than an
// interface because there is exactly one kind of event a subscriber can
// observe here.
type Event struct {
	Syscall wire.SyscallRecord
}

// Subscriber consumes events delivered by the bus.
type Subscriber interface {
	// Name identifies the subscriber for logging.
	Name() string
	// HandleSyscall is invoked for every delivered syscall event.
	HandleSyscall(ev wire.SyscallRecord)
	// Close is invoked once when the subscriber's task is winding down,
	// e.g. to print a final summary.
	Close()
}

// Publisher drains an upstream source and emits events onto a Sender.
// Exactly one concrete implementation exists in this repo
// (internal/drainer.Publisher), but the interface keeps the bus decoupled
// from ring-buffer specifics.
type Publisher interface {
	PublishEvents(ctx context.Context, tx *Sender) (int, error)
}

// subscriberSlot is one registered subscriber's mailbox.
type subscriberSlot struct {
	mu     sync.Mutex
	ch     chan Event
	closed bool
}

func newSubscriberSlot() *subscriberSlot {
	return &subscriberSlot{ch: make(chan Event, Capacity)}
}

// trySend delivers ev to the slot. If the mailbox is full, the oldest
// queued event is dropped to make room — this is the "lagged" case.
// Returns true if an event was dropped to make room.
func (s *subscriberSlot) trySend(ev Event) (dropped bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	select {
	case s.ch <- ev:
		return false
	default:
	}
	// Mailbox full: drop the oldest queued event, then enqueue the new one.
	select {
	case <-s.ch:
		dropped = true
	default:
	}
	select {
	case s.ch <- ev:
	default:
		// Extremely unlikely race with a concurrent receive; if it
		// still doesn't fit, the event is lost too. Either way this
		// subscriber is lagging and the publisher must not block.
	}
	return dropped
}

func (s *subscriberSlot) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}

// Sender is the handle publishers use to emit events onto the bus. It
// never blocks: having no live subscribers is reported back to the
// caller, who logs and continues; a lagging subscriber is logged by Send
// itself and loses its oldest queued event.
type Sender struct {
	bus *Bus
}

// Send fans ev out to every live subscriber. Returns (false, nil) if
// there were no subscribers registered at send time, in which case the
// caller logs and continues without dropping the event pipeline. Returns
// a non-nil error wrapping tracererr.ErrBusClosed once the bus has been
// closed, so a publisher still mid-drain stops instead of silently
// sending into a torn-down bus.
func (s *Sender) Send(ev Event) (bool, error) {
	s.bus.mu.RLock()
	closed := s.bus.closed
	slots := s.bus.slots
	s.bus.mu.RUnlock()

	if closed {
		return false, tracererr.Wrap(tracererr.ErrBusClosed, tracererr.ErrDelivery, "eventbus", "send")
	}

	if len(slots) == 0 {
		return false, nil
	}

	for _, slot := range slots {
		if dropped := slot.trySend(ev); dropped {
			logging.Warn("subscriber lagging, dropped oldest event", "subscriber", slotName(s.bus, slot))
		}
	}
	return true, nil
}

func slotName(b *Bus, slot *subscriberSlot) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if name, ok := b.names[slot]; ok {
		return name
	}
	return "unknown"
}

// Bus owns the set of live subscriber mailboxes and the supervised tasks
// (one per spawned publisher or subscriber) that drive them.
type Bus struct {
	mu     sync.RWMutex
	slots  []*subscriberSlot
	names  map[*subscriberSlot]string
	closed bool

	group  *errgroup.Group
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates an empty event bus.
func New() *Bus {
	ctx, cancel := context.WithCancel(context.Background())
	group, ctx := errgroup.WithContext(ctx)
	return &Bus{
		names:  make(map[*subscriberSlot]string),
		group:  group,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Tx hands out a sender handle for publishers.
func (b *Bus) Tx() *Sender {
	return &Sender{bus: b}
}

// SpawnSubscription registers sub and starts its supervised receive loop.
// On bus close the subscriber exits cleanly; lag is logged and the loop
// continues.
func (b *Bus) SpawnSubscription(sub Subscriber) {
	slot := newSubscriberSlot()

	b.mu.Lock()
	b.slots = append(b.slots, slot)
	b.names[slot] = sub.Name()
	b.mu.Unlock()

	b.group.Go(func() error {
		defer sub.Close()
		for {
			select {
			case ev, ok := <-slot.ch:
				if !ok {
					return nil
				}
				sub.HandleSyscall(ev.Syscall)
			case <-b.ctx.Done():
				return nil
			}
		}
	})
}

// SpawnPublisher starts the supervised publish loop for pub: call
// PublishEvents in a loop; log errors; on Interrupted, stop cleanly.
func (b *Bus) SpawnPublisher(pub Publisher) {
	b.group.Go(func() error {
		tx := b.Tx()
		for {
			select {
			case <-b.ctx.Done():
				return nil
			default:
			}

			n, err := pub.PublishEvents(b.ctx, tx)
			if err != nil {
				if isInterrupted(err) {
					return nil
				}
				logging.Error("publisher error", "error", err, "events_drained", n)
				return nil
			}
		}
	})
}

// Close drops all subscriber mailboxes and aborts every supervised task.
func (b *Bus) Close() error {
	b.cancel()

	b.mu.Lock()
	slots := b.slots
	b.slots = nil
	b.closed = true
	b.mu.Unlock()

	for _, slot := range slots {
		slot.close()
	}

	return b.group.Wait()
}

func isInterrupted(err error) bool {
	type interrupter interface{ Interrupted() bool }
	if ir, ok := err.(interrupter); ok {
		return ir.Interrupted()
	}
	return false
}
