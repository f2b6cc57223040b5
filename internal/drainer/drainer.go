// Package drainer drains the kernel syscall ring buffer in bounded
// batches and hands each decoded record to the event bus, never blocking
// on a slow subscriber and never spinning the kernel->userspace copy past
// the point where cancellation should take effect.
package drainer

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/cilium/ebpf/ringbuf"

	"github.com/sikte-go/sikte/internal/eventbus"
	"github.com/sikte-go/sikte/internal/loader"
	"github.com/sikte-go/sikte/internal/logging"
	"github.com/sikte-go/sikte/internal/tracererr"
	"github.com/sikte-go/sikte/internal/wire"
)

// YieldLimit bounds how many records a single PublishEvents call drains
// before returning control to the bus's supervised loop, so a saturated
// ring buffer never keeps a single call running indefinitely.
const YieldLimit = 1000

// Publisher drains the syscall ring buffer and satisfies eventbus.Publisher.
type Publisher struct {
	reader      *ringbuf.Reader
	interrupted *atomic.Bool
}

// New opens a ring-buffer reader over rb. interrupted is shared with the
// orchestrator's signal handler: PublishEvents checks it before every
// record so a SIGINT or child-exit is observed promptly even mid-drain.
func New(rb *loader.SyscallRingBuf, interrupted *atomic.Bool) (*Publisher, error) {
	reader, err := ringbuf.NewReader(rb.Map())
	if err != nil {
		return nil, tracererr.Wrap(err, tracererr.ErrLoad, "drainer", "new-reader")
	}
	return &Publisher{reader: reader, interrupted: interrupted}, nil
}

// PublishEvents drains up to YieldLimit records and sends each onto tx. It
// returns the number of decoded records handed to tx (including ones
// dropped for lack of live subscribers) and an error if the reader was
// closed, the bus was closed out from under it, or interruption was
// observed. A decode failure is logged and skipped, not fatal: only
// reader-closed, bus-closed, and interruption end the loop early.
func (p *Publisher) PublishEvents(ctx context.Context, tx *eventbus.Sender) (int, error) {
	published := 0

	for i := 0; i < YieldLimit; i++ {
		if p.interrupted.Load() {
			return published, tracererr.ErrInterruptedSignal
		}
		select {
		case <-ctx.Done():
			return published, tracererr.ErrInterruptedSignal
		default:
		}

		record, err := p.reader.Read()
		if err != nil {
			if errors.Is(err, ringbuf.ErrClosed) {
				return published, tracererr.Wrap(err, tracererr.ErrDelivery, "drainer", "read")
			}
			logging.Warn("ring buffer read failed, skipping", "error", err)
			continue
		}

		rec, err := wire.Decode(record.RawSample)
		if err != nil {
			logging.Warn("syscall record failed validation, dropped", "error", err)
			continue
		}

		sent, err := tx.Send(eventbus.Event{Syscall: rec})
		if err != nil {
			return published, err
		}
		if !sent {
			logging.Warn("no live subscribers, event dropped")
		}
		published++
	}

	return published, nil
}

// Close releases the ring-buffer reader.
func (p *Publisher) Close() error {
	return p.reader.Close()
}
