package drainer

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sikte-go/sikte/internal/eventbus"
	"github.com/sikte-go/sikte/internal/tracererr"
)

func TestYieldLimitIsPositiveAndBounded(t *testing.T) {
	if YieldLimit <= 0 {
		t.Fatalf("YieldLimit must be positive, got %d", YieldLimit)
	}
	if YieldLimit > 1<<20 {
		t.Fatalf("YieldLimit %d is unreasonably large for a single batch", YieldLimit)
	}
}

// TestPublishEventsReturnsOnInterruptFlagBeforeTouchingReader checks that
// once the interrupt flag is set, PublishEvents returns within the
// current batch without attempting a read. A nil reader proves the read
// path was never reached, since a real read on a nil *ringbuf.Reader
// would panic.
func TestPublishEventsReturnsOnInterruptFlagBeforeTouchingReader(t *testing.T) {
	var interrupted atomic.Bool
	interrupted.Store(true)

	p := &Publisher{reader: nil, interrupted: &interrupted}
	bus := eventbus.New()
	defer bus.Close()

	published, err := p.PublishEvents(context.Background(), bus.Tx())
	assert.Equal(t, 0, published)
	assert.ErrorIs(t, err, tracererr.ErrInterruptedSignal)
}

// TestPublishEventsReturnsOnContextCancelBeforeTouchingReader checks that
// cancellation observed via ctx.Done() also ends the batch immediately,
// independent of the interrupted flag.
func TestPublishEventsReturnsOnContextCancelBeforeTouchingReader(t *testing.T) {
	var interrupted atomic.Bool

	p := &Publisher{reader: nil, interrupted: &interrupted}
	bus := eventbus.New()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	var published int
	var err error
	go func() {
		published, err = p.PublishEvents(ctx, bus.Tx())
		close(done)
	}()

	select {
	case <-done:
		assert.Equal(t, 0, published)
		assert.ErrorIs(t, err, tracererr.ErrInterruptedSignal)
	case <-time.After(time.Second):
		t.Fatal("PublishEvents did not return promptly on context cancellation")
	}
}
