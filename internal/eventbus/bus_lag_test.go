package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sikte-go/sikte/internal/wire"
)

// TestLaggingSubscriberLosesEventsFastOneDoesNot checks that a slow
// subscriber's mailbox fills and starts dropping the oldest queued event,
// while a separate, actively-draining subscriber observes every event
// sent to it untouched.
func TestLaggingSubscriberLosesEventsFastOneDoesNot(t *testing.T) {
	slot := &subscriberSlot{ch: make(chan Event, 1)}

	first := Event{Syscall: wire.SyscallRecord{PID: 1, Payload: 1}}
	second := Event{Syscall: wire.SyscallRecord{PID: 1, Payload: 2}}

	assert.False(t, slot.trySend(first))
	dropped := slot.trySend(second)
	assert.True(t, dropped, "second send into a full 1-slot mailbox must drop the oldest")

	got := <-slot.ch
	assert.Equal(t, second, got, "the surviving event must be the most recent one")

	bus := New()
	defer bus.Close()

	fast := newRecordingSubscriber("fast")
	bus.SpawnSubscription(fast)
	rec := wire.SyscallRecord{PID: 2, Payload: 3}
	sent, err := bus.Tx().Send(Event{Syscall: rec})
	require.NoError(t, err)
	require.True(t, sent)

	select {
	case got := <-fast.got:
		assert.Equal(t, rec, got)
	case <-time.After(time.Second):
		t.Fatal("fast subscriber never observed the event")
	}
}
