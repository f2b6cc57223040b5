package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sikte-go/sikte/internal/tracererr"
	"github.com/sikte-go/sikte/internal/wire"
)

type recordingSubscriber struct {
	name   string
	got    chan wire.SyscallRecord
	closed chan struct{}
}

func newRecordingSubscriber(name string) *recordingSubscriber {
	return &recordingSubscriber{name: name, got: make(chan wire.SyscallRecord, 16), closed: make(chan struct{})}
}

func (r *recordingSubscriber) Name() string                        { return r.name }
func (r *recordingSubscriber) HandleSyscall(ev wire.SyscallRecord) { r.got <- ev }
func (r *recordingSubscriber) Close()                              { close(r.closed) }

func TestSendWithNoSubscribersReturnsFalse(t *testing.T) {
	bus := New()
	defer bus.Close()

	sent, err := bus.Tx().Send(Event{Syscall: wire.SyscallRecord{TGID: 1, PID: 1}})
	require.NoError(t, err)
	assert.False(t, sent)
}

func TestSendAfterCloseReturnsErrBusClosed(t *testing.T) {
	bus := New()
	require.NoError(t, bus.Close())

	sent, err := bus.Tx().Send(Event{Syscall: wire.SyscallRecord{TGID: 1, PID: 1}})
	assert.False(t, sent)
	require.Error(t, err)
	assert.True(t, tracererr.IsKind(err, tracererr.ErrDelivery))
}

func TestSendDeliversToSubscriber(t *testing.T) {
	bus := New()
	sub := newRecordingSubscriber("test")
	bus.SpawnSubscription(sub)

	rec := wire.SyscallRecord{TGID: 1, PID: 2, Tag: wire.TagAtEnter, Payload: 0}
	sent, err := bus.Tx().Send(Event{Syscall: rec})
	require.NoError(t, err)
	require.True(t, sent)

	select {
	case got := <-sub.got:
		assert.Equal(t, rec, got)
	case <-time.After(time.Second):
		t.Fatal("subscriber never received the event")
	}

	require.NoError(t, bus.Close())

	select {
	case <-sub.closed:
	case <-time.After(time.Second):
		t.Fatal("subscriber was never closed")
	}
}

func TestSubscriberSlotDropsOldestWhenFull(t *testing.T) {
	slot := &subscriberSlot{ch: make(chan Event, 2)}

	assert.False(t, slot.trySend(Event{}))
	assert.False(t, slot.trySend(Event{}))
	assert.True(t, slot.trySend(Event{}), "third send into a 2-capacity slot should drop the oldest")
}

func TestSubscriberSlotTrySendAfterCloseIsNoop(t *testing.T) {
	slot := &subscriberSlot{ch: make(chan Event, 1)}
	slot.close()

	assert.False(t, slot.trySend(Event{}))
}

func TestIsInterruptedDetectsInterrupterMethod(t *testing.T) {
	assert.False(t, isInterrupted(nil))

	plain := assertError{}
	assert.False(t, isInterrupted(plain))

	interrupting := interruptingError{}
	assert.True(t, isInterrupted(interrupting))
}

type assertError struct{}

func (assertError) Error() string { return "plain" }

type interruptingError struct{}

func (interruptingError) Error() string     { return "interrupted" }
func (interruptingError) Interrupted() bool { return true }
