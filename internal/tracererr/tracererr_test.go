package tracererr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapPreservesKindAndUnwraps(t *testing.T) {
	cause := errors.New("boom")
	wrapped := Wrap(cause, ErrAttach, "loader", "attach")

	assert.True(t, IsKind(wrapped, ErrAttach))
	assert.False(t, IsKind(wrapped, ErrLoad))
	assert.Equal(t, cause, wrapped.Unwrap())
	assert.ErrorIs(t, wrapped, cause)
}

func TestIsMatchesByKindNotIdentity(t *testing.T) {
	a := New(ErrDecode, "wire", "decode", "bad size")
	b := New(ErrDecode, "wire", "decode", "bad tag")

	assert.True(t, errors.Is(a, b))
}

func TestInterruptedOnlyTrueForInterruptedKind(t *testing.T) {
	interrupted := New(ErrInterrupted, "drainer", "read", "")
	other := New(ErrDelivery, "bus", "send", "")

	assert.True(t, interrupted.Interrupted())
	assert.False(t, other.Interrupted())

	var nilErr *TraceError
	assert.False(t, nilErr.Interrupted())
}

func TestErrorStringIncludesComponentAndOp(t *testing.T) {
	err := WrapWithDetail(errors.New("cause"), ErrAdmission, "admission", "spawn", "failed to start sleep")
	msg := err.Error()

	assert.Contains(t, msg, "admission")
	assert.Contains(t, msg, "spawn")
	assert.Contains(t, msg, "failed to start sleep")
	assert.Contains(t, msg, "cause")
}
