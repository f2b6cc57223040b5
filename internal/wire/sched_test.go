package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sikte-go/sikte/internal/tracererr"
)

func TestEncodeDecodeSchedRoundTrip(t *testing.T) {
	in := SchedProcessEvent{Kind: SchedFork, ParentPID: 100, ChildPID: 101}
	buf := EncodeSched(in)
	out, err := DecodeSched(buf[:])
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeSchedRejectsWrongSize(t *testing.T) {
	_, err := DecodeSched([]byte{1, 2, 3})
	assert.True(t, tracererr.IsKind(err, tracererr.ErrDecode))
}

func TestDecodeSchedRejectsInvalidKind(t *testing.T) {
	buf := EncodeSched(SchedProcessEvent{Kind: SchedKind(99), ParentPID: 1, ChildPID: 2})
	_, err := DecodeSched(buf[:])
	assert.True(t, tracererr.IsKind(err, tracererr.ErrDecode))
}
