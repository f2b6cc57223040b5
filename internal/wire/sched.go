package wire

import (
	"encoding/binary"

	"github.com/sikte-go/sikte/internal/tracererr"
)

// SchedKind discriminates SchedProcessEvent.
type SchedKind uint32

const (
	// SchedFork marks a sched_process_fork notification.
	SchedFork SchedKind = 0
	// SchedExit marks a sched_process_exit notification.
	SchedExit SchedKind = 1
)

// SchedRecordSize is the fixed wire size of a SchedProcessEvent: a 4-byte
// kind tag, 4 bytes of padding, and two 4-byte pids (parent/child; for
// exit, parent is zero and child is the exiting pid).
const SchedRecordSize = 16

// SchedProcessEvent is emitted on the 1024-entry sched-process ring buffer
// by the fork/exit probes. It is consumed only by the orchestrator's
// informational logging, never by the correlator.
type SchedProcessEvent struct {
	Kind      SchedKind
	ParentPID int32
	ChildPID  int32
}

// EncodeSched serializes e into its wire form.
func EncodeSched(e SchedProcessEvent) [SchedRecordSize]byte {
	var buf [SchedRecordSize]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(e.Kind))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(e.ParentPID))
	binary.LittleEndian.PutUint32(buf[12:16], uint32(e.ChildPID))
	return buf
}

// DecodeSched validates and parses a raw sched-process ring-buffer record.
func DecodeSched(raw []byte) (SchedProcessEvent, error) {
	if len(raw) != SchedRecordSize {
		return SchedProcessEvent{}, tracererr.WrapWithDetail(
			tracererr.ErrRecordSize, tracererr.ErrDecode, "wire", "decode-sched", "want 16 bytes")
	}

	kind := SchedKind(binary.LittleEndian.Uint32(raw[0:4]))
	if kind != SchedFork && kind != SchedExit {
		return SchedProcessEvent{}, tracererr.Wrap(tracererr.ErrInvalidTag, tracererr.ErrDecode, "wire", "decode-sched")
	}

	return SchedProcessEvent{
		Kind:      kind,
		ParentPID: int32(binary.LittleEndian.Uint32(raw[8:12])),
		ChildPID:  int32(binary.LittleEndian.Uint32(raw[12:16])),
	}, nil
}
