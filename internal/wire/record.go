// Package wire defines the bit-exact, 8-byte-aligned binary record layout
// shared by the kernel eBPF program and the userspace ring-buffer consumer.
// Encoding and decoding here must stay in lockstep with the field layout of
// `struct syscall_data` in internal/bpfprog/clang/sikte.c: both sides agree
// on field order, width, and endianness, never on language-native layout.
package wire

import (
	"encoding/binary"
	"strconv"
	"unsafe"

	"github.com/sikte-go/sikte/internal/tracererr"
)

// Tag discriminates the SyscallState union. All values other than
// TagAtEnter and TagAtExit are invalid on the wire.
type Tag uint32

const (
	// TagAtEnter marks a record captured at syscall entry; Payload carries
	// the syscall number.
	TagAtEnter Tag = 0
	// TagAtExit marks a record captured at syscall exit; Payload carries
	// the syscall return value.
	TagAtExit Tag = 1
)

// RecordSize is the fixed, 8-byte-aligned wire size of a SyscallRecord.
const RecordSize = 32

// RecordAlignment is the required alignment of a decoded record slice.
const RecordAlignment = 8

// SyscallRecord is the only payload carried by the kernel syscall ring
// buffer. Field order must match the kernel-side C struct exactly; do
// not reorder one without updating the other in lockstep.
type SyscallRecord struct {
	// Timestamp is monotonic kernel time at probe fire, in nanoseconds.
	Timestamp uint64
	// TGID is the kernel thread-group id (userspace process id).
	TGID int32
	// PID is the kernel task id (userspace thread id).
	PID int32
	// Tag discriminates Payload's meaning.
	Tag Tag
	// pad is reserved and must be zero on the wire.
	pad uint32
	// Payload is the syscall number (AtEnter) or return value (AtExit).
	Payload int64
}

// IsEnter reports whether this record was captured at syscall entry.
func (r SyscallRecord) IsEnter() bool { return r.Tag == TagAtEnter }

// IsExit reports whether this record was captured at syscall exit.
func (r SyscallRecord) IsExit() bool { return r.Tag == TagAtExit }

// SyscallID returns the syscall number. Panics if Tag is not TagAtEnter:
// this is a programming error, distinct from the wire-validity checks
// performed once in Decode.
func (r SyscallRecord) SyscallID() int64 {
	if r.Tag != TagAtEnter {
		panic("wire: SyscallID called on a non-AtEnter record")
	}
	return r.Payload
}

// ReturnValue returns the syscall return value. Panics if Tag is not
// TagAtExit, for the same reason as SyscallID.
func (r SyscallRecord) ReturnValue() int64 {
	if r.Tag != TagAtExit {
		panic("wire: ReturnValue called on a non-AtExit record")
	}
	return r.Payload
}

// Encode serializes r into its 32-byte little-endian wire form.
func Encode(r SyscallRecord) [RecordSize]byte {
	var buf [RecordSize]byte
	binary.LittleEndian.PutUint64(buf[0:8], r.Timestamp)
	binary.LittleEndian.PutUint32(buf[8:12], uint32(r.TGID))
	binary.LittleEndian.PutUint32(buf[12:16], uint32(r.PID))
	binary.LittleEndian.PutUint32(buf[16:20], uint32(r.Tag))
	binary.LittleEndian.PutUint32(buf[20:24], r.pad)
	binary.LittleEndian.PutUint64(buf[24:32], uint64(r.Payload))
	return buf
}

// Decode validates and parses a raw ring-buffer record slice.
//
// Validation performed: the slice must be exactly RecordSize bytes, its
// backing array must start on an 8-byte boundary, and the tag must be
// one of {TagAtEnter, TagAtExit}. Any other shape is a caller bug or a
// corrupted record and is reported as a *tracererr.TraceError wrapping
// the relevant sentinel; the caller (the drainer) is expected to log
// and skip, never abort.
func Decode(raw []byte) (SyscallRecord, error) {
	if len(raw) != RecordSize {
		return SyscallRecord{}, tracererr.WrapWithDetail(
			tracererr.ErrRecordSize, tracererr.ErrDecode, "wire", "decode",
			"want 32 bytes, got "+strconv.Itoa(len(raw)))
	}

	if uintptr(unsafe.Pointer(&raw[0]))%RecordAlignment != 0 {
		return SyscallRecord{}, tracererr.WrapWithDetail(
			tracererr.ErrRecordAlignment, tracererr.ErrDecode, "wire", "decode",
			"buffer is not 8-byte aligned")
	}

	timestamp := binary.LittleEndian.Uint64(raw[0:8])
	tgid := int32(binary.LittleEndian.Uint32(raw[8:12]))
	pid := int32(binary.LittleEndian.Uint32(raw[12:16]))
	tag := Tag(binary.LittleEndian.Uint32(raw[16:20]))
	pad := binary.LittleEndian.Uint32(raw[20:24])
	payload := int64(binary.LittleEndian.Uint64(raw[24:32]))

	if tag != TagAtEnter && tag != TagAtExit {
		return SyscallRecord{}, tracererr.Wrap(tracererr.ErrInvalidTag, tracererr.ErrDecode, "wire", "decode")
	}

	return SyscallRecord{
		Timestamp: timestamp,
		TGID:      tgid,
		PID:       pid,
		Tag:       tag,
		pad:       pad,
		Payload:   payload,
	}, nil
}

// SaturatingSub computes max(0, b-a) in nanoseconds, as required by spec
// §4.5/§9: kernel timestamps are monotonic but cross-CPU skew can in
// principle yield a negative delta, and wrapping arithmetic is forbidden.
func SaturatingSub(a, b uint64) uint64 {
	if b <= a {
		return 0
	}
	return b - a
}
