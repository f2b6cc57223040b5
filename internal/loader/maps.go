package loader

import (
	"errors"

	"github.com/cilium/ebpf"

	"github.com/sikte-go/sikte/internal/tracererr"
)

// SyscallRingBuf is a role-typed handle to the SYSCALL_EVENTS map. Its Map
// method hands the raw *ebpf.Map to the ring-buffer reader constructor;
// the role type exists so callers can't accidentally pass the wrong map
// to the wrong consumer.
type SyscallRingBuf struct{ m *ebpf.Map }

// Map returns the underlying kernel map handle.
func (r *SyscallRingBuf) Map() *ebpf.Map { return r.m }

// SchedProcessRingBuf is a role-typed handle to the SCHED_PROCESS_EVENTS map.
type SchedProcessRingBuf struct{ m *ebpf.Map }

// Map returns the underlying kernel map handle.
func (r *SchedProcessRingBuf) Map() *ebpf.Map { return r.m }

// PidAllowList is a role-typed handle to the PID_ALLOW_LIST set. Insert and
// Remove are single-key atomic operations that map directly onto the
// kernel map's no-prealloc set semantics: no preallocation of value slots,
// so a removed key is never aliased to a later insertion.
type PidAllowList struct{ m *ebpf.Map }

// Insert adds pid to the allowlist.
func (p *PidAllowList) Insert(pid int32) error {
	var unused uint8 = 1
	if err := p.m.Update(&pid, &unused, ebpf.UpdateAny); err != nil {
		return tracererr.WrapWithDetail(err, tracererr.ErrAdmission, "loader", "allowlist-insert",
			"pid insert failed")
	}
	return nil
}

// Remove deletes pid from the allowlist. Not finding the key is not an error.
func (p *PidAllowList) Remove(pid int32) error {
	if err := p.m.Delete(&pid); err != nil && !errors.Is(err, ebpf.ErrKeyNotExist) {
		return tracererr.WrapWithDetail(err, tracererr.ErrAdmission, "loader", "allowlist-remove",
			"pid remove failed")
	}
	return nil
}

// Contains reports whether pid is currently in the allowlist.
func (p *PidAllowList) Contains(pid int32) bool {
	var unused uint8
	return p.m.Lookup(&pid, &unused) == nil
}

// NextForkTracker is a role-typed handle to the one-element
// SCHED_PROCESS_TRACK_SIKTE_NEXT_FORK array. Userspace writes the pid that
// should have its next fork tracked; the kernel fork probe consumes and
// clears it.
type NextForkTracker struct{ m *ebpf.Map }

// Set arms the tracker with pid, to be consumed by the next qualifying
// sched_process_fork.
func (t *NextForkTracker) Set(pid int32) error {
	var key uint32 = 0
	if err := t.m.Update(&key, &pid, ebpf.UpdateAny); err != nil {
		return tracererr.Wrap(err, tracererr.ErrAdmission, "loader", "track-next-fork")
	}
	return nil
}
