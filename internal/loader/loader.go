// Package loader opens the embedded eBPF object, resolves its programs and
// maps, and attaches probes to their kernel hooks. Every attach yields an
// opaque Token whose Close detaches: the fact that a program is loaded and
// attached is carried by a value, not by ambient global state.
package loader

import (
	"errors"
	"fmt"

	"github.com/cilium/ebpf"
	"github.com/cilium/ebpf/link"
	"github.com/cilium/ebpf/rlimit"

	"github.com/sikte-go/sikte/internal/bpfprog"
	"github.com/sikte-go/sikte/internal/logging"
	"github.com/sikte-go/sikte/internal/tracererr"
)

// Token witnesses that some kernel-side attachment succeeded and is live.
// Closing it detaches the probe. Tokens are only constructible by this
// package.
type Token struct {
	name string
	link link.Link
}

// Close detaches the underlying attachment.
func (t *Token) Close() error {
	if t == nil || t.link == nil {
		return nil
	}
	return t.link.Close()
}

// Name returns the program name this token was attached for, for logging.
func (t *Token) Name() string { return t.name }

// Loader owns the loaded kernel object and exposes one Attach<Program>
// method per program, plus typed accessors for its maps.
type Loader struct {
	objs bpfprog.SikteObjects
}

// Load opens the embedded kernel object and loads its programs and maps
// into the kernel. Terminal for the caller on failure.
func Load() (*Loader, error) {
	var objs bpfprog.SikteObjects
	if err := bpfprog.LoadSikteObjects(&objs, nil); err != nil {
		return nil, classifyLoadError(err)
	}
	return &Loader{objs: objs}, nil
}

// classifyLoadError picks the sentinel that best names why the embedded
// kernel object failed to load: a named program or map missing from the
// object (struct tags out of sync with the compiled .o), or, for
// anything else (malformed ELF, verifier rejection), the object is
// simply treated as unusable.
func classifyLoadError(err error) error {
	var progErr *ebpf.ProgramNotFoundError
	if errors.As(err, &progErr) {
		return tracererr.WrapWithDetail(tracererr.ErrProgramNotFound, tracererr.ErrLoad, "loader", "load", err.Error())
	}
	var mapErr *ebpf.MapNotFoundError
	if errors.As(err, &mapErr) {
		return tracererr.WrapWithDetail(tracererr.ErrMapNotFound, tracererr.ErrLoad, "loader", "load", err.Error())
	}
	return tracererr.WrapWithDetail(tracererr.ErrKernelObjectMissing, tracererr.ErrLoad, "loader", "load", err.Error())
}

// BumpMemlock bumps RLIMIT_MEMLOCK to allow locking memory for eBPF
// resources on kernels that still require it (pre-5.11). Failure is
// warn-and-continue, never fatal.
func BumpMemlock() {
	if err := rlimit.RemoveMemlock(); err != nil {
		logging.Warn("failed to remove memlock limit, continuing", "error", err)
	}
}

// attach is the shared tail of every Attach<Program> method: the program
// is resolved by symbolic name (via the generated struct field) and the
// caller performs the link attach; attach wraps the result as a Token, or
// the error as an attach error naming the program.
func attach(name string, l link.Link, err error) (*Token, error) {
	if err != nil {
		return nil, tracererr.WrapWithDetail(err, tracererr.ErrAttach, "loader", "attach",
			fmt.Sprintf("program %s", name))
	}
	return &Token{name: name, link: l}, nil
}

// AttachSysEnter attaches the raw tracepoint handler to sys_enter.
func (l *Loader) AttachSysEnter() (*Token, error) {
	lk, err := link.AttachRawTracepoint(link.RawTracepointOptions{
		Name:    "sys_enter",
		Program: l.objs.SikteRawTracePointAtEnter,
	})
	return attach("sikte_raw_trace_point_at_enter", lk, err)
}

// AttachSysExit attaches the raw tracepoint handler to sys_exit.
func (l *Loader) AttachSysExit() (*Token, error) {
	lk, err := link.AttachRawTracepoint(link.RawTracepointOptions{
		Name:    "sys_exit",
		Program: l.objs.SikteRawTracePointAtExit,
	})
	return attach("sikte_raw_trace_point_at_exit", lk, err)
}

// AttachSchedProcessFork attaches the fork maintainer to sched_process_fork.
func (l *Loader) AttachSchedProcessFork() (*Token, error) {
	lk, err := link.Tracepoint("sched", "sched_process_fork", l.objs.SikteSchedProcessFork, nil)
	return attach("sikte_sched_process_fork", lk, err)
}

// AttachSchedProcessExit attaches the exit maintainer to sched_process_exit.
func (l *Loader) AttachSchedProcessExit() (*Token, error) {
	lk, err := link.Tracepoint("sched", "sched_process_exit", l.objs.SikteSchedProcessExit, nil)
	return attach("sikte_sched_process_exit", lk, err)
}

// SyscallRingBuf returns a role-typed handle to the syscall events ring buffer.
func (l *Loader) SyscallRingBuf() *SyscallRingBuf {
	return &SyscallRingBuf{m: l.objs.SyscallEvents}
}

// SchedProcessRingBuf returns a role-typed handle to the sched-process ring buffer.
func (l *Loader) SchedProcessRingBuf() *SchedProcessRingBuf {
	return &SchedProcessRingBuf{m: l.objs.SchedProcessEvents}
}

// PidAllowList returns a role-typed handle to the PID allowlist map.
func (l *Loader) PidAllowList() *PidAllowList {
	return &PidAllowList{m: l.objs.PidAllowList}
}

// NextForkTracker returns a role-typed handle to the "track next fork" singleton.
func (l *Loader) NextForkTracker() *NextForkTracker {
	return &NextForkTracker{m: l.objs.SchedProcessTrackSikteNextFork}
}

// Objects exposes the raw loaded kernel object, for callers that need to
// attach a program this package has no dedicated Attach method for (the
// perf-event sampling plane, attached directly via raw ioctls rather than
// cilium/ebpf's link helpers).
func (l *Loader) Objects() *bpfprog.SikteObjects {
	return &l.objs
}

// Close unloads the kernel object and all of its maps/programs.
func (l *Loader) Close() error {
	return l.objs.Close()
}
