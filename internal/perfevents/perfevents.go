// Package perfevents attaches a 1 Hz software CPU-clock perf event that
// runs alongside the syscall pipeline as a parallel, simpler sampling
// plane. Its event contract is deliberately left unresolved: the attached
// program does nothing with a sample, this package logs only when it
// attaches, and it is never wired to the event bus.
package perfevents

import (
	"runtime"
	"unsafe"

	"github.com/cilium/ebpf/link"
	"golang.org/x/sys/unix"

	"github.com/sikte-go/sikte/internal/bpfprog"
	"github.com/sikte-go/sikte/internal/logging"
	"github.com/sikte-go/sikte/internal/tracererr"
)

// sampleFrequencyHz is the sampling rate: one sample per second, per CPU.
const sampleFrequencyHz = 1

// Tokens holds the live perf-event file descriptors, one per CPU, plus
// the sys_enter_read tracepoint attachment. Close detaches all of them.
type Tokens struct {
	perCPUFDs []int
	tracepoint link.Link
}

// Close detaches every attachment. Errors are logged, not returned: this
// path is best-effort instrumentation, never load-bearing for the trace.
func (t *Tokens) Close() {
	for _, fd := range t.perCPUFDs {
		if err := unix.Close(fd); err != nil {
			logging.Warn("failed to close perf event fd", "error", err)
		}
	}
	if t.tracepoint != nil {
		if err := t.tracepoint.Close(); err != nil {
			logging.Warn("failed to detach sys_enter_read tracepoint", "error", err)
		}
	}
}

// Attach opens a CPU-clock perf event on every online CPU at
// sampleFrequencyHz, attaches the given program to each via
// PERF_EVENT_IOC_SET_BPF, enables it, and attaches the sys_enter_read
// tracepoint handler. Failure is warn-and-continue at the orchestrator
// level: a perf-event attach failure never aborts the syscall pipeline.
func Attach(objs *bpfprog.SikteObjects) (*Tokens, error) {
	tokens := &Tokens{}

	for cpu := 0; cpu < runtime.NumCPU(); cpu++ {
		fd, err := unix.PerfEventOpen(&unix.PerfEventAttr{
			Type:   unix.PERF_TYPE_SOFTWARE,
			Config: unix.PERF_COUNT_SW_CPU_CLOCK,
			Size:   uint32(unsafe.Sizeof(unix.PerfEventAttr{})),
			Sample: sampleFrequencyHz,
			Bits:   unix.PerfBitDisabled | unix.PerfBitFreq,
		}, -1, cpu, -1, unix.PERF_FLAG_FD_CLOEXEC)
		if err != nil {
			tokens.Close()
			return nil, tracererr.WrapWithDetail(err, tracererr.ErrAttach, "perfevents", "perf-event-open",
				"cpu clock sample")
		}
		tokens.perCPUFDs = append(tokens.perCPUFDs, fd)

		if err := unix.IoctlSetInt(fd, unix.PERF_EVENT_IOC_SET_BPF, objs.SiktePerfEvents.FD()); err != nil {
			tokens.Close()
			return nil, tracererr.WrapWithDetail(err, tracererr.ErrAttach, "perfevents", "set-bpf",
				"cpu clock sample")
		}
		if err := unix.IoctlSetInt(fd, unix.PERF_EVENT_IOC_ENABLE, 0); err != nil {
			tokens.Close()
			return nil, tracererr.WrapWithDetail(err, tracererr.ErrAttach, "perfevents", "enable",
				"cpu clock sample")
		}
	}

	tp, err := link.Tracepoint("syscalls", "sys_enter_read", objs.SikteSysEnterRead, nil)
	if err != nil {
		tokens.Close()
		return nil, tracererr.Wrap(err, tracererr.ErrAttach, "perfevents", "attach-sys-enter-read")
	}
	tokens.tracepoint = tp

	logging.Info("attached perf-event cpu clock sampler", "cpus", runtime.NumCPU(), "frequency_hz", sampleFrequencyHz)
	return tokens, nil
}
