// Package correlator implements the terminal subscriber: it joins
// AtEnter/AtExit records per thread id, computes a per-call duration,
// resolves the syscall name, and prints one human-readable line per
// completed call to stdout.
package correlator

import (
	"fmt"
	"sync"

	"github.com/sikte-go/sikte/internal/syscalltable"
	"github.com/sikte-go/sikte/internal/wire"
)

// ShellSubscriber joins enter/exit records per thread and prints a line
// for every completed syscall. It implements eventbus.Subscriber.
type ShellSubscriber struct {
	name string
	out  writer

	mu          sync.Mutex
	open        map[int32]wire.SyscallRecord
	totalMicros float64
}

// writer is the narrow stdout-like surface ShellSubscriber writes to,
// letting tests capture output without redirecting the real os.Stdout.
type writer interface {
	Printf(format string, args ...any)
}

type stdoutWriter struct{}

func (stdoutWriter) Printf(format string, args ...any) { fmt.Printf(format, args...) }

// NewShellSubscriber creates a correlator that writes to the process's
// standard output.
func NewShellSubscriber(name string) *ShellSubscriber {
	return newShellSubscriber(name, stdoutWriter{})
}

func newShellSubscriber(name string, out writer) *ShellSubscriber {
	return &ShellSubscriber{
		name: name,
		out:  out,
		open: make(map[int32]wire.SyscallRecord),
	}
}

// Name identifies this subscriber for bus logging.
func (s *ShellSubscriber) Name() string { return s.name }

// HandleSyscall implements the per-record correlation algorithm: an
// AtEnter record is stashed under its thread id, overwriting any
// previous entry (a thread is inside at most one syscall at a time, so
// an overwrite means the prior exit was missed and the stale entry is
// correctly discarded). An AtExit record looks up and removes that
// entry; if found, it prints the resolved name and elapsed duration and
// accumulates microseconds into the running total; if absent (an orphan
// exit, e.g. tracing attached mid-syscall) it prints the literal
// "???"/"???" placeholders.
func (s *ShellSubscriber) HandleSyscall(r wire.SyscallRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.IsEnter() {
		s.open[r.PID] = r
		return
	}

	last, ok := s.open[r.PID]
	if !ok {
		s.out.Printf("(%d/%d) ??? (took ??? us)\n", r.TGID, r.PID)
		return
	}
	delete(s.open, r.PID)

	elapsedNanos := wire.SaturatingSub(last.Timestamp, r.Timestamp)
	elapsedMicros := float64(elapsedNanos) / 1000.0
	name := syscalltable.Name(last.SyscallID())

	s.out.Printf("(%d/%d) %s (took %.2f us)\n", r.TGID, r.PID, name, elapsedMicros)
	s.totalMicros += elapsedMicros
}

// Close prints the running total of elapsed microseconds across every
// completed syscall this subscriber observed.
func (s *ShellSubscriber) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out.Printf("total syscall time: %.2f us\n", s.totalMicros)
}
