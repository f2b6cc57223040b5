// Package orchestrator wires the full tracing pipeline end to end: bump
// memlock, load and attach the kernel object, build the event bus and
// correlator, admit the target, drain the ring buffer, and stop cleanly
// on signal or traced-child exit.
package orchestrator

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/sikte-go/sikte/internal/admission"
	"github.com/sikte-go/sikte/internal/correlator"
	"github.com/sikte-go/sikte/internal/drainer"
	"github.com/sikte-go/sikte/internal/eventbus"
	"github.com/sikte-go/sikte/internal/loader"
	"github.com/sikte-go/sikte/internal/logging"
	"github.com/sikte-go/sikte/internal/perfevents"
	"github.com/sikte-go/sikte/internal/tracererr"
)

// Run executes one full trace session for target and blocks until the
// session ends, either because the traced command exited (Command
// target) or because ctx was canceled (e.g. by SIGINT). Pid targets run
// until ctx is canceled, since there is no child to wait on.
func Run(ctx context.Context, target admission.Target) error {
	loader.BumpMemlock()

	l, err := loader.Load()
	if err != nil {
		return tracererr.Wrap(err, tracererr.ErrLoad, "orchestrator", "load")
	}
	defer func() {
		if err := l.Close(); err != nil {
			logging.Warn("failed to close kernel object", "error", err)
		}
	}()

	enterToken, err := l.AttachSysEnter()
	if err != nil {
		return err
	}
	defer enterToken.Close()

	exitToken, err := l.AttachSysExit()
	if err != nil {
		return err
	}
	defer exitToken.Close()

	forkToken, err := l.AttachSchedProcessFork()
	if err != nil {
		return err
	}
	defer forkToken.Close()

	schedExitToken, err := l.AttachSchedProcessExit()
	if err != nil {
		return err
	}
	defer schedExitToken.Close()

	perfTokens, err := perfevents.Attach(l.Objects())
	if err != nil {
		logging.Warn("perf-event sampling plane failed to attach, continuing without it", "error", err)
	} else {
		defer perfTokens.Close()
	}

	bus := eventbus.New()
	bus.SpawnSubscription(correlator.NewShellSubscriber("shell"))

	var interrupted atomic.Bool
	pub, err := drainer.New(l.SyscallRingBuf(), &interrupted)
	if err != nil {
		return err
	}
	defer pub.Close()
	bus.SpawnPublisher(pub)

	schedLog, err := drainer.NewSchedLogger(l.SchedProcessRingBuf())
	if err != nil {
		return err
	}
	defer schedLog.Close()
	schedCtx, cancelSchedLog := context.WithCancel(context.Background())
	defer cancelSchedLog()
	go schedLog.Run(schedCtx)

	// Probes are attached before admission, so tracing starts as soon as
	// the target's pid is in the allowlist. A spawned child's pid is added
	// only after it has started, so syscalls it makes before then are not
	// traced.
	child, err := admission.Admit(l.PidAllowList(), target)
	if err != nil {
		return err
	}

	childExited := make(chan struct{})
	if child != nil {
		go func() {
			defer close(childExited)
			if err := child.Wait(); err != nil {
				logging.Warn("traced command exited with error", "error", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
	case <-childExited:
	}

	interrupted.Store(true)
	cancelSchedLog()
	// A publisher parked in a blocking ring-buffer read only returns once
	// its reader is closed, so close it before bus.Close joins the tasks.
	if err := pub.Close(); err != nil {
		logging.Warn("failed to close syscall ring-buffer reader", "error", err)
	}
	return bus.Close()
}

// NotifyContext returns a context canceled on SIGINT or SIGTERM, so Run
// can wait for either a signal or the traced child's exit.
func NotifyContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
