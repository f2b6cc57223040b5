package drainer

import (
	"context"
	"errors"

	"github.com/cilium/ebpf/ringbuf"

	"github.com/sikte-go/sikte/internal/loader"
	"github.com/sikte-go/sikte/internal/logging"
	"github.com/sikte-go/sikte/internal/tracererr"
	"github.com/sikte-go/sikte/internal/wire"
)

// SchedLogger drains the fork/exit notification ring buffer and logs each
// event. It carries no subscriber contract of its own: fork/exit tracking
// already happens inside the kernel allowlist probes, so this is purely
// informational, never fed into the event bus.
type SchedLogger struct {
	reader *ringbuf.Reader
}

// NewSchedLogger opens a ring-buffer reader over rb.
func NewSchedLogger(rb *loader.SchedProcessRingBuf) (*SchedLogger, error) {
	reader, err := ringbuf.NewReader(rb.Map())
	if err != nil {
		return nil, tracererr.Wrap(err, tracererr.ErrLoad, "drainer", "new-sched-reader")
	}
	return &SchedLogger{reader: reader}, nil
}

// Run logs every fork/exit notification until ctx is canceled or the
// reader is closed.
func (s *SchedLogger) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		record, err := s.reader.Read()
		if err != nil {
			if errors.Is(err, ringbuf.ErrClosed) {
				return
			}
			logging.Warn("sched-process ring buffer read failed, skipping", "error", err)
			continue
		}

		ev, err := wire.DecodeSched(record.RawSample)
		if err != nil {
			logging.Warn("sched-process record failed validation, dropped", "error", err)
			continue
		}

		switch ev.Kind {
		case wire.SchedFork:
			logging.Info("process forked", "parent_pid", ev.ParentPID, "child_pid", ev.ChildPID)
		case wire.SchedExit:
			logging.Info("traced process exited", "pid", ev.ChildPID)
		}
	}
}

// Close releases the ring-buffer reader.
func (s *SchedLogger) Close() error {
	return s.reader.Close()
}
