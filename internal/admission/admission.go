// Package admission seeds the kernel TGID allowlist either from an
// explicit pid list or from a spawned child process.
package admission

import (
	"os"
	"os/exec"

	"github.com/sikte-go/sikte/internal/loader"
	"github.com/sikte-go/sikte/internal/logging"
	"github.com/sikte-go/sikte/internal/tracererr"
)

// Target is the user-supplied tracing target: exactly one of Pids or
// Command must be populated; --pid and a command given after -- are
// mutually exclusive and one is required.
type Target struct {
	Pids    []int32
	Command []string
}

// Admit seeds allowlist per the target and returns the spawned child, if
// any, so the caller can wait on it. Probes must already be attached by
// the time Admit is called for a Command target. The child's pid is
// inserted only after cmd.Start returns, so syscalls the child makes
// before then (including its execve) are not traced.
func Admit(allowlist *loader.PidAllowList, target Target) (*exec.Cmd, error) {
	switch {
	case len(target.Pids) > 0 && len(target.Command) > 0:
		return nil, tracererr.ErrBothTargets
	case len(target.Pids) > 0:
		return nil, admitPids(allowlist, target.Pids)
	case len(target.Command) > 0:
		return admitCommand(allowlist, target.Command)
	default:
		return nil, tracererr.ErrNoTarget
	}
}

func admitPids(allowlist *loader.PidAllowList, pids []int32) error {
	for _, pid := range pids {
		if err := allowlist.Insert(pid); err != nil {
			return err
		}
	}
	logging.Info("tracing syscalls for explicit pids", "pids", pids)
	return nil
}

func admitCommand(allowlist *loader.PidAllowList, argv []string) (*exec.Cmd, error) {
	if len(argv) == 0 {
		return nil, tracererr.ErrEmptyCommand
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return nil, tracererr.WrapWithDetail(err, tracererr.ErrAdmission, "admission", "spawn",
			"failed to start "+argv[0])
	}

	pid := int32(cmd.Process.Pid)
	if err := allowlist.Insert(pid); err != nil {
		_ = cmd.Process.Kill()
		return nil, err
	}

	logging.Info("running traced program", "argv", argv, "pid", pid)
	return cmd, nil
}
