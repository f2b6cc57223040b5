//go:build linux && integration

package orchestrator

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sikte-go/sikte/internal/admission"
)

// TestRunTracesSpawnedChild spawns a child that reads from /dev/zero,
// traces it end to end, and lets the orchestrator stop on its own once
// the child exits. This requires CAP_BPF/CAP_SYS_ADMIN and a kernel
// recent enough for raw tracepoints.
func TestRunTracesSpawnedChild(t *testing.T) {
	if os.Getenv("SIKTE_RUN_INTEGRATION_TESTS") != "1" {
		t.Skip("set SIKTE_RUN_INTEGRATION_TESTS=1 to run tests requiring a loaded eBPF program")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	target := admission.Target{Command: []string{"dd", "if=/dev/zero", "bs=1", "count=1", "of=/dev/null"}}
	require.NoError(t, Run(ctx, target))
}
