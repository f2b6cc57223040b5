package main

import (
	"github.com/spf13/cobra"

	"github.com/sikte-go/sikte/internal/admission"
	"github.com/sikte-go/sikte/internal/orchestrator"
)

var recordPids []int32

var recordCmd = &cobra.Command{
	Use:   "record [-- command args...]",
	Short: "Trace syscalls for a set of pids or a spawned command",
	Long: `record traces syscall entry/exit for either an explicit list of
pids (--pid, repeatable) or a command spawned and traced from the moment
its pid is admitted, just after it starts (everything after --). Exactly
one of the two must be given.`,
	Args: cobra.ArbitraryArgs,
	RunE: runRecord,
}

func init() {
	rootCmd.AddCommand(recordCmd)
	recordCmd.Flags().Int32SliceVar(&recordPids, "pid", nil, "pid to trace (repeatable)")
	recordCmd.Flags().SetInterspersed(false)
}

func runRecord(cmd *cobra.Command, args []string) error {
	ctx, cancel := orchestrator.NotifyContext()
	defer cancel()

	target := admission.Target{
		Pids:    recordPids,
		Command: args,
	}

	return orchestrator.Run(ctx, target)
}
