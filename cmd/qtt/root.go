package main

import (
	"github.com/spf13/cobra"

	"github.com/Idyll-Intelligent-Systems/QuantumTimeTravel/eventlog"
)

// Exit codes: 0 on a successful plan, 2 on any planning or input failure.
const (
	exitOK   = 0
	exitFail = 2
)

var logDir string

var rootCmd = &cobra.Command{
	Use:           "qtt",
	Short:         "FSM-based planner for A->B->C->A mission cycles",
	Long:          "qtt plans the fixed cycle A->B->C->A through a weighted state graph,\nwith edge weights synthesized from energy, time-dilated crew time, risk,\nand credits. Planning failures are reported with a reason, never retried.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return exitFail
	}

	return exitOK
}

// newLogger builds the event logger every subcommand reports through.
func newLogger() *eventlog.Logger {
	return eventlog.New(eventlog.WithDir(logDir))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", ".logs", "directory for the structured events log")
	rootCmd.AddCommand(newPlanCmd(), newPlanFileCmd(), newServeCmd())
}
