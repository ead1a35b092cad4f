package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	motionFlag       string
	agentsConfigFlag string
	tasksConfigFlag  string
	outputDirFlag    string
	verboseFlag      bool
)

var rootCmd = &cobra.Command{
	Use:   "debate",
	Short: "Sequential multi-agent debate runner",
	Long: `debate runs an automated two-sided debate: one agent argues both sides
of a motion in turn, a second agent judges the result, and each stage's output
is written to a file.

Agents and tasks are declared in YAML (a built-in debate configuration ships
with the binary) and execute strictly in order, with every task seeing the
outputs of the tasks before it.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDebate(cmd)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&motionFlag, "motion", "", "Debate motion (defaults to the built-in motion)")
	rootCmd.PersistentFlags().StringVar(&agentsConfigFlag, "agents-config", "", "Path to an agents YAML file (default: embedded)")
	rootCmd.PersistentFlags().StringVar(&tasksConfigFlag, "tasks-config", "", "Path to a tasks YAML file (default: embedded)")
	rootCmd.PersistentFlags().StringVar(&outputDirFlag, "output-dir", ".", "Directory artifact paths are resolved against")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", true, "Print run progress to the console")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}
