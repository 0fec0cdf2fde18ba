package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/paraxial/internal/paraxial"
)

func main() {
	root := &cobra.Command{
		Use:           "paraxial",
		Short:         "First-order analysis of thin-lens systems",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newReportCmd(), newTraceCmd())

	if err := root.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newReportCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the system matrix, cardinal points and image location",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return paraxial.Run(configPath, paraxial.RunOptions{})
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "system description file (.json, .yaml)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func newTraceCmd() *cobra.Command {
	var configPath, outPath string
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Trace a ray fan and write the paths as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return paraxial.Run(configPath, paraxial.RunOptions{TracePath: outPath})
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "system description file (.json, .yaml)")
	cmd.Flags().StringVar(&outPath, "out", "trace.json", "output file for traced ray paths")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
