package main

import (
	"fmt"
	"os"

	"log/slog"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "free-scripts [report...]",
		Short: "Ads performance report exporter",
		Long: "Runs the configured ads performance reports: queries the reporting API, " +
			"aggregates by dimension, writes spreadsheets and optionally emails a summary. " +
			"Report names given as arguments override the configured report list.",
		RunE: run,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the free-scripts version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	cfgFile string
	version string
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to configuration file (optional)")
	rootCmd.AddCommand(versionCmd)
	if err := rootCmd.Execute(); err != nil {
		slog.Default().Error("run failed", slog.String("err", err.Error()))
		os.Exit(-1)
	}
}
