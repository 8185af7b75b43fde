package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"log/slog"

	"github.com/Growth-8020/free-scripts/app"
	"github.com/Growth-8020/free-scripts/config"
	"github.com/Growth-8020/free-scripts/log"
	"github.com/spf13/cobra"
)

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("cannot load a config %v", err.Error())
	}

	// positional args select a subset of reports for this run
	if len(args) > 0 {
		cfg.Report.Reports = args
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.SetDefault(log.NewLogger(cfg.Logger))

	a := app.New(cfg)
	if err := a.Run(ctx); err != nil {
		return fmt.Errorf("cannot finish the report run %v", err.Error())
	}

	return nil
}
