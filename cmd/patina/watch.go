package main

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/patina/pkg/locale"
	"github.com/aretw0/patina/pkg/patina"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch notes and stamp them as they change",
	Long: `Watch the note root and update timestamp headers whenever a note is
created or modified. Runs until interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := patina.NewService(rootPath, patina.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to initialize patina", err)
		}

		msgs := locale.For(svc.Settings().Locale)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		fmt.Printf(msgs.WatchStarted+"\n", svc.Root())

		if err := svc.Run(ctx); err != nil {
			fatal("Watcher failed", err)
		}

		fmt.Println(msgs.WatchStopped)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
