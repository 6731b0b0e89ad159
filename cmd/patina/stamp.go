package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/patina/pkg/locale"
	"github.com/aretw0/patina/pkg/patina"
)

var stampCmd = &cobra.Command{
	Use:   "stamp [files...]",
	Short: "Stamp notes once",
	Long: `Bring the timestamp header of notes up to date in a single pass.
Without arguments every note matching the configured include patterns is
stamped; with arguments only the given files are.`,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := patina.NewService(rootPath, patina.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to initialize patina", err)
		}

		msgs := locale.For(svc.Settings().Locale)

		count := 0
		if len(args) > 0 {
			for _, path := range args {
				changed, err := svc.StampFile(path)
				if err != nil {
					fatal("Failed to stamp note", err)
				}
				if changed {
					count++
					fmt.Printf(msgs.NoteStamped+"\n", path)
				}
			}
		} else {
			count, err = svc.StampAll(context.Background())
			if err != nil {
				fatal("Failed to stamp notes", err)
			}
		}

		fmt.Printf(msgs.StampSummary+"\n", count)
	},
}

func init() {
	rootCmd.AddCommand(stampCmd)
}
