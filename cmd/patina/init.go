package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/patina/pkg/locale"
	"github.com/aretw0/patina/pkg/patina"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default settings file",
	Long:  `Create a ` + patina.SettingsFileName + ` with default settings at the note root.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := patina.SettingsPath(rootPath)
		msgs := locale.For(patina.DefaultSettings().Locale)

		if _, err := os.Stat(path); err == nil && !initForce {
			fmt.Printf(msgs.SettingsExists+"\n", path)
			os.Exit(1)
		}

		store := patina.NewSettingsStore(path)
		if err := store.Save(patina.DefaultSettings()); err != nil {
			fatal("Failed to write settings", err)
		}

		fmt.Printf(msgs.SettingsWritten+"\n", path)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing settings file")
}
