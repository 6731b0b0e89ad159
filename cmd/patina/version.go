package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/patina"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of patina",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("patina version %s\n", strings.TrimSpace(patina.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
